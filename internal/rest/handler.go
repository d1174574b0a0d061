package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/olegmish/quickmeet/pkg/models"
)

type CreateEventRequest struct {
	Text string `json:"text"`
}

type CreateEventResponse struct {
	EventID string                 `json:"eventId,omitempty"`
	Event   *models.ScheduledEvent `json:"event,omitempty"`
	Failure *FailureResponse       `json:"failure,omitempty"`
}

// FailureResponse exposes the failure kind and field but not the raw
// upstream detail; that stays in the logs.
type FailureResponse struct {
	Kind  models.FailureKind `json:"kind"`
	Field string             `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) versionHandler(w http.ResponseWriter, _ *http.Request) {
	_, err := fmt.Fprintf(w, "%s\n", s.version)
	if err != nil {
		s.log.Warnf("err during writing to connection: %v", err)
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.writeResponse(w, http.StatusBadRequest, fmt.Errorf("text is required"))
		return
	}

	outcome := s.app.Submit(ctx, req.Text)
	if !outcome.OK() {
		s.log.Warnf("submit failed: kind=%s detail=%s", outcome.Failure.Kind, outcome.Failure.Detail)
		s.writeResponse(w, failureStatus(outcome.Failure.Kind), CreateEventResponse{
			Failure: &FailureResponse{Kind: outcome.Failure.Kind, Field: outcome.Failure.Field},
		})
		return
	}
	s.writeResponse(w, http.StatusCreated, CreateEventResponse{
		EventID: outcome.EventID,
		Event:   outcome.Event,
	})
}

func failureStatus(kind models.FailureKind) int {
	switch kind {
	case models.FailMissingField, models.FailBadDatetime, models.FailMalformedResponse:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) writeResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if x, ok := data.(error); ok {
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: x.Error()}); err != nil {
			s.log.Warnf("err during encoding error: %v", err)
		}
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warnf("err during encoding response: %v", err)
	}
}
