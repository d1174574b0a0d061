package rest

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/olegmish/quickmeet/pkg/models"
)

// App is the pipeline entry point the HTTP transport feeds text into.
type App interface {
	Submit(ctx context.Context, text string) models.Outcome
}

type Server struct {
	log       *logrus.Entry
	app       App
	address   string
	version   string
	publicKey *rsa.PublicKey
}

// New builds the operational HTTP server. publicKey guards the submit
// endpoint; nil leaves it open, for local runs.
func New(log *logrus.Logger, app App, address, version string, publicKey *rsa.PublicKey) *Server {
	s := Server{
		log:       log.WithField("component", "rest"),
		app:       app,
		address:   address,
		version:   version,
		publicKey: publicKey,
	}
	return &s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/version", s.versionHandler)
	r.Get("/healthz", s.healthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			if s.publicKey != nil {
				r.Use(s.jwtAuth)
			}
			r.Post("/events", s.createEventHandler)
		})
	})
	return r
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Warnf("err during server shutdown: %v", err)
		}
	}()
	s.log.Infof("Starting http server on %s", s.address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
