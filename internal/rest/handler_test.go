package rest

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/olegmish/quickmeet/pkg/logger"
	"github.com/olegmish/quickmeet/pkg/models"
)

type fakeApp struct {
	outcome models.Outcome
	texts   []string
}

func (f *fakeApp) Submit(_ context.Context, text string) models.Outcome {
	f.texts = append(f.texts, text)
	return f.outcome
}

func createdOutcome() models.Outcome {
	start := time.Date(2024, 6, 11, 19, 0, 0, 0, time.UTC)
	return models.Created("evt-1", models.ScheduledEvent{
		Title:    "Встреча с Петей",
		Start:    start,
		End:      start.Add(time.Hour),
		TimeZone: "Europe/Berlin",
	})
}

func doRequest(s *Server, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestCreateEvent(t *testing.T) {
	app := &fakeApp{outcome: createdOutcome()}
	s := New(logger.New("panic"), app, ":0", "test", nil)

	rec := doRequest(s, `{"text":"встретиться с Петей завтра в 19:00"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "evt-1")
	require.Equal(t, []string{"встретиться с Петей завтра в 19:00"}, app.texts)
}

func TestCreateEventEmptyText(t *testing.T) {
	app := &fakeApp{}
	s := New(logger.New("panic"), app, ":0", "test", nil)

	rec := doRequest(s, `{"text":"   "}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, app.texts)
}

func TestCreateEventFailureStatuses(t *testing.T) {
	tt := []struct {
		kind   models.FailureKind
		status int
	}{
		{models.FailMissingField, http.StatusUnprocessableEntity},
		{models.FailBadDatetime, http.StatusUnprocessableEntity},
		{models.FailMalformedResponse, http.StatusUnprocessableEntity},
		{models.FailServiceError, http.StatusBadGateway},
		{models.FailAPIError, http.StatusBadGateway},
		{models.FailUnknown, http.StatusBadGateway},
	}
	for _, tc := range tt {
		t.Run(string(tc.kind), func(t *testing.T) {
			app := &fakeApp{outcome: models.Failed(models.Failure{Kind: tc.kind, Detail: "raw upstream detail"})}
			s := New(logger.New("panic"), app, ":0", "test", nil)

			rec := doRequest(s, `{"text":"встретиться с Петей"}`, nil)

			require.Equal(t, tc.status, rec.Code)
			require.Contains(t, rec.Body.String(), string(tc.kind))
			// upstream detail stays in the logs
			require.NotContains(t, rec.Body.String(), "raw upstream detail")
		})
	}
}

func TestJWTAuth(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	app := &fakeApp{outcome: createdOutcome()}
	s := New(logger.New("panic"), app, ":0", "test", &key.PublicKey)

	rec := doRequest(s, `{"text":"hi"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(s, `{"text":"hi"}`, map[string]string{"Authorization": "Bearer not-a-token"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(key)
	require.NoError(t, err)

	rec = doRequest(s, `{"text":"встретиться с Петей завтра в 19:00"}`, map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusCreated, rec.Code)
}
