package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/olegmish/quickmeet/pkg/models"
)

// Events land in the authenticated user's default calendar.
const calendarID = "primary"

// Wall-clock time without an offset; the zone goes into the separate
// timeZone field of the event resource.
const rfc3339NoOffset = "2006-01-02T15:04:05"

type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	Timeout      time.Duration
}

// Gateway submits fully-specified events to Google Calendar.
type Gateway struct {
	log     *logrus.Entry
	srv     *calendar.Service
	timeout time.Duration
}

// New builds a gateway around a long-lived refresh token. The token source
// returned by oauth2.Config serializes access-token refreshes under a mutex:
// concurrent requests hitting an expired token wait for a single refresh
// instead of racing to issue their own.
func New(ctx context.Context, log *logrus.Logger, cfg Config) (*Gateway, error) {
	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarScope},
	}
	ts := oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, ts)))
	if err != nil {
		return nil, fmt.Errorf("err creating calendar service: %w", err)
	}
	return NewWithService(log, srv, cfg.Timeout), nil
}

// NewWithService wires a gateway around an already-built calendar service.
func NewWithService(log *logrus.Logger, srv *calendar.Service, timeout time.Duration) *Gateway {
	return &Gateway{
		log:     log.WithField("component", "calendar"),
		srv:     srv,
		timeout: timeout,
	}
}

// CreateEvent inserts the event and returns its identifier. Nothing is
// rolled back on failure: no local state was committed.
func (g *Gateway) CreateEvent(ctx context.Context, event models.ScheduledEvent) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	body := &calendar.Event{
		Summary:     event.Title,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(rfc3339NoOffset),
			TimeZone: event.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(rfc3339NoOffset),
			TimeZone: event.TimeZone,
		},
	}

	created, err := g.srv.Events.Insert(calendarID, body).Context(ctx).Do()
	if err != nil {
		g.log.Errorf("err inserting event: %v (event: %+v)", err, event)
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: %v", models.ErrAPIError, err)
		}
		return "", fmt.Errorf("err inserting event: %w", err)
	}

	g.log.Debugf("event inserted: %s", created.Id)
	return created.Id, nil
}
