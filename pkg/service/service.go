package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/olegmish/quickmeet/pkg/metrics"
	"github.com/olegmish/quickmeet/pkg/models"
)

type Extractor interface {
	Extract(ctx context.Context, text string) (models.EventDraft, error)
}

type Calendar interface {
	CreateEvent(ctx context.Context, event models.ScheduledEvent) (string, error)
}

// Pipeline sequences extraction, validation, scheduling and calendar
// creation for one message. It is stateless: Submit calls may run in
// parallel without coordination.
type Pipeline struct {
	log       *logrus.Entry
	extractor Extractor
	calendar  Calendar
	timezone  string
}

func New(log *logrus.Logger, extractor Extractor, calendar Calendar, timezone string) *Pipeline {
	p := Pipeline{
		log:       log.WithField("component", "service"),
		extractor: extractor,
		calendar:  calendar,
		timezone:  timezone,
	}
	return &p
}

// Submit runs the whole pipeline for one message. It always returns an
// Outcome; no stage is retried, the first failure is terminal.
func (p *Pipeline) Submit(ctx context.Context, text string) models.Outcome {
	log := p.log.WithField("request", uuid.New().String())

	draft, err := p.stageExtract(ctx, log, text)
	if err != nil {
		return p.failed(log, err)
	}
	event, err := Validate(draft)
	if err != nil {
		log.Warnf("draft rejected: %v (draft: %+v)", err, draft)
		metrics.StageErrCount.WithLabelValues("validate").Inc()
		return p.failed(log, err)
	}
	scheduled, err := ComputeSchedule(event, p.timezone)
	if err != nil {
		log.Warnf("err computing schedule: %v (event: %+v)", err, event)
		metrics.StageErrCount.WithLabelValues("schedule").Inc()
		return p.failed(log, err)
	}
	id, err := p.stageCreate(ctx, log, scheduled)
	if err != nil {
		return p.failed(log, err)
	}

	metrics.OutcomeCount.WithLabelValues("created").Inc()
	log.Infof("event created: %s (%s, %s - %s %s)",
		id, scheduled.Title, scheduled.Start.Format(datetimeLayout), scheduled.End.Format("15:04"), scheduled.TimeZone)
	return models.Created(id, scheduled)
}

func (p *Pipeline) stageExtract(ctx context.Context, log *logrus.Entry, text string) (models.EventDraft, error) {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("extract").Observe(time.Since(start).Seconds())
	}()
	draft, err := p.extractor.Extract(ctx, text)
	if err != nil {
		log.Warnf("err extracting event: %v", err)
		metrics.StageErrCount.WithLabelValues("extract").Inc()
		return models.EventDraft{}, err
	}
	return draft, nil
}

func (p *Pipeline) stageCreate(ctx context.Context, log *logrus.Entry, event models.ScheduledEvent) (string, error) {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("create").Observe(time.Since(start).Seconds())
	}()
	id, err := p.calendar.CreateEvent(ctx, event)
	if err != nil {
		log.Warnf("err creating event: %v", err)
		metrics.StageErrCount.WithLabelValues("create").Inc()
		return "", err
	}
	return id, nil
}

func (p *Pipeline) failed(log *logrus.Entry, err error) models.Outcome {
	f := failureFor(err)
	metrics.OutcomeCount.WithLabelValues(string(f.Kind)).Inc()
	log.Debugf("pipeline failed: kind=%s field=%s", f.Kind, f.Field)
	return models.Failed(f)
}

// failureFor maps a stage error onto the outcome taxonomy.
func failureFor(err error) models.Failure {
	var missing *models.MissingFieldError
	switch {
	case errors.Is(err, models.ErrMalformedResponse):
		return models.Failure{Kind: models.FailMalformedResponse, Detail: err.Error()}
	case errors.Is(err, models.ErrServiceError):
		return models.Failure{Kind: models.FailServiceError, Detail: err.Error()}
	case errors.As(err, &missing):
		return models.Failure{Kind: models.FailMissingField, Field: missing.Field, Detail: err.Error()}
	case errors.Is(err, models.ErrBadDatetime):
		return models.Failure{Kind: models.FailBadDatetime, Detail: err.Error()}
	case errors.Is(err, models.ErrAPIError):
		return models.Failure{Kind: models.FailAPIError, Detail: err.Error()}
	default:
		return models.Failure{Kind: models.FailUnknown, Detail: err.Error()}
	}
}
