package service

import (
	"fmt"
	"time"

	"github.com/olegmish/quickmeet/pkg/models"
)

const datetimeLayout = "2006-01-02 15:04"

// ComputeSchedule turns a validated event into concrete start/end instants.
// The instants are wall-clock times annotated with the configured zone; the
// calendar service is the one doing actual zone arithmetic.
//
// A zero duration is accepted and yields a zero-length event. A negative
// duration is rejected: the calendar contract requires end >= start.
func ComputeSchedule(event models.Event, timezone string) (models.ScheduledEvent, error) {
	start, err := time.Parse(datetimeLayout, event.Date+" "+event.Time)
	if err != nil {
		return models.ScheduledEvent{}, fmt.Errorf("%w: %v", models.ErrBadDatetime, err)
	}
	if event.DurationMinutes < 0 {
		return models.ScheduledEvent{}, fmt.Errorf("%w: negative duration %d", models.ErrBadDatetime, event.DurationMinutes)
	}
	end := start.Add(time.Duration(event.DurationMinutes) * time.Minute)

	return models.ScheduledEvent{
		Title:       event.Title,
		Description: event.Description,
		Start:       start,
		End:         end,
		TimeZone:    timezone,
	}, nil
}
