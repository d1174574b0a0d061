package service

import (
	"strings"

	"github.com/olegmish/quickmeet/pkg/models"
)

const defaultDurationMinutes = 60

// Validate checks required draft fields and applies defaults. It does not
// touch date/time syntax, that belongs to ComputeSchedule.
func Validate(draft models.EventDraft) (models.Event, error) {
	required := []struct {
		name  string
		value string
	}{
		{"title", draft.Title},
		{"date", draft.Date},
		{"time", draft.Time},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return models.Event{}, &models.MissingFieldError{Field: f.name}
		}
	}

	description := draft.Description
	if strings.TrimSpace(description) == "" {
		description = draft.Title
	}
	duration := defaultDurationMinutes
	if draft.DurationMinutes != nil {
		duration = *draft.DurationMinutes
	}

	return models.Event{
		Title:           draft.Title,
		Date:            draft.Date,
		Time:            draft.Time,
		Description:     description,
		DurationMinutes: duration,
	}, nil
}
