package models

import "time"

// EventDraft is what the extraction service returns, before validation.
// DurationMinutes is a pointer so an explicit 0 can be told apart from an
// absent field.
type EventDraft struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Description     string `json:"description"`
	DurationMinutes *int   `json:"duration_minutes"`
}

// Event is a validated draft: all fields present, defaults applied.
// Date and Time stay strings here, temporal parsing belongs to scheduling.
type Event struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ScheduledEvent carries concrete start/end wall-clock instants plus the
// IANA zone the calendar must interpret them in. No zone conversion is done
// on our side.
type ScheduledEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	TimeZone    string    `json:"timeZone"`
}
