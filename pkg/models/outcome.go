package models

// FailureKind classifies where in the pipeline a request died.
type FailureKind string

const (
	FailServiceError      FailureKind = "service_error"
	FailMalformedResponse FailureKind = "malformed_response"
	FailMissingField      FailureKind = "missing_field"
	FailBadDatetime       FailureKind = "bad_datetime"
	FailAPIError          FailureKind = "api_error"
	FailUnknown           FailureKind = "unknown"
)

// Failure is a terminal pipeline failure. Detail keeps the upstream message
// for logs, it is never shown to the end user as is.
type Failure struct {
	Kind   FailureKind `json:"kind"`
	Field  string      `json:"field,omitempty"`
	Detail string      `json:"detail,omitempty"`
}

// Outcome is the pipeline's terminal result: either a created event or a
// typed failure, never both.
type Outcome struct {
	EventID string          `json:"eventId,omitempty"`
	Event   *ScheduledEvent `json:"event,omitempty"`
	Failure *Failure        `json:"failure,omitempty"`
}

func Created(id string, event ScheduledEvent) Outcome {
	return Outcome{EventID: id, Event: &event}
}

func Failed(f Failure) Outcome {
	return Outcome{Failure: &f}
}

// OK reports whether the event was created.
func (o Outcome) OK() bool {
	return o.Failure == nil
}
