package models

import "errors"

var (
	ErrServiceError      = errors.New("extraction service error")
	ErrMalformedResponse = errors.New("malformed extraction response")
	ErrBadDatetime       = errors.New("bad date or time")
	ErrAPIError          = errors.New("calendar api error")
)

// MissingFieldError names the required draft field that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}
