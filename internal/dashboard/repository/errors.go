package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateRange is returned when the end of a range is before its start.
	ErrInvalidDateRange = errors.New("start date must be before end date")
	// ErrMalformedResponse is returned when an upstream answered but the body could not be used.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// NetworkError reports that an upstream source could not be reached or refused the request.
type NetworkError struct {
	Source     string
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s source returned status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("%s source is unreachable: %v", e.Source, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
