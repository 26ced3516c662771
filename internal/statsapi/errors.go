package statsapi

import (
	"errors"
	"fmt"
)

// UnavailableError indicates the upstream Stats API could not produce a
// usable document: transport failure, timeout, non-2xx status, empty
// body, or invalid JSON.
type UnavailableError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("statsapi: unavailable (status=%d) for %s", e.StatusCode, e.URL)
	}
	if e.Err != nil {
		return fmt.Sprintf("statsapi: unavailable for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("statsapi: unavailable for %s", e.URL)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// IsUnavailable reports whether err wraps an UnavailableError.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
