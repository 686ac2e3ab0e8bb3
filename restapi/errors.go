package restapi

import (
	"errors"
	"fmt"
)

// ErrUnauthorized matches 401 and 403 backend responses. The session behind
// the credential should be treated as invalid when it appears.
var ErrUnauthorized = errors.New("backend rejected credential")

// APIError is a non-2xx backend response with its decoded message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap surfaces [ErrUnauthorized] for credential rejections so callers can
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return ErrUnauthorized
	}
	return nil
}
