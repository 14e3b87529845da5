package models

import (
	"fmt"
	"strings"
)

const defaultErrorMessage = "An error occurred"

// APIError is the body the server sends with every non-2xx response.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`

	// Cause is a sentinel the transport attaches for errors.Is matching,
	// for example the unauthorized sentinel on 401.
	Cause error `json:"-"`
}

// Error prefers details over message and falls back to a generic text when
// the server sent neither.
func (e *APIError) Error() string {
	switch {
	case strings.TrimSpace(e.Details) != "":
		return e.Details
	case strings.TrimSpace(e.Message) != "":
		return e.Message
	default:
		return defaultErrorMessage
	}
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Describe renders the full error for logs.
func (e *APIError) Describe() string {
	return fmt.Sprintf("status=%d error=%q message=%q details=%q", e.StatusCode, e.Code, e.Message, e.Details)
}
