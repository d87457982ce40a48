package dto

import "time"

// StandardError is the error body returned by every endpoint on failure.
type StandardError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// NewStandardError creates a standard error body for the given request path
func NewStandardError(status int, errorLabel, message, path string) *StandardError {
	return &StandardError{
		Timestamp: time.Now(),
		Status:    status,
		Error:     errorLabel,
		Message:   message,
		Path:      path,
	}
}
