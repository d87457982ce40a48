package apperrors

import "errors"

// Error kinds raised by the data-access layer. The API layer translates each
// kind to an HTTP status; callers dispatch with errors.Is.
var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate indicates a unique-constraint violation
	ErrDuplicate = errors.New("duplicate entry")
	// ErrIntegrity indicates a referential-integrity violation
	ErrIntegrity = errors.New("referential integrity violation")
	// ErrValidation indicates malformed caller input
	ErrValidation = errors.New("validation failed")
	// ErrPersistence indicates a generic storage failure
	ErrPersistence = errors.New("database error")
	// ErrConnection indicates the connection pool could not supply a connection
	ErrConnection = errors.New("database connection error")
)

// CustomError carries an error kind together with context from the failure
// site. The original storage message is preserved, never rewritten.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewDuplicateError creates a duplicate-entry error with a message
func NewDuplicateError(message string) error {
	return &CustomError{Err: ErrDuplicate, Message: message}
}

// NewIntegrityError creates a referential-integrity error with a message
func NewIntegrityError(message string) error {
	return &CustomError{Err: ErrIntegrity, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidation, Message: message}
}

// NewPersistenceError creates a generic storage error with a message
func NewPersistenceError(message string) error {
	return &CustomError{Err: ErrPersistence, Message: message}
}

// NewConnectionError creates a connection error with a message
func NewConnectionError(message string) error {
	return &CustomError{Err: ErrConnection, Message: message}
}
