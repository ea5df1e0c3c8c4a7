package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPartyFetchFailed indicates that the outstanding bills or balance of a party could not be loaded.
var ErrPartyFetchFailed = errors.New("party fetch failed")

// ErrAllocationOutOfRange indicates an allocation value outside the range a bill can accept.
var ErrAllocationOutOfRange = errors.New("allocation out of range")

// ErrSubmissionRejected indicates that a payment submission was refused.
var ErrSubmissionRejected = errors.New("submission rejected")

// ErrConflict indicates that a settlement session was saved by another writer in the meantime.
var ErrConflict = errors.New("concurrent update conflict")

// ErrStaleResponse indicates that a party fetch was superseded by a newer party selection.
var ErrStaleResponse = errors.New("stale response discarded")

// AppError is an infrastructure failure tagged with the HTTP status it should surface as.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
