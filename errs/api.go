package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Error taxonomy sentinels. Every failure path in the service maps onto
// exactly one of these so callers can tell the cases apart with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrCredential       = errors.New("invalid credentials")
	ErrStorageIO        = errors.New("storage failure")
	ErrConflict         = errors.New("resource conflict")
)

type ApiErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// NewValidationError reports malformed or missing input on a single field.
func NewValidationError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    reason,
		Field:      field,
	}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    message,
	}
}

// NewNotFound reports that a referenced entity id does not exist.
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewPermissionDenied reports that the actor lacks rights for the attempted
// action. Deliberately distinct from NewNotFound so callers can tell
// "resource absent" from "not allowed".
func NewPermissionDenied(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrPermissionDenied,
		Details:    message,
	}
}

func NewConflict(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrConflict),
	}
}

// NewStorageError reports an underlying store or filesystem failure. The
// triggering operation's transaction must have rolled back in full.
func NewStorageError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageIO,
		Details:    fmt.Sprintf("failed to %s", operation),
		Cause:      cause,
	}
}

func NewInternalErrorWithCause(message string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New(message),
		Cause:      cause,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

func IsCredential(err error) bool {
	return errors.Is(err, ErrCredential)
}

func IsStorageIO(err error) bool {
	return errors.Is(err, ErrStorageIO)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
