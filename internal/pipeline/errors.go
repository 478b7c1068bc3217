package pipeline

import (
	"errors"
	"fmt"
)

// ValidationError reports bad caller input. It is always raised before any
// adapter is called.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ServiceError wraps a failed or timed out adapter call.
type ServiceError struct {
	Service string
	Err     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Service, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// MalformedResponseError means the completion succeeded but its content could
// not be turned into the expected structure.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed model response: %s: %v", e.Reason, e.Err)
	}
	return "malformed model response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AsServiceError keeps an existing ServiceError and wraps anything else.
func AsServiceError(service string, err error) error {
	if err == nil {
		return nil
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return err
	}
	var me *MalformedResponseError
	if errors.As(err, &me) {
		return err
	}
	return &ServiceError{Service: service, Err: err}
}

// Kind names the error class for logs and metrics labels.
func Kind(err error) string {
	var (
		ve *ValidationError
		se *ServiceError
		me *MalformedResponseError
		ne *NotFoundError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &me):
		return "malformed_response"
	case errors.As(err, &se):
		return "service"
	case errors.As(err, &ne):
		return "not_found"
	default:
		return "internal"
	}
}
