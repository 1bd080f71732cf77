package errors

import "fmt"

type NotFoundError struct {
	Entity  string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError builds a not-found error for an entity kind. A nil id means
// the lookup failed for the kind as a whole (e.g. a bulk fetch came up short).
func NewNotFoundError(entity string, id interface{}) *NotFoundError {
	if id == nil {
		return &NotFoundError{
			Entity:  entity,
			Message: fmt.Sprintf("%s not found", entity),
		}
	}
	return &NotFoundError{
		Entity:  entity,
		Message: fmt.Sprintf("%s with id %v not found", entity, id),
	}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

func IsBadRequestError(err error) (*BadRequestError, bool) {
	if bre, ok := err.(*BadRequestError); ok {
		return bre, true
	}
	return nil, false
}

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

func IsForbiddenError(err error) (*ForbiddenError, bool) {
	if fe, ok := err.(*ForbiddenError); ok {
		return fe, true
	}
	return nil, false
}

type InvalidOrderStateError struct {
	Message string
}

func (e *InvalidOrderStateError) Error() string {
	return e.Message
}

func NewInvalidOrderStateError(message string) *InvalidOrderStateError {
	return &InvalidOrderStateError{Message: message}
}

func IsInvalidOrderStateError(err error) (*InvalidOrderStateError, bool) {
	if ise, ok := err.(*InvalidOrderStateError); ok {
		return ise, true
	}
	return nil, false
}

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
