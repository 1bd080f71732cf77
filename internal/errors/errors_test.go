package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_WithID(t *testing.T) {
	err := NewNotFoundError("Restaurant", int64(42))

	assert.NotNil(t, err)
	assert.Equal(t, "Restaurant", err.Entity)
	assert.Equal(t, "Restaurant with id 42 not found", err.Error())
}

func TestNotFoundError_WithoutID(t *testing.T) {
	err := NewNotFoundError("MenuItem", nil)

	assert.Equal(t, "MenuItem not found", err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("Order", int64(1))

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
	assert.Equal(t, "Order", nfe.Entity)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	nfe, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, nfe)
}

func TestBadRequestError_Creation(t *testing.T) {
	err := NewBadRequestError("Price cannot be negative")

	assert.Equal(t, "Price cannot be negative", err.Error())

	bre, ok := IsBadRequestError(err)
	assert.True(t, ok)
	assert.NotNil(t, bre)
}

func TestBadRequestError_IsBadRequestError_WithOtherError(t *testing.T) {
	_, ok := IsBadRequestError(errors.New("boom"))
	assert.False(t, ok)
}

func TestForbiddenError_Creation(t *testing.T) {
	err := NewForbiddenError("access denied")

	assert.Equal(t, "access denied", err.Error())

	fe, ok := IsForbiddenError(err)
	assert.True(t, ok)
	assert.NotNil(t, fe)
}

func TestInvalidOrderStateError_Creation(t *testing.T) {
	err := NewInvalidOrderStateError("Cannot update order - already delivered")

	assert.Equal(t, "Cannot update order - already delivered", err.Error())

	ise, ok := IsInvalidOrderStateError(err)
	assert.True(t, ok)
	assert.NotNil(t, ise)
}

func TestInvalidOrderStateError_NotBadRequest(t *testing.T) {
	err := NewInvalidOrderStateError("terminal")

	_, ok := IsBadRequestError(err)
	assert.False(t, ok)
}

func TestValidationError_Creation(t *testing.T) {
	details := []ValidationDetail{
		{Field: "items", Message: "items must not be empty"},
		{Field: "userId", Message: "userId is required"},
	}

	err := NewValidationError("validation failed", details...)

	assert.Equal(t, "validation failed", err.Error())
	assert.Len(t, err.Details, 2)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to query database", cause)

	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to query database")
	assert.Contains(t, err.Error(), "database error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
