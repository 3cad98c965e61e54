package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.True(t, IsNotFound(NewNotFoundError("treasure type X")))
	assert.True(t, IsNotFound(errors.New("party does not exist")))
	assert.False(t, IsNotFound(NewInternalError("boom", nil)))
}

func TestIsDuplicate(t *testing.T) {
	assert.False(t, IsDuplicate(nil))
	assert.True(t, IsDuplicate(NewConflictError("hoard already claimed")))
	assert.True(t, IsDuplicate(errors.New("duplicate entry")))
	assert.False(t, IsDuplicate(NewNotFoundError("X")))
}

func TestIsContentTableError(t *testing.T) {
	assert.True(t, IsContentTableError(NewContentTableError("no treasure type tables configured")))
	assert.False(t, IsContentTableError(NewSerializationError("bad schema")))
	assert.False(t, IsContentTableError(errors.New("plain error")))
}

func TestIsSerializationError(t *testing.T) {
	assert.True(t, IsSerializationError(NewSerializationError("malformed document")))
	assert.False(t, IsSerializationError(NewContentTableError("missing table")))
}

func TestIsInvariantViolation(t *testing.T) {
	assert.True(t, IsInvariantViolation(NewInvariantViolation("tick recovered from panic: boom")))
	assert.False(t, IsInvariantViolation(NewConflictError("hoard already claimed")))
}

func TestWrap_PreservesAppErrorType(t *testing.T) {
	original := NewSerializationError("malformed document")
	wrapped := Wrap(original, "restore")

	appErr, ok := wrapped.(*AppError)
	require := assert.New(t)
	require.True(ok)
	require.Equal(ErrorTypeSerialization, appErr.Type)
	require.Equal("restore: malformed document", appErr.Message)
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(errors.New("disk full"), "snapshot write")

	appErr, ok := wrapped.(*AppError)
	assert.True(t, ok)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.EqualError(t, appErr.Internal, "disk full")
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "anything"))
}

func TestWrapf_FormatsMessage(t *testing.T) {
	wrapped := Wrapf(errors.New("parse failed"), "treasure type %q coin %q", "A", "gp")

	appErr, ok := wrapped.(*AppError)
	assert.True(t, ok)
	assert.Equal(t, `treasure type "A" coin "gp"`, appErr.Message)
}

func TestCause_ReturnsInternalWhenSet(t *testing.T) {
	internal := errors.New("underlying")
	wrapped := NewSerializationError("malformed document").WithInternal(internal)

	assert.Equal(t, internal, Cause(wrapped))
}

func TestCause_ReturnsErrItselfWithoutInternal(t *testing.T) {
	err := errors.New("plain")
	assert.Equal(t, err, Cause(err))
}
