package errors

import (
	"fmt"
	"strings"
)

// Classification helpers

// IsNotFound checks if an error indicates a not found condition: an
// AppError tagged ErrorTypeNotFound, or a plain error whose message says
// "not found" or "does not exist".
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ErrorTypeNotFound
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "not found") ||
		strings.Contains(errMsg, "does not exist")
}

// IsDuplicate checks if an error indicates a conflict/duplicate condition.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ErrorTypeConflict
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate") || strings.Contains(errMsg, "already exists")
}

// IsContentTableError reports whether err is a bootstrap-fatal malformed
// or missing content-table configuration error (spec.md §4.11).
func IsContentTableError(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == ErrorTypeContentTable
}

// IsSerializationError reports whether err came from an invalid or
// wrong-schema snapshot document (internal/snapshot.Parse/Marshal).
func IsSerializationError(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == ErrorTypeSerialization
}

// IsInvariantViolation reports whether err is the kind
// internal/orchestrator.AdvanceHour recovers from a panicking subsystem
// (spec.md §7: fatal in debug builds, logged-and-dropped in release).
func IsInvariantViolation(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == ErrorTypeInvariantViolation
}

// Error chain helpers

// Wrap wraps an error with additional context, preserving an existing
// AppError's Type and Internal cause rather than demoting it to a
// generic internal error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		wrapped := *appErr
		wrapped.Message = message + ": " + appErr.Message
		return &wrapped
	}

	return NewInternalError(message, err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Cause returns the underlying cause of the error: an AppError's
// Internal field when set, otherwise err itself.
func Cause(err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok && appErr.Internal != nil {
		return appErr.Internal
	}

	return err
}
