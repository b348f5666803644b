package service

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound is returned when a referenced task id does not exist.
	// Existence is checked before authorization, so a missing task is always
	// reported as not found, never as forbidden.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserNotFound is returned when a referenced user id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when the actor lacks the required relationship
	// (not creator / not assignee) for the requested operation.
	ErrForbidden = errors.New("operation not permitted")

	// ErrInvalidCredentials is returned on failed login or token refresh.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when registering with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
)

// ValidationError reports malformed input with field-level detail. It is
// surfaced directly to the caller and never silently corrected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
