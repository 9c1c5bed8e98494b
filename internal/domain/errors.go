package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCursor is the server's signal that the stored cursor
	// token is stale or unknown; recover by falling back to a
	// timestamp cursor, never by blind retry.
	ErrInvalidCursor = errors.New("cursor not recognized by server")

	ErrCursorNotFound = errors.New("no saved cursor")
	ErrIssueNotFound  = errors.New("issue not found")
)

// AuthError aborts the run before polling starts. Reason must never
// contain the credential value.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// ScopeMismatchError means the server-side project is not the one this
// agent was configured for; continuing would poll and write back
// against the wrong project.
type ScopeMismatchError struct {
	Expected ProjectID
	Actual   ProjectID
}

func (e *ScopeMismatchError) Error() string {
	return fmt.Sprintf("project scope mismatch: configured for %q, server returned %q", e.Expected, e.Actual)
}
