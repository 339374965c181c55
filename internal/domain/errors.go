package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound signals that no record matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrExtensionDenied signals that the loan duration is already at the
	// 28-day cap.
	ErrExtensionDenied = errors.New("borrowing already at maximum duration")
	// ErrMediumUnavailable signals a checkout attempt on a medium with an
	// active borrowing.
	ErrMediumUnavailable = errors.New("medium is already borrowed")
)

// ValidationError aggregates every violation found in a submission so a
// single attempt reports all of them at once.
type ValidationError struct {
	Messages []string `json:"messages"`
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NetworkError wraps a transport-level failure or non-success status from
// the remote backend.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }
