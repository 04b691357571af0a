package ownerstats

import "errors"

// ErrInvalidOwnerID is returned when an owner identifier does not conform
// to the document-store ID format.
var ErrInvalidOwnerID = errors.New("invalid owner id")

// DependencyError wraps a data-store failure with the operation that hit it.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func depErr(op string, err error) error {
	return &DependencyError{Op: op, Err: err}
}
