package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrMalformedInput marks caller input that can never succeed.
	ErrMalformedInput = errors.New("malformed input")
)

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Entity string
	ID     int32
}

func NewNotFound(entity string, id int32) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find %s with id %d", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReferenceError reports a write rejected by a foreign key: a delete of a
// record others still point at, or a write pointing at a missing record. It
// matches ErrMalformedInput.
type ReferenceError struct {
	Op         string
	Constraint string
	InUse      bool
	Err        error
}

func (e *ReferenceError) Error() string {
	if e.InUse {
		return fmt.Sprintf("%s: record is still referenced (%s)", e.Op, e.Constraint)
	}
	return fmt.Sprintf("%s: referenced record does not exist (%s)", e.Op, e.Constraint)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrMalformedInput
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// StoreError wraps a failure of the entity store: unavailable database,
// timeout, constraint violation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreFailure reports whether err came from the entity store.
func IsStoreFailure(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
