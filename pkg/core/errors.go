package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrEmptyCollection = errors.New("collection contains no elements")
	ErrInvalidArgument = errors.New("invalid argument")
)

// CollectionError reports a helper operation that could not complete on the
// collection it was given.
type CollectionError struct {
	Op    string // operation name, e.g. "pop" or "to_table"
	Index int    // element or record index involved (-1 if none)
	Err   error
}

// NewCollectionError creates a CollectionError that is not tied to an index.
func NewCollectionError(op string, err error) *CollectionError {
	return &CollectionError{Op: op, Index: -1, Err: err}
}

func (e *CollectionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s failed at index %d: %v", e.Op, e.Index, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// IsEmptyCollection reports whether err was caused by reading from an empty collection.
func IsEmptyCollection(err error) bool {
	return errors.Is(err, ErrEmptyCollection)
}
