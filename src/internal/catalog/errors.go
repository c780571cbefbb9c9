package catalog

import "errors"

var (
	// ErrNotFound is returned when no active record matches a removal lookup.
	ErrNotFound = errors.New("book not found")

	// ErrInvalidQuantity is returned when a quantity is negative on add, or
	// non-positive or larger than the stock on hand on removal.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrSink wraps failures writing to the addition log sink.
	ErrSink = errors.New("log sink")
)
