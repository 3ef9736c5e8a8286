package collections

import "errors"

// Sentinel errors returned by Observable mutations and Event validation.
var (
	// ErrIndexOutOfRange is returned when an index or span does not fit the
	// collection. The collection is left unchanged and no event is raised.
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrInvalidMove is returned when a move describes spans of different
	// lengths on each side.
	ErrInvalidMove = errors.New("collections: moved span lengths differ")

	// ErrUnknownAction is returned when an Event carries an Action outside
	// the closed set defined by this package.
	ErrUnknownAction = errors.New("collections: unknown change action")
)
