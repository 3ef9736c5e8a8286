package synchronizer

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the synchronizer package.
//
// Use [errors.Is] for comparisons:
//
//	if errors.Is(err, synchronizer.ErrMappingFailure) {
//	    _ = s.ResyncTarget()
//	}
var (
	// ErrInvalidArgument is returned by [New] when a required input is nil.
	ErrInvalidArgument = errors.New("synchronizer: invalid argument")

	// ErrUnknownMode is returned for a [Mode] outside the defined set.
	ErrUnknownMode = errors.New("synchronizer: unknown mode")

	// ErrMappingFailure matches every [*MappingError].
	ErrMappingFailure = errors.New("synchronizer: mapping failed")

	// ErrDisposed is returned by operations on a disposed Synchronizer.
	ErrDisposed = errors.New("synchronizer: disposed")
)

// Direction names the way a relay travels.
type Direction int

const (
	// ToTarget relays a source change into the target.
	ToTarget Direction = iota + 1
	// ToSource relays a target change into the source.
	ToSource
)

// String returns "source->target" or "target->source".
func (d Direction) String() string {
	switch d {
	case ToTarget:
		return "source->target"
	case ToSource:
		return "target->source"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MappingError reports a [Mapper] failure during a relay.
type MappingError struct {
	// Direction of the relay that failed.
	Direction Direction

	// Index of the failing item within the mapped payload.
	Index int

	// Err is the error returned by the mapper.
	Err error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("synchronizer: mapping item %d %s: %v", e.Index, e.Direction, e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrMappingFailure].
func (e *MappingError) Is(target error) bool { return target == ErrMappingFailure }
