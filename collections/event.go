package collections

import (
	"fmt"

	"github.com/justinricheson/collectionsynchronizer/arr"
)

// Action identifies the kind of structural mutation an [Event] describes.
type Action int

const (
	// ActionAdd: NewItems were inserted starting at NewIndex.
	ActionAdd Action = iota + 1
	// ActionRemove: OldItems were removed starting at OldIndex.
	ActionRemove
	// ActionReplace: OldItems at OldIndex were replaced by NewItems.
	ActionReplace
	// ActionMove: the span OldItems at OldIndex was moved to NewIndex.
	ActionMove
	// ActionReset: the contents changed wholesale and must be re-read.
	ActionReset
)

// String returns the lower-case name of the action.
func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionReplace:
		return "replace"
	case ActionMove:
		return "move"
	case ActionReset:
		return "reset"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Event describes one structural mutation of an ordered collection.
//
// Which fields are meaningful depends on Action:
//
//	Add      NewIndex, NewItems
//	Remove   OldIndex, OldItems
//	Replace  OldIndex, OldItems (removed), NewIndex, NewItems (inserted)
//	Move     OldIndex, NewIndex, OldItems == NewItems (the moved span)
//	Reset    none
//
// Events are values; receivers must treat the item slices as read-only.
type Event[T any] struct {
	Action   Action
	OldIndex int
	NewIndex int
	OldItems []T
	NewItems []T
}

// AddEvent describes items inserted at index.
func AddEvent[T any](index int, items []T) Event[T] {
	return Event[T]{Action: ActionAdd, OldIndex: -1, NewIndex: index, NewItems: items}
}

// RemoveEvent describes removed items that started at index.
func RemoveEvent[T any](index int, removed []T) Event[T] {
	return Event[T]{Action: ActionRemove, OldIndex: index, NewIndex: -1, OldItems: removed}
}

// ReplaceEvent describes removed items at index replaced by items.
func ReplaceEvent[T any](index int, removed, items []T) Event[T] {
	return Event[T]{Action: ActionReplace, OldIndex: index, NewIndex: index, OldItems: removed, NewItems: items}
}

// MoveEvent describes the span moved from oldIndex to newIndex. newIndex
// addresses the sequence after the span was taken out.
func MoveEvent[T any](oldIndex, newIndex int, span []T) Event[T] {
	return Event[T]{Action: ActionMove, OldIndex: oldIndex, NewIndex: newIndex, OldItems: span, NewItems: span}
}

// ResetEvent describes a wholesale change.
func ResetEvent[T any]() Event[T] {
	return Event[T]{Action: ActionReset, OldIndex: -1, NewIndex: -1}
}

// OldCount returns the number of removed or moved items. It is 0 when the
// event carries none.
func (e Event[T]) OldCount() int { return arr.Count(e.OldItems) }

// NewCount returns the number of added, inserted or moved items. It is 0
// when the event carries none.
func (e Event[T]) NewCount() int { return arr.Count(e.NewItems) }

// Validate reports whether e can be applied to a sequence of the given
// length, which is the length before the mutation took place.
func (e Event[T]) Validate(length int) error {
	switch e.Action {
	case ActionAdd:
		if !arr.InRange(e.NewIndex, length) {
			return fmt.Errorf("%w: add at %d, length %d", ErrIndexOutOfRange, e.NewIndex, length)
		}
	case ActionRemove, ActionReplace:
		if !arr.SpanInRange(e.OldIndex, e.OldCount(), length) {
			return fmt.Errorf("%w: %s [%d,+%d), length %d",
				ErrIndexOutOfRange, e.Action, e.OldIndex, e.OldCount(), length)
		}
	case ActionMove:
		if e.OldCount() != e.NewCount() {
			return fmt.Errorf("%w: %d != %d", ErrInvalidMove, e.OldCount(), e.NewCount())
		}
		if !arr.SpanInRange(e.OldIndex, e.OldCount(), length) ||
			!arr.InRange(e.NewIndex, length-e.OldCount()) {
			return fmt.Errorf("%w: move [%d,+%d) to %d, length %d",
				ErrIndexOutOfRange, e.OldIndex, e.OldCount(), e.NewIndex, length)
		}
	case ActionReset:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAction, int(e.Action))
	}
	return nil
}

// String returns a compact description such as "replace@2 -1 +2".
func (e Event[T]) String() string {
	switch e.Action {
	case ActionAdd:
		return fmt.Sprintf("add@%d +%d", e.NewIndex, e.NewCount())
	case ActionRemove:
		return fmt.Sprintf("remove@%d -%d", e.OldIndex, e.OldCount())
	case ActionReplace:
		return fmt.Sprintf("replace@%d -%d +%d", e.OldIndex, e.OldCount(), e.NewCount())
	case ActionMove:
		return fmt.Sprintf("move@%d->%d x%d", e.OldIndex, e.NewIndex, e.OldCount())
	default:
		return e.Action.String()
	}
}
