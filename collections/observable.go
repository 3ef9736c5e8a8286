package collections

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/justinricheson/collectionsynchronizer/arr"
)

// Listener receives the events raised by a collection. A non-nil error is
// returned from the mutating call that raised the event.
type Listener[T any] func(Event[T]) error

// Subscription identifies a registered [Listener]. The zero value never
// identifies a listener.
type Subscription uint64

type subscriber[T any] struct {
	id Subscription
	fn Listener[T]
}

// Observable is a mutable ordered collection that raises an [Event] after
// every structural mutation.
//
// # Creating a collection
//
//	c := collections.NewObservable(1, 2, 3)
//	c := collections.ObservableFrom([]string{"a", "b"})
//
// # Mutating
//
// Every mutation validates its indices first. An invalid call returns
// [ErrIndexOutOfRange] (or [ErrInvalidMove]) and changes nothing. A valid
// call applies the change, then notifies every listener in registration
// order and returns their joined errors. Calls that would not change the
// sequence (appending nothing, removing zero items) raise no event.
//
// Observable implements [OrderedCollection].
type Observable[T any] struct {
	items     []T
	listeners []subscriber[T]
	nextID    Subscription
}

var _ OrderedCollection[int] = (*Observable[int])(nil)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewObservable creates an Observable holding a copy of items.
func NewObservable[T any](items ...T) *Observable[T] {
	return ObservableFrom(items)
}

// ObservableFrom creates an Observable from a slice (the slice is copied).
func ObservableFrom[T any](items []T) *Observable[T] {
	return &Observable[T]{items: arr.Slice(items, 0, len(items))}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a snapshot copy of the items.
func (c *Observable[T]) All() []T { return arr.Slice(c.items, 0, len(c.items)) }

// Count returns the number of items.
func (c *Observable[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection holds no items.
func (c *Observable[T]) IsEmpty() bool { return len(c.items) == 0 }

// Get returns the item at index together with a presence flag.
func (c *Observable[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// Each calls fn(item, index) for every item of a snapshot taken before the
// first call, so fn may mutate the collection.
func (c *Observable[T]) Each(fn func(T, int)) {
	for i, item := range c.All() {
		fn(item, i)
	}
}

// String returns a JSON representation of the items.
// It implements [fmt.Stringer].
func (c *Observable[T]) String() string {
	b, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Listeners
// ─────────────────────────────────────────────────────────────────────────────

// OnChange registers fn and returns its subscription. A nil fn is ignored
// and yields the zero Subscription.
func (c *Observable[T]) OnChange(fn Listener[T]) Subscription {
	if fn == nil {
		return 0
	}
	c.nextID++
	c.listeners = append(c.listeners, subscriber[T]{id: c.nextID, fn: fn})
	return c.nextID
}

// RemoveChange unregisters the listener identified by sub. Unknown and
// already removed subscriptions are ignored.
func (c *Observable[T]) RemoveChange(sub Subscription) {
	for i, l := range c.listeners {
		if l.id == sub {
			c.listeners = arr.RemoveRange(c.listeners, i, 1)
			return
		}
	}
}

// Listeners returns the number of registered listeners.
func (c *Observable[T]) Listeners() int { return len(c.listeners) }

// emit notifies a snapshot of the listeners, so listeners added or removed
// while the event is dispatched only affect later events.
func (c *Observable[T]) emit(e Event[T]) error {
	var errs []error
	for _, l := range arr.Slice(c.listeners, 0, len(c.listeners)) {
		if err := l.fn(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutations
// ─────────────────────────────────────────────────────────────────────────────

// Append adds items at the end and raises an [ActionAdd] event.
func (c *Observable[T]) Append(items ...T) error {
	return c.Insert(len(c.items), items...)
}

// Insert inserts items before position index and raises an [ActionAdd]
// event. index may equal Count().
func (c *Observable[T]) Insert(index int, items ...T) error {
	if !arr.InRange(index, len(c.items)) {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfRange, index, len(c.items))
	}
	if len(items) == 0 {
		return nil
	}
	added := arr.Slice(items, 0, len(items))
	c.items = arr.Insert(c.items, index, added...)
	return c.emit(AddEvent(index, added))
}

// RemoveAt removes the item at index and raises an [ActionRemove] event.
func (c *Observable[T]) RemoveAt(index int) error {
	return c.RemoveRange(index, 1)
}

// RemoveRange removes count items starting at index and raises an
// [ActionRemove] event.
func (c *Observable[T]) RemoveRange(index, count int) error {
	if !arr.SpanInRange(index, count, len(c.items)) {
		return fmt.Errorf("%w: remove [%d,+%d), length %d", ErrIndexOutOfRange, index, count, len(c.items))
	}
	if count == 0 {
		return nil
	}
	removed := arr.Slice(c.items, index, count)
	c.items = arr.RemoveRange(c.items, index, count)
	return c.emit(RemoveEvent(index, removed))
}

// Set replaces the item at index and raises an [ActionReplace] event.
func (c *Observable[T]) Set(index int, item T) error {
	return c.ReplaceRange(index, 1, item)
}

// ReplaceRange removes removedCount items at index, inserts items in their
// place and raises a single [ActionReplace] event.
func (c *Observable[T]) ReplaceRange(index, removedCount int, items ...T) error {
	if !arr.SpanInRange(index, removedCount, len(c.items)) {
		return fmt.Errorf("%w: replace [%d,+%d), length %d", ErrIndexOutOfRange, index, removedCount, len(c.items))
	}
	if removedCount == 0 && len(items) == 0 {
		return nil
	}
	removed := arr.Slice(c.items, index, removedCount)
	added := arr.Slice(items, 0, len(items))
	c.items = arr.ReplaceRange(c.items, index, removedCount, added...)
	return c.emit(ReplaceEvent(index, removed, added))
}

// Move moves the item at oldIndex so that it ends up at newIndex and raises
// an [ActionMove] event.
func (c *Observable[T]) Move(oldIndex, newIndex int) error {
	return c.MoveRange(oldIndex, 1, newIndex, 1)
}

// MoveRange takes the span [oldIndex, oldIndex+oldCount) out of the
// collection and re-inserts it at newIndex, where newIndex addresses the
// collection without the span. oldCount and newCount must be equal; both are
// accepted so that a move event can be replayed verbatim.
//
// Moving a span onto its own position changes nothing and raises no event.
func (c *Observable[T]) MoveRange(oldIndex, oldCount, newIndex, newCount int) error {
	if oldCount != newCount {
		return fmt.Errorf("%w: %d != %d", ErrInvalidMove, oldCount, newCount)
	}
	n := len(c.items)
	if !arr.SpanInRange(oldIndex, oldCount, n) || !arr.InRange(newIndex, n-oldCount) {
		return fmt.Errorf("%w: move [%d,+%d) to %d, length %d", ErrIndexOutOfRange, oldIndex, oldCount, newIndex, n)
	}
	if oldCount == 0 || oldIndex == newIndex {
		return nil
	}
	span := arr.Slice(c.items, oldIndex, oldCount)
	c.items = arr.MoveRange(c.items, oldIndex, oldCount, newIndex)
	return c.emit(MoveEvent(oldIndex, newIndex, span))
}

// Clear removes every item and raises an [ActionReset] event, even when the
// collection was already empty.
func (c *Observable[T]) Clear() error {
	c.items = []T{}
	return c.emit(ResetEvent[T]())
}

// ResetTo replaces the whole contents with a copy of items and raises an
// [ActionReset] event.
func (c *Observable[T]) ResetTo(items ...T) error {
	c.items = arr.Slice(items, 0, len(items))
	return c.emit(ResetEvent[T]())
}
