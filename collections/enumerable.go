package collections

// Enumerable is the read-only surface of an ordered collection.
type Enumerable[T any] interface {
	// All returns a snapshot copy of every item.
	All() []T

	// Count returns the number of items.
	Count() int

	// Get returns the item at index and whether index was in range.
	Get(index int) (T, bool)

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))
}

// Notifier is the observer capability of an ordered collection.
//
// OnChange registers a listener and returns a token that identifies it;
// RemoveChange unregisters that listener and is a no-op for unknown or
// already-removed tokens.
type Notifier[T any] interface {
	OnChange(fn Listener[T]) Subscription
	RemoveChange(sub Subscription)
}

// OrderedCollection is a mutable, observable sequence. Every mutation raises
// exactly one [Event] through the [Notifier] after the change is visible, and
// returns the joined errors of the listeners it notified.
//
// [Observable] is the reference implementation.
type OrderedCollection[T any] interface {
	Enumerable[T]
	Notifier[T]

	Append(items ...T) error
	Insert(index int, items ...T) error
	RemoveRange(index, count int) error
	ReplaceRange(index, removedCount int, items ...T) error
	MoveRange(oldIndex, oldCount, newIndex, newCount int) error
	Clear() error
}
