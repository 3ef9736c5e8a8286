// Package collections provides a generic, mutable, observable ordered
// collection and the change events it raises.
//
// # Overview
//
// The central type is [Observable][T], a slice-backed sequence that raises
// exactly one [Event] after every structural mutation:
//
//	c := collections.NewObservable(1, 2, 3)
//	c.OnChange(func(e collections.Event[int]) error {
//	    fmt.Println(e.Action, e.NewItems)
//	    return nil
//	})
//	_ = c.Append(4) // prints "add [4]"
//
// # Events
//
// [Event] is a closed set of mutation kinds ([ActionAdd], [ActionRemove],
// [ActionReplace], [ActionMove], [ActionReset]) carrying the indices and
// items involved. Indices always describe the collection as it was before
// the mutation, so a consumer can replay the event against a second
// sequence of the same length.
//
// # Capabilities
//
// Code that only needs to watch or drive a collection should accept the
// [Notifier] or [OrderedCollection] interfaces rather than *Observable, so
// that alternative implementations can be substituted.
//
// # Concurrency
//
// Observable is not safe for concurrent use. Mutation and notification
// happen synchronously on the calling goroutine; listeners run before the
// mutating call returns.
package collections
