package synchronizer

import "github.com/justinricheson/collectionsynchronizer/arr"

// Mapper converts an item of one collection into an item of the other.
// It must not mutate either synchronized collection.
type Mapper[From, To any] func(From) (To, error)

// Pure adapts a total function that cannot fail into a [Mapper].
//
//	toView := synchronizer.Pure(strconv.Itoa)
func Pure[From, To any](fn func(From) To) Mapper[From, To] {
	if fn == nil {
		return nil
	}
	return func(v From) (To, error) { return fn(v), nil }
}

// mapAll maps items in order, stopping at the first failure.
func mapAll[From, To any](items []From, fn Mapper[From, To], dir Direction) ([]To, error) {
	out, idx, err := arr.TryMap[From, To](items, fn)
	if err != nil {
		return nil, &MappingError{Direction: dir, Index: idx, Err: err}
	}
	return out, nil
}
