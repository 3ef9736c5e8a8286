package synchronizer

import (
	"fmt"

	"github.com/justinricheson/collectionsynchronizer/collections"
)

// relay applies the change e, observed on from, to the opposite collection.
// Items are mapped before to is touched.
func relay[From, To any](
	e collections.Event[From],
	from collections.Enumerable[From],
	to collections.OrderedCollection[To],
	fn Mapper[From, To],
	dir Direction,
	mirroredInserts bool,
) error {
	switch e.Action {
	case collections.ActionAdd:
		items, err := mapAll(e.NewItems, fn, dir)
		if err != nil {
			return err
		}
		if mirroredInserts && e.NewIndex < to.Count() {
			return to.Insert(e.NewIndex, items...)
		}
		return to.Append(items...)

	case collections.ActionRemove:
		return to.RemoveRange(e.OldIndex, e.OldCount())

	case collections.ActionReplace:
		items, err := mapAll(e.NewItems, fn, dir)
		if err != nil {
			return err
		}
		return to.ReplaceRange(e.OldIndex, e.OldCount(), items...)

	case collections.ActionMove:
		// The moved span is taken from to itself; nothing is re-mapped.
		return to.MoveRange(e.OldIndex, e.OldCount(), e.NewIndex, e.NewCount())

	case collections.ActionReset:
		return rebuild(from, to, fn, dir)

	default:
		return fmt.Errorf("%w: %d", collections.ErrUnknownAction, int(e.Action))
	}
}

// rebuild clears to and refills it with the image of from.
func rebuild[From, To any](
	from collections.Enumerable[From],
	to collections.OrderedCollection[To],
	fn Mapper[From, To],
	dir Direction,
) error {
	items, err := mapAll(from.All(), fn, dir)
	if err != nil {
		return err
	}
	if err := to.Clear(); err != nil {
		return err
	}
	return to.Append(items...)
}
