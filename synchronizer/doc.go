// Package synchronizer keeps two observable ordered collections of different
// element types mirrored.
//
// A [Synchronizer] listens to structural changes on a source and/or a target
// collection and relays each change to the opposite side, translating the
// items through a pair of caller supplied [Mapper] functions:
//
//	models := collections.NewObservable(1, 2, 3)
//	views := collections.NewObservable("1", "2", "3")
//
//	s, err := synchronizer.New(models, views,
//	    func(v string) (int, error) { return strconv.Atoi(v) },
//	    synchronizer.Pure(strconv.Itoa),
//	)
//	if err != nil {
//	    return err
//	}
//	defer s.Dispose()
//
//	_ = models.Append(4) // views is now ["1" "2" "3" "4"]
//
// # Relay rules
//
//   - Add: the mapped items are appended to the opposite collection, not
//     inserted at the mirrored index. Use [WithMirroredInserts] to insert at
//     the same index instead.
//   - Remove: the same span is removed on the opposite side.
//   - Replace: the same span is removed and the mapped replacement inserted.
//   - Move: the same span is moved, without re-mapping. This assumes both
//     collections are positionally aligned.
//   - Reset: the opposite collection is cleared and rebuilt from a snapshot
//     of the changed collection.
//
// No initial reconciliation happens at construction; only later changes are
// relayed. Use [Synchronizer.ResyncTarget] or [Synchronizer.ResyncSource] for
// an explicit full rebuild.
//
// # Reentrancy
//
// While a relay applies a change to the opposite collection, the change it
// raises there is ignored by the Synchronizer, so a relay never bounces back.
// The guard is released on every exit path, including mapper failures.
//
// # Errors
//
// A failing [Mapper] produces a [*MappingError] (matching [ErrMappingFailure])
// that is returned from the mutating call on the collection that triggered
// the relay. Mapping happens before the opposite collection is touched, so a
// failed relay leaves that collection as it was. The two collections are then
// out of sync until the caller rebuilds one side.
//
// A Synchronizer is not safe for concurrent use; all mutations of both
// collections must happen on one goroutine.
package synchronizer
