package synchronizer

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/justinricheson/collectionsynchronizer/collections"
)

// Synchronizer mirrors structural changes between a source collection of A
// and a target collection of B. See the package documentation for the relay
// rules.
//
// The Synchronizer borrows both collections; the caller keeps ownership and
// may mutate either one at any time outside a relay.
type Synchronizer[A, B any] struct {
	source   collections.OrderedCollection[A]
	target   collections.OrderedCollection[B]
	toSource Mapper[B, A]
	toTarget Mapper[A, B]

	mode            Mode
	mirroredInserts bool
	log             *zap.Logger

	sourceSub collections.Subscription
	targetSub collections.Subscription
	relaying  guard
	disposed  bool
}

// New creates a Synchronizer and subscribes to the collection(s) selected by
// the mode (default [TwoWay]).
//
// It returns an error wrapping [ErrInvalidArgument] if source, target,
// toSource or toTarget is nil, and [ErrUnknownMode] for an undefined mode.
// Nothing is subscribed when New fails.
//
// The two collections do not need to agree at construction time; only
// changes made after New returns are relayed.
func New[A, B any](
	source collections.OrderedCollection[A],
	target collections.OrderedCollection[B],
	toSource Mapper[B, A],
	toTarget Mapper[A, B],
	opts ...Option,
) (*Synchronizer[A, B], error) {
	switch {
	case isNil(source):
		return nil, fmt.Errorf("%w: source is nil", ErrInvalidArgument)
	case isNil(target):
		return nil, fmt.Errorf("%w: target is nil", ErrInvalidArgument)
	case toSource == nil:
		return nil, fmt.Errorf("%w: toSource is nil", ErrInvalidArgument)
	case toTarget == nil:
		return nil, fmt.Errorf("%w: toTarget is nil", ErrInvalidArgument)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if !cfg.mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(cfg.mode))
	}

	s := &Synchronizer[A, B]{
		source:          source,
		target:          target,
		toSource:        toSource,
		toTarget:        toTarget,
		mode:            cfg.mode,
		mirroredInserts: cfg.mirroredInserts,
		log:             cfg.logger.With(zap.Stringer("mode", cfg.mode)),
	}
	if s.mode.WatchesSource() {
		s.sourceSub = source.OnChange(s.onSourceChange)
	}
	if s.mode.WatchesTarget() {
		s.targetSub = target.OnChange(s.onTargetChange)
	}
	return s, nil
}

// Mode returns the relay mode chosen at construction.
func (s *Synchronizer[A, B]) Mode() Mode { return s.mode }

// Source returns the source collection.
func (s *Synchronizer[A, B]) Source() collections.OrderedCollection[A] { return s.source }

// Target returns the target collection.
func (s *Synchronizer[A, B]) Target() collections.OrderedCollection[B] { return s.target }

// Disposed reports whether Dispose has been called.
func (s *Synchronizer[A, B]) Disposed() bool { return s.disposed }

// Dispose unsubscribes from both collections. Afterwards the collections
// evolve independently. Calling Dispose more than once is safe.
func (s *Synchronizer[A, B]) Dispose() {
	s.source.RemoveChange(s.sourceSub)
	s.target.RemoveChange(s.targetSub)
	s.sourceSub, s.targetSub = 0, 0
	if !s.disposed {
		s.log.Debug("synchronizer disposed")
	}
	s.disposed = true
}

// ResyncTarget discards the target's contents and rebuilds it from the
// source through toTarget, regardless of mode. Use it to recover after a
// failed relay.
func (s *Synchronizer[A, B]) ResyncTarget() error {
	if s.disposed {
		return ErrDisposed
	}
	release, ok := s.relaying.acquire()
	if !ok {
		return nil
	}
	defer release()
	return s.done(ToTarget, "resync", rebuild[A, B](s.source, s.target, s.toTarget, ToTarget))
}

// ResyncSource discards the source's contents and rebuilds it from the
// target through toSource, regardless of mode.
func (s *Synchronizer[A, B]) ResyncSource() error {
	if s.disposed {
		return ErrDisposed
	}
	release, ok := s.relaying.acquire()
	if !ok {
		return nil
	}
	defer release()
	return s.done(ToSource, "resync", rebuild[B, A](s.target, s.source, s.toSource, ToSource))
}

func (s *Synchronizer[A, B]) onSourceChange(e collections.Event[A]) error {
	release, ok := s.relaying.acquire()
	if !ok {
		return nil
	}
	defer release()
	err := relay[A, B](e, s.source, s.target, s.toTarget, ToTarget, s.mirroredInserts)
	return s.done(ToTarget, e.String(), err)
}

func (s *Synchronizer[A, B]) onTargetChange(e collections.Event[B]) error {
	release, ok := s.relaying.acquire()
	if !ok {
		return nil
	}
	defer release()
	err := relay[B, A](e, s.target, s.source, s.toSource, ToSource, s.mirroredInserts)
	return s.done(ToSource, e.String(), err)
}

// done logs the outcome of a relay and returns err unchanged.
func (s *Synchronizer[A, B]) done(dir Direction, what string, err error) error {
	if err != nil {
		s.log.Warn("relay failed",
			zap.Stringer("direction", dir),
			zap.String("change", what),
			zap.Error(err))
		return err
	}
	s.log.Debug("relayed",
		zap.Stringer("direction", dir),
		zap.String("change", what),
		zap.Int("source_count", s.source.Count()),
		zap.Int("target_count", s.target.Count()))
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
