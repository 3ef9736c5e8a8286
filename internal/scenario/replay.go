package scenario

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/justinricheson/collectionsynchronizer/collections"
	"github.com/justinricheson/collectionsynchronizer/synchronizer"
)

// ErrNotImage is returned by the reverse mapping for target items that no
// source item maps to.
var ErrNotImage = errors.New("scenario: value is not an image of a source item")

// Options tune a replay.
type Options struct {
	// Logger receives the synchronizer's relay trace. Defaults to a no-op.
	Logger *zap.Logger
	// Mode overrides the scenario's mode when non-nil.
	Mode *synchronizer.Mode
}

// StepResult is the state after one step.
type StepResult struct {
	Number     int
	Step       Step
	Source     []int
	Target     []int
	Err        error
	Mismatches []string
}

// Failed reports whether the step returned an error or missed an
// expectation.
func (r StepResult) Failed() bool { return r.Err != nil || len(r.Mismatches) > 0 }

// Result is the outcome of a replay.
type Result struct {
	Name   string
	Mode   synchronizer.Mode
	Steps  []StepResult
	Source []int
	Target []int
}

// Failed reports whether any step failed.
func (r *Result) Failed() bool {
	return slices.ContainsFunc(r.Steps, StepResult.Failed)
}

// Digest returns the BLAKE2b digest of the final collections.
func (r *Result) Digest() string { return Digest(r.Source, r.Target) }

// Run replays sc. Step errors and failed expectations are recorded in the
// result and do not stop the replay; only setup failures are returned.
func Run(sc *Scenario, opts Options) (*Result, error) {
	mode, err := synchronizer.ParseMode(sc.Mode)
	if err != nil {
		return nil, err
	}
	if opts.Mode != nil {
		mode = *opts.Mode
	}

	src := collections.ObservableFrom(sc.Source)
	dst := collections.ObservableFrom(sc.Target)
	syncOpts := []synchronizer.Option{
		synchronizer.WithMode(mode),
		synchronizer.WithLogger(opts.Logger),
	}
	if sc.MirroredInserts {
		syncOpts = append(syncOpts, synchronizer.WithMirroredInserts())
	}
	s, err := synchronizer.New[int, int](src, dst, sc.toSource, sc.toTarget, syncOpts...)
	if err != nil {
		return nil, err
	}
	defer s.Dispose()

	res := &Result{Name: sc.Name, Mode: mode}
	for i, st := range sc.Steps {
		sr := StepResult{Number: i + 1, Step: st}
		sr.Err = apply(st, s, src, dst)
		sr.Source, sr.Target = src.All(), dst.All()
		if st.ExpectSource != nil && !slices.Equal(sr.Source, st.ExpectSource) {
			sr.Mismatches = append(sr.Mismatches, fmt.Sprintf("source = %v, want %v", sr.Source, st.ExpectSource))
		}
		if st.ExpectTarget != nil && !slices.Equal(sr.Target, st.ExpectTarget) {
			sr.Mismatches = append(sr.Mismatches, fmt.Sprintf("target = %v, want %v", sr.Target, st.ExpectTarget))
		}
		res.Steps = append(res.Steps, sr)
	}
	res.Source, res.Target = src.All(), dst.All()
	return res, nil
}

func apply(st Step, s *synchronizer.Synchronizer[int, int], src, dst *collections.Observable[int]) error {
	c := src
	if st.side() == SideTarget {
		c = dst
	}
	switch st.Op {
	case OpAppend:
		return c.Append(st.Items...)
	case OpInsert:
		return c.Insert(st.Index, st.Items...)
	case OpRemove:
		return c.RemoveRange(st.Index, st.count(1))
	case OpReplace:
		return c.ReplaceRange(st.Index, st.count(0), st.Items...)
	case OpMove:
		n := st.count(1)
		return c.MoveRange(st.Index, n, st.To, n)
	case OpClear:
		return c.Clear()
	case OpReset:
		return c.ResetTo(st.Items...)
	case OpResync:
		if st.side() == SideTarget {
			return s.ResyncTarget()
		}
		return s.ResyncSource()
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, st.Op)
	}
}

func (sc *Scenario) toTarget(x int) (int, error) {
	return x*sc.Scale + sc.Offset, nil
}

func (sc *Scenario) toSource(y int) (int, error) {
	d := y - sc.Offset
	if d%sc.Scale != 0 {
		return 0, fmt.Errorf("%w: %d", ErrNotImage, y)
	}
	return d / sc.Scale, nil
}
