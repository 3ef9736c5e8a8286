package collections_test

import (
	"errors"
	"testing"

	"github.com/justinricheson/collectionsynchronizer/collections"
)

func TestActionString(t *testing.T) {
	cases := map[collections.Action]string{
		collections.ActionAdd:     "add",
		collections.ActionRemove:  "remove",
		collections.ActionReplace: "replace",
		collections.ActionMove:    "move",
		collections.ActionReset:   "reset",
		collections.Action(42):    "Action(42)",
	}
	for a, want := range cases {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q; want %q", int(a), got, want)
		}
	}
}

func TestEventCountsAreNilSafe(t *testing.T) {
	e := collections.ResetEvent[int]()
	if e.OldCount() != 0 || e.NewCount() != 0 {
		t.Fatalf("reset counts = %d, %d; want 0, 0", e.OldCount(), e.NewCount())
	}
}

func TestEventString(t *testing.T) {
	cases := []struct {
		e    collections.Event[int]
		want string
	}{
		{collections.AddEvent(2, []int{1}), "add@2 +1"},
		{collections.RemoveEvent(0, []int{1, 2}), "remove@0 -2"},
		{collections.ReplaceEvent(1, []int{1}, []int{2, 3}), "replace@1 -1 +2"},
		{collections.MoveEvent(0, 3, []int{1, 2}), "move@0->3 x2"},
		{collections.ResetEvent[int](), "reset"},
	}
	for _, tc := range cases {
		if got := tc.e.String(); got != tc.want {
			t.Errorf("String() = %q; want %q", got, tc.want)
		}
	}
}

func TestEventValidate(t *testing.T) {
	cases := []struct {
		name   string
		e      collections.Event[int]
		length int
		want   error
	}{
		{"add at end", collections.AddEvent(3, []int{1}), 3, nil},
		{"add past end", collections.AddEvent(4, []int{1}), 3, collections.ErrIndexOutOfRange},
		{"remove span", collections.RemoveEvent(1, []int{1, 2}), 3, nil},
		{"remove past end", collections.RemoveEvent(2, []int{1, 2}), 3, collections.ErrIndexOutOfRange},
		{"replace span", collections.ReplaceEvent(0, []int{1}, []int{1, 2, 3}), 1, nil},
		{"replace past end", collections.ReplaceEvent(1, []int{1}, nil), 1, collections.ErrIndexOutOfRange},
		{"move span", collections.MoveEvent(0, 1, []int{1, 2}), 3, nil},
		{"move destination past end", collections.MoveEvent(0, 2, []int{1, 2}), 3, collections.ErrIndexOutOfRange},
		{"move uneven", collections.Event[int]{Action: collections.ActionMove, OldItems: []int{1}}, 3, collections.ErrInvalidMove},
		{"reset", collections.ResetEvent[int](), 0, nil},
		{"unknown", collections.Event[int]{}, 0, collections.ErrUnknownAction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.e.Validate(tc.length)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate = %v; want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate = %v; want %v", err, tc.want)
			}
		})
	}
}

// Every event raised by Observable must validate against the length the
// collection had before the mutation.
func TestObservableEventsValidateAgainstPreviousLength(t *testing.T) {
	c := collections.NewObservable(1, 2, 3, 4, 5)
	prev := c.Count()
	c.OnChange(func(e collections.Event[int]) error {
		if err := e.Validate(prev); err != nil {
			t.Errorf("%v: %v", e, err)
		}
		prev = c.Count()
		return nil
	})

	steps := []func() error{
		func() error { return c.Append(6) },
		func() error { return c.Insert(0, 0) },
		func() error { return c.RemoveRange(2, 3) },
		func() error { return c.ReplaceRange(0, 2, 9) },
		func() error { return c.MoveRange(0, 2, 1, 2) },
		func() error { return c.Move(2, 0) },
		func() error { return c.Clear() },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}
}
