package synchronizer_test

import (
	"errors"
	"testing"

	"github.com/justinricheson/collectionsynchronizer/synchronizer"
)

func TestModeZeroValueIsTwoWay(t *testing.T) {
	var m synchronizer.Mode
	if m != synchronizer.TwoWay {
		t.Fatalf("zero Mode = %v; want two-way", m)
	}
}

func TestModeWatches(t *testing.T) {
	cases := []struct {
		mode           synchronizer.Mode
		source, target bool
	}{
		{synchronizer.TwoWay, true, true},
		{synchronizer.OneWayToTarget, true, false},
		{synchronizer.OneWayToSource, false, true},
	}
	for _, tc := range cases {
		if tc.mode.WatchesSource() != tc.source || tc.mode.WatchesTarget() != tc.target {
			t.Errorf("%v watches source=%v target=%v; want %v %v",
				tc.mode, tc.mode.WatchesSource(), tc.mode.WatchesTarget(), tc.source, tc.target)
		}
	}
}

func TestParseModeRoundTrip(t *testing.T) {
	for _, m := range []synchronizer.Mode{synchronizer.TwoWay, synchronizer.OneWayToTarget, synchronizer.OneWayToSource} {
		got, err := synchronizer.ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
}

func TestParseModeAliases(t *testing.T) {
	cases := map[string]synchronizer.Mode{
		"":                  synchronizer.TwoWay,
		"TwoWay":            synchronizer.TwoWay,
		"ONE_WAY_TO_TARGET": synchronizer.OneWayToTarget,
		" to-source ":       synchronizer.OneWayToSource,
	}
	for in, want := range cases {
		got, err := synchronizer.ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestParseModeUnknown(t *testing.T) {
	if _, err := synchronizer.ParseMode("sideways"); !errors.Is(err, synchronizer.ErrUnknownMode) {
		t.Fatalf("err = %v; want ErrUnknownMode", err)
	}
}

func TestDirectionString(t *testing.T) {
	if synchronizer.ToTarget.String() != "source->target" || synchronizer.ToSource.String() != "target->source" {
		t.Fatal("unexpected Direction names")
	}
}
