package synchronizer

import (
	"fmt"
	"strings"
)

// Mode selects which direction(s) a [Synchronizer] relays.
// The zero value is [TwoWay].
type Mode int

const (
	// TwoWay relays source changes to the target and target changes to the
	// source.
	TwoWay Mode = iota
	// OneWayToTarget relays source changes to the target only.
	OneWayToTarget
	// OneWayToSource relays target changes to the source only.
	OneWayToSource
)

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case TwoWay:
		return "two-way"
	case OneWayToTarget:
		return "one-way-to-target"
	case OneWayToSource:
		return "one-way-to-source"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// WatchesSource reports whether the mode relays source changes.
func (m Mode) WatchesSource() bool { return m == TwoWay || m == OneWayToTarget }

// WatchesTarget reports whether the mode relays target changes.
func (m Mode) WatchesTarget() bool { return m == TwoWay || m == OneWayToSource }

func (m Mode) valid() bool { return m >= TwoWay && m <= OneWayToSource }

// ParseMode converts a mode name back to a Mode. Matching is case
// insensitive and accepts "_" in place of "-".
func ParseMode(s string) (Mode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "", "two-way", "twoway":
		return TwoWay, nil
	case "one-way-to-target", "onewaytotarget", "to-target":
		return OneWayToTarget, nil
	case "one-way-to-source", "onewaytosource", "to-source":
		return OneWayToSource, nil
	default:
		return TwoWay, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
