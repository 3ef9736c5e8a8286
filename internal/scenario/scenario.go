// Package scenario loads scripted mutation sequences and replays them
// through a synchronized pair of int collections.
//
// A scenario file is YAML (.yaml, .yml) or TOML (.toml):
//
//	mode: two-way
//	scale: 10
//	source: [1, 2, 3]
//	target: [10, 20, 30]
//	steps:
//	  - op: append
//	    items: [4]
//	    expect_target: [10, 20, 30, 40]
//	  - side: target
//	    op: remove
//	    index: 0
//
// The target image of a source item x is x*scale + offset. The reverse
// mapping fails for target items that are not an exact image, which makes
// mapping failures easy to script.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/justinricheson/collectionsynchronizer/synchronizer"
)

// Sides a step can act on.
const (
	SideSource = "source"
	SideTarget = "target"
)

// Operations a step can perform.
const (
	OpAppend  = "append"
	OpInsert  = "insert"
	OpRemove  = "remove"
	OpReplace = "replace"
	OpMove    = "move"
	OpClear   = "clear"
	OpReset   = "reset"
	OpResync  = "resync"
)

// Sentinel errors returned while loading and validating scenarios.
var (
	ErrUnsupportedFormat = errors.New("scenario: unsupported file format")
	ErrInvalidScenario   = errors.New("scenario: invalid scenario")
)

// Scenario is a replay script.
type Scenario struct {
	Name            string `yaml:"name" toml:"name"`
	Mode            string `yaml:"mode" toml:"mode"`
	Scale           int    `yaml:"scale" toml:"scale"`
	Offset          int    `yaml:"offset" toml:"offset"`
	MirroredInserts bool   `yaml:"mirrored_inserts" toml:"mirrored_inserts"`
	Source          []int  `yaml:"source" toml:"source"`
	Target          []int  `yaml:"target" toml:"target"`
	Steps           []Step `yaml:"steps" toml:"steps"`
}

// Step is one mutation. Count defaults to 1 for remove and move, and to 0
// for replace.
type Step struct {
	Side         string `yaml:"side" toml:"side"`
	Op           string `yaml:"op" toml:"op"`
	Index        int    `yaml:"index" toml:"index"`
	Count        *int   `yaml:"count" toml:"count"`
	To           int    `yaml:"to" toml:"to"`
	Items        []int  `yaml:"items" toml:"items"`
	ExpectSource []int  `yaml:"expect_source" toml:"expect_source"`
	ExpectTarget []int  `yaml:"expect_target" toml:"expect_target"`
}

// String describes the step, e.g. "target.remove(0, 2)".
func (s Step) String() string {
	side := s.side()
	switch s.Op {
	case OpAppend, OpReset:
		return fmt.Sprintf("%s.%s(%v)", side, s.Op, s.Items)
	case OpInsert:
		return fmt.Sprintf("%s.insert(%d, %v)", side, s.Index, s.Items)
	case OpRemove:
		return fmt.Sprintf("%s.remove(%d, %d)", side, s.Index, s.count(1))
	case OpReplace:
		return fmt.Sprintf("%s.replace(%d, %d, %v)", side, s.Index, s.count(0), s.Items)
	case OpMove:
		return fmt.Sprintf("%s.move(%d, %d, %d)", side, s.Index, s.count(1), s.To)
	default:
		return fmt.Sprintf("%s.%s()", side, s.Op)
	}
}

func (s Step) side() string {
	if s.Side == "" {
		return SideSource
	}
	return s.Side
}

func (s Step) count(def int) int {
	if s.Count == nil {
		return def
	}
	return *s.Count
}

// Load reads a scenario file, choosing the decoder by extension, and
// validates it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	sc, err := Parse(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		return nil, err
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes a scenario in the given format ("yaml", "yml" or "toml")
// and validates it.
func Parse(data []byte, format string) (*Scenario, error) {
	var sc Scenario
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("scenario: decode yaml: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &sc); err != nil {
			return nil, fmt.Errorf("scenario: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if sc.Scale == 0 {
		sc.Scale = 1
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the mode and every step. Index bounds are not checked
// here; out-of-range steps fail at replay time like any other mutation.
func (sc *Scenario) Validate() error {
	if _, err := synchronizer.ParseMode(sc.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if sc.Scale == 0 {
		return fmt.Errorf("%w: scale must not be 0", ErrInvalidScenario)
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("%w: step %d: %s", ErrInvalidScenario, i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.side() {
	case SideSource, SideTarget:
	default:
		return fmt.Errorf("unknown side %q", s.Side)
	}
	switch s.Op {
	case OpAppend, OpInsert:
		if len(s.Items) == 0 {
			return fmt.Errorf("%s needs items", s.Op)
		}
	case OpReplace, OpReset, OpClear, OpResync:
	case OpRemove, OpMove:
		if s.count(1) < 1 {
			return fmt.Errorf("%s count must be positive", s.Op)
		}
	case "":
		return errors.New("missing op")
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}
