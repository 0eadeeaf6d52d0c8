// Package quiz loads matching quizzes: the two item lists, the answer key
// and the surface the board is designed for.
package quiz

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"matchline/internal/match"
	"matchline/pkg/geometry"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every quiz validation failure.
var ErrInvalid = errors.New("invalid quiz")

// Entry is one item of a list. Box, when set, pins the item to a fixed box
// on the design surface instead of the computed column layout.
type Entry struct {
	ID    string         `yaml:"id" toml:"id"`
	Label string         `yaml:"label" toml:"label"`
	Box   *geometry.Rect `yaml:"box,omitempty" toml:"box,omitempty"`
}

// Quiz is a complete matching exercise.
type Quiz struct {
	Title   string      `yaml:"title" toml:"title"`
	Width   float64     `yaml:"width" toml:"width"`
	Height  float64     `yaml:"height" toml:"height"`
	Left    []Entry     `yaml:"left" toml:"left"`
	Right   []Entry     `yaml:"right" toml:"right"`
	Answers [][2]string `yaml:"answers" toml:"answers"`
}

// Default returns the built-in quiz.
func Default() *Quiz {
	return &Quiz{
		Title:  "Who created it?",
		Width:  400,
		Height: 250,
		Left: []Entry{
			{ID: "L1", Label: "Go"},
			{ID: "L2", Label: "Rust"},
			{ID: "L3", Label: "Python"},
			{ID: "L4", Label: "C"},
		},
		Right: []Entry{
			{ID: "R1", Label: "Dennis Ritchie"},
			{ID: "R2", Label: "Guido van Rossum"},
			{ID: "R3", Label: "Graydon Hoare"},
			{ID: "R4", Label: "Rob Pike"},
		},
		Answers: [][2]string{{"L1", "R4"}, {"L2", "R3"}, {"L3", "R2"}, {"L4", "R1"}},
	}
}

// Load reads a quiz from a .yaml/.yml or .toml file and validates it.
func Load(path string) (*Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	var q Quiz
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &q)
	case ".toml":
		err = toml.Unmarshal(data, &q)
	default:
		return nil, fmt.Errorf("unsupported quiz format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse quiz %s: %w", filepath.Base(path), err)
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &q, nil
}

// LoadOrDefault loads path, or returns the built-in quiz when path is empty.
func LoadOrDefault(path string) (*Quiz, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks ids, answers and pinned boxes.
func (q *Quiz) Validate() error {
	if q.Width <= 0 || q.Height <= 0 {
		return fmt.Errorf("%w: surface %vx%v", ErrInvalid, q.Width, q.Height)
	}
	if len(q.Left) == 0 || len(q.Right) == 0 {
		return fmt.Errorf("%w: both lists need items", ErrInvalid)
	}

	side := make(map[string]match.Side)
	for _, list := range []struct {
		side    match.Side
		entries []Entry
	}{{match.SideLeft, q.Left}, {match.SideRight, q.Right}} {
		for _, e := range list.entries {
			if e.ID == "" {
				return fmt.Errorf("%w: item with empty id", ErrInvalid)
			}
			if _, dup := side[e.ID]; dup {
				return fmt.Errorf("%w: duplicate id %s", ErrInvalid, e.ID)
			}
			side[e.ID] = list.side
		}
	}

	answered := make(map[string]bool)
	taken := make(map[string]string)
	for _, a := range q.Answers {
		if side[a[0]] != match.SideLeft {
			return fmt.Errorf("%w: answer %s-%s: %s is not a left item", ErrInvalid, a[0], a[1], a[0])
		}
		if side[a[1]] != match.SideRight {
			return fmt.Errorf("%w: answer %s-%s: %s is not a right item", ErrInvalid, a[0], a[1], a[1])
		}
		if answered[a[0]] {
			return fmt.Errorf("%w: %v", ErrInvalid, match.ErrDuplicateReference)
		}
		answered[a[0]] = true
		// Pairings are one-to-one, so two left items cannot share a partner.
		if prev, dup := taken[a[1]]; dup {
			return fmt.Errorf("%w: %s and %s both expect %s", ErrInvalid, prev, a[0], a[1])
		}
		taken[a[1]] = a[0]
	}
	for _, e := range q.Left {
		if !answered[e.ID] {
			return fmt.Errorf("%w: no answer for %s", ErrInvalid, e.ID)
		}
	}

	entries := append(append([]Entry{}, q.Left...), q.Right...)
	for _, e := range entries {
		if e.Box != nil && e.Box.Empty() {
			return fmt.Errorf("%w: %s has an empty box", ErrInvalid, e.ID)
		}
	}
	// Pinned boxes must not cover each other or the computed column boxes.
	layout := NewColumnLayout(q, q.Size())
	for i, a := range entries {
		ra, _ := layout.Bounds(a.ID)
		for _, b := range entries[i+1:] {
			if a.Box == nil && b.Box == nil {
				continue
			}
			if rb, _ := layout.Bounds(b.ID); ra.Intersects(rb) {
				return fmt.Errorf("%w: boxes of %s and %s overlap", ErrInvalid, a.ID, b.ID)
			}
		}
	}
	return nil
}

// Items returns the registry declarations, left list first.
func (q *Quiz) Items() []match.ItemSpec {
	specs := make([]match.ItemSpec, 0, len(q.Left)+len(q.Right))
	for _, e := range q.Left {
		specs = append(specs, match.ItemSpec{ID: e.ID, Side: match.SideLeft, Label: e.Label})
	}
	for _, e := range q.Right {
		specs = append(specs, match.ItemSpec{ID: e.ID, Side: match.SideRight, Label: e.Label})
	}
	return specs
}

// Reference returns the answer key.
func (q *Quiz) Reference() (*match.Reference, error) {
	return match.NewReference(q.Answers)
}

// Size returns the design surface size.
func (q *Quiz) Size() geometry.Size {
	return geometry.NewSize(q.Width, q.Height)
}

// Label returns the label of an item, or its id when it has none.
func (q *Quiz) Label(id string) string {
	for _, list := range [][]Entry{q.Left, q.Right} {
		for _, e := range list {
			if e.ID == id {
				if e.Label != "" {
					return e.Label
				}
				return e.ID
			}
		}
	}
	return id
}
