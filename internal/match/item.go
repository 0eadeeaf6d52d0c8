// Package match implements the matching board: item anchors, the pairing
// ledger, the drag-to-connect controller and answer validation.
package match

import (
	"fmt"
	"strings"

	"matchline/pkg/geometry"
)

// Side indicates which list an item belongs to.
type Side int

const (
	SideUnknown Side = iota
	SideLeft         // Items lines start from
	SideRight        // Items lines end on
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "L"
	case SideRight:
		return "R"
	default:
		return "?"
	}
}

// ParseSide accepts "L"/"left" and "R"/"right" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return SideLeft, nil
	case "r", "right":
		return SideRight, nil
	}
	return SideUnknown, fmt.Errorf("unknown side %q", s)
}

// ItemSpec declares one selectable item.
type ItemSpec struct {
	ID    string
	Side  Side
	Label string
}

// Item is a selectable entry in one of the two lists together with its
// derived anchor and interaction state.
type Item struct {
	ID     string
	Side   Side
	Label  string
	Bounds geometry.Rect    // Layout box in surface coordinates
	Anchor geometry.Point2D // Where lines attach

	Paired  bool // Member of a committed pairing
	Active  bool // Highlighted
	Checked bool // Tentatively paired during a gesture
}

// reset clears all interaction state.
func (it *Item) reset() {
	it.Paired = false
	it.Active = false
	it.Checked = false
}
