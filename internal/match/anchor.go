package match

import (
	"fmt"

	"matchline/pkg/geometry"
)

// Layout reports the current box of each item in surface coordinates.
type Layout interface {
	Bounds(id string) (geometry.Rect, bool)
}

// LayoutFunc adapts a function to the Layout interface.
type LayoutFunc func(id string) (geometry.Rect, bool)

// Bounds implements Layout.
func (f LayoutFunc) Bounds(id string) (geometry.Rect, bool) {
	return f(id)
}

// Registry holds every item of the board in declaration order.
type Registry struct {
	items []*Item
	byID  map[string]*Item
}

// NewRegistry creates a registry from item declarations. Ids must be unique
// and every item must be on a known side.
func NewRegistry(specs []ItemSpec) (*Registry, error) {
	r := &Registry{
		items: make([]*Item, 0, len(specs)),
		byID:  make(map[string]*Item, len(specs)),
	}
	for _, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("item with empty id")
		}
		if s.Side != SideLeft && s.Side != SideRight {
			return nil, fmt.Errorf("item %s: side %v", s.ID, s.Side)
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate item %s", s.ID)
		}
		it := &Item{ID: s.ID, Side: s.Side, Label: s.Label}
		r.items = append(r.items, it)
		r.byID[s.ID] = it
	}
	return r, nil
}

// Recompute reads every item's box from the layout and derives its anchor:
// the right edge midpoint for left items, the left edge midpoint for right
// items. All interaction flags are reset.
func (r *Registry) Recompute(layout Layout) {
	for _, it := range r.items {
		box, ok := layout.Bounds(it.ID)
		if !ok {
			box = geometry.Rect{}
		}
		it.Bounds = box
		if it.Side == SideLeft {
			it.Anchor = box.RightMid()
		} else {
			it.Anchor = box.LeftMid()
		}
		it.reset()
	}
}

// Item returns the item with the given id, or nil.
func (r *Registry) Item(id string) *Item {
	return r.byID[id]
}

// Items returns all items in declaration order.
func (r *Registry) Items() []*Item {
	return r.items
}

// Side returns the items of one side in declaration order.
func (r *Registry) Side(side Side) []*Item {
	var out []*Item
	for _, it := range r.items {
		if it.Side == side {
			out = append(out, it)
		}
	}
	return out
}

// HitTest returns the first item whose box contains p, or nil.
func (r *Registry) HitTest(p geometry.Point2D) *Item {
	for _, it := range r.items {
		if it.Bounds.Contains(p) {
			return it
		}
	}
	return nil
}

// resetAll clears the interaction state of every item.
func (r *Registry) resetAll() {
	for _, it := range r.items {
		it.reset()
	}
}
