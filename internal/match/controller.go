package match

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"matchline/pkg/geometry"
)

// Segment is a committed pairing placed between its two anchors.
type Segment struct {
	Pairing Pairing
	Line    geometry.Segment
}

// Renderer draws the two line layers. The transient layer holds the single
// in-progress line; the committed layer holds every ledger pairing.
type Renderer interface {
	DrawTransient(line geometry.Segment)
	ClearTransient()
	// DrawCommitted replaces the committed layer. A nil ColorFunc draws
	// every line in the default stroke color.
	DrawCommitted(segments []Segment, colors ColorFunc)
}

type nopRenderer struct{}

func (nopRenderer) DrawTransient(geometry.Segment)      {}
func (nopRenderer) ClearTransient()                     {}
func (nopRenderer) DrawCommitted([]Segment, ColorFunc) {}

// GestureState is the controller's state machine state.
type GestureState int

const (
	Idle GestureState = iota
	Dragging
)

func (s GestureState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// DragState exists only while a gesture is in progress.
type DragState struct {
	Origin    *Item
	Start     geometry.Point2D // Origin anchor
	Current   geometry.Point2D // Pointer in surface coordinates
	Candidate *Item            // Eligible target under the pointer, if any
}

// Commit describes a pairing made by a completed gesture.
type Commit struct {
	Pairing  Pairing
	Replaced []Pairing // Pairings removed to keep every id bound once
}

// Controller owns the registry, the ledger and the drag gesture. All methods
// must be called from a single event loop.
type Controller struct {
	registry *Registry
	ledger   *Ledger
	renderer Renderer
	drag     *DragState
}

// NewController creates a controller over the registry. A nil renderer
// discards all drawing.
func NewController(registry *Registry, renderer Renderer) *Controller {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	return &Controller{
		registry: registry,
		ledger:   NewLedger(),
		renderer: renderer,
	}
}

// SetRenderer replaces the renderer and redraws the committed layer on it.
func (c *Controller) SetRenderer(renderer Renderer) {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	c.renderer = renderer
	c.redraw(nil)
}

// Registry returns the item registry.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// State reports whether a gesture is in progress.
func (c *Controller) State() GestureState {
	if c.drag != nil {
		return Dragging
	}
	return Idle
}

// Drag returns a copy of the current drag state, if dragging.
func (c *Controller) Drag() (DragState, bool) {
	if c.drag == nil {
		return DragState{}, false
	}
	return *c.drag, true
}

// Pairings returns the committed pairings in commit order.
func (c *Controller) Pairings() []Pairing {
	return c.ledger.Pairings()
}

// List returns the committed pairings as id arrays for persistence.
func (c *Controller) List() [][2]string {
	return c.ledger.List()
}

// Press starts a gesture on the item under p. It returns false when p is
// not over an item or a gesture is already running.
func (c *Controller) Press(p geometry.Point2D) bool {
	if c.drag != nil {
		return false
	}
	it := c.registry.HitTest(p)
	if it == nil {
		return false
	}
	it.Active = true
	c.drag = &DragState{
		Origin:  it,
		Start:   it.Anchor,
		Current: p,
	}
	return true
}

// Move updates the gesture with the pointer at p: the transient line is
// redrawn and the candidate target re-evaluated.
func (c *Controller) Move(p geometry.Point2D) {
	d := c.drag
	if d == nil {
		return
	}
	d.Current = p
	c.renderer.DrawTransient(geometry.Segment{From: d.Start, To: p})

	over := c.registry.HitTest(p)
	if over != nil && over == d.Candidate {
		return
	}
	if c.eligible(over) {
		c.dropCandidate()
		d.Candidate = over
		over.Active = true
		over.Checked = true
		d.Origin.Checked = true
		return
	}
	c.dropCandidate()
}

// eligible reports whether it may become the candidate target.
func (c *Controller) eligible(it *Item) bool {
	return it != nil &&
		it.Side != c.drag.Origin.Side &&
		!it.Paired &&
		!it.Checked
}

// dropCandidate reverts the held candidate, if any.
func (c *Controller) dropCandidate() {
	d := c.drag
	if d.Candidate == nil {
		return
	}
	d.Candidate.Active = false
	d.Candidate.Checked = false
	d.Origin.Checked = false
	d.Candidate = nil
}

// Release ends the gesture. When a candidate is held the pairing is
// committed and returned.
func (c *Controller) Release() (Commit, bool) {
	d := c.drag
	if d == nil {
		return Commit{}, false
	}
	c.drag = nil
	defer c.renderer.ClearTransient()

	origin, target := d.Origin, d.Candidate
	if target == nil || !origin.Checked || !target.Checked {
		if target != nil {
			target.Active = false
			target.Checked = false
		}
		origin.Checked = false
		if !origin.Paired {
			origin.Active = false
		}
		return Commit{}, false
	}

	commit := c.commit(origin, target)
	c.redraw(nil)
	return commit, true
}

// Cancel abandons the gesture without committing anything.
func (c *Controller) Cancel() {
	d := c.drag
	if d == nil {
		return
	}
	c.dropCandidate()
	if !d.Origin.Paired {
		d.Origin.Active = false
	}
	c.drag = nil
	c.renderer.ClearTransient()
}

// commit records the pairing between a and b, whichever side each is on.
func (c *Controller) commit(a, b *Item) Commit {
	left, right := a, b
	if a.Side == SideRight {
		left, right = b, a
	}
	p := Pairing{Left: left.ID, Right: right.ID}
	replaced := c.ledger.Commit(p)
	for _, old := range replaced {
		c.free(old.Left, p)
		c.free(old.Right, p)
	}
	for _, it := range []*Item{left, right} {
		it.Paired = true
		it.Active = true
		it.Checked = false
	}
	if len(replaced) > 0 {
		log.Printf("Ledger: committed %s, replaced %v", p, replaced)
	} else {
		log.Printf("Ledger: committed %s", p)
	}
	return Commit{Pairing: p, Replaced: replaced}
}

// free reverts an item that lost its pairing, unless it belongs to keep.
func (c *Controller) free(id string, keep Pairing) {
	if id == keep.Left || id == keep.Right {
		return
	}
	if it := c.registry.Item(id); it != nil {
		it.Paired = false
		it.Active = false
	}
}

// Undo removes the most recent pairing and frees both of its items.
func (c *Controller) Undo() (Pairing, error) {
	p, err := c.ledger.UndoLast()
	if err != nil {
		return Pairing{}, err
	}
	c.free(p.Left, Pairing{})
	c.free(p.Right, Pairing{})
	c.redraw(nil)
	return p, nil
}

// Reset clears the ledger and every item's state.
func (c *Controller) Reset() {
	c.drag = nil
	c.renderer.ClearTransient()
	c.ledger.Clear()
	c.registry.resetAll()
	c.redraw(nil)
}

// Restore replaces the ledger with pairings, typically loaded from storage.
// Entries naming unknown items or two items on the same side are skipped;
// the returned error describes every skipped entry.
func (c *Controller) Restore(pairings []Pairing) error {
	c.Reset()
	var errs []error
	for _, p := range pairings {
		a, b := c.registry.Item(p.Left), c.registry.Item(p.Right)
		switch {
		case a == nil:
			errs = append(errs, fmt.Errorf("%w %q in %s", ErrUnknownItem, p.Left, p))
			continue
		case b == nil:
			errs = append(errs, fmt.Errorf("%w %q in %s", ErrUnknownItem, p.Right, p))
			continue
		case a.Side == b.Side:
			errs = append(errs, fmt.Errorf("%s: both items on side %v", p, a.Side))
			continue
		}
		c.commit(a, b)
	}
	c.redraw(nil)
	return errors.Join(errs...)
}

// Check validates the committed pairings and redraws them, correct ones in
// ok and wrong ones in bad. The next redraw goes back to the default stroke
// color.
func (c *Controller) Check(ref *Reference, ok, bad color.Color) ([]Result, error) {
	results, err := Validate(c.ledger.Pairings(), ref)
	if err != nil {
		return nil, err
	}
	c.redraw(CorrectnessColors(results, ok, bad))
	return results, nil
}

// Relayout recomputes anchors from the layout and re-derives item state
// from the ledger, so a resize never frees a committed item. A running
// gesture keeps its origin and candidate; its start point follows the
// origin's new anchor.
func (c *Controller) Relayout(layout Layout) {
	c.registry.Recompute(layout)
	for _, p := range c.ledger.pairs {
		for _, id := range []string{p.Left, p.Right} {
			if it := c.registry.Item(id); it != nil {
				it.Paired = true
				it.Active = true
			}
		}
	}
	if d := c.drag; d != nil {
		d.Origin.Active = true
		d.Start = d.Origin.Anchor
		if d.Candidate != nil {
			d.Candidate.Active = true
			d.Candidate.Checked = true
			d.Origin.Checked = true
		}
	}
	c.redraw(nil)
}

// Segments returns the committed pairings placed between their anchors.
func (c *Controller) Segments() []Segment {
	out := make([]Segment, 0, c.ledger.Len())
	for _, p := range c.ledger.pairs {
		l, r := c.registry.Item(p.Left), c.registry.Item(p.Right)
		if l == nil || r == nil {
			continue
		}
		out = append(out, Segment{
			Pairing: p,
			Line:    geometry.Segment{From: l.Anchor, To: r.Anchor},
		})
	}
	return out
}

func (c *Controller) redraw(colors ColorFunc) {
	c.renderer.DrawCommitted(c.Segments(), colors)
}
