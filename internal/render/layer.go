package render

import (
	"image/color"

	"matchline/internal/match"
	"matchline/pkg/colorutil"
	"matchline/pkg/geometry"
)

// Style configures stroke appearance.
type Style struct {
	Width     float64
	Stroke    color.Color // Default line color
	Correct   color.Color // Validation: right answer
	Incorrect color.Color // Validation: wrong answer
}

// DefaultStyle matches the classic look: 2px blue lines, red for mistakes.
func DefaultStyle() Style {
	return Style{
		Width:     2,
		Stroke:    colorutil.Blue,
		Correct:   colorutil.Blue,
		Incorrect: colorutil.Red,
	}
}

// Layer is the two-surface renderer: Overlay holds the line being dragged,
// Base holds the committed lines. It implements match.Renderer.
type Layer struct {
	Overlay Surface
	Base    Surface
	Style   Style

	onChange func()
}

var _ match.Renderer = (*Layer)(nil)

// NewLayer creates a renderer over two surfaces.
func NewLayer(overlay, base Surface, style Style) *Layer {
	return &Layer{Overlay: overlay, Base: base, Style: style}
}

// OnChange sets a callback invoked after any surface was redrawn.
func (l *Layer) OnChange(callback func()) {
	l.onChange = callback
}

// DrawTransient clears the overlay and draws the in-progress line.
func (l *Layer) DrawTransient(line geometry.Segment) {
	l.Overlay.Clear()
	l.Overlay.StrokeLine(line, l.Style.Stroke, l.Style.Width)
	l.changed()
}

// ClearTransient removes the in-progress line.
func (l *Layer) ClearTransient() {
	l.Overlay.Clear()
	l.changed()
}

// DrawCommitted clears the base surface and draws every segment. A nil
// colors function uses the default stroke; the choice never outlives the
// call, so a validation render does not tint later commits.
func (l *Layer) DrawCommitted(segments []match.Segment, colors match.ColorFunc) {
	l.Base.Clear()
	for _, s := range segments {
		col := l.Style.Stroke
		if colors != nil {
			col = colors(s.Pairing)
		}
		l.Base.StrokeLine(s.Line, col, l.Style.Width)
	}
	l.changed()
}

func (l *Layer) changed() {
	if l.onChange != nil {
		l.onChange()
	}
}
