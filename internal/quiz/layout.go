package quiz

import (
	"matchline/pkg/geometry"
)

// Column layout proportions, relative to the surface.
const (
	marginFrac = 0.05 // Outer margin on each side
	columnFrac = 0.30 // Column width
	fillFrac   = 0.70 // Share of a row taken by the item box
)

// ColumnLayout places left items in a column on the left edge and right
// items in a column on the right edge, one evenly spaced row per item.
// Pinned boxes are scaled from the design size to the surface size.
type ColumnLayout struct {
	boxes map[string]geometry.Rect
}

// NewColumnLayout lays q out on a surface of the given size.
func NewColumnLayout(q *Quiz, size geometry.Size) *ColumnLayout {
	l := &ColumnLayout{boxes: make(map[string]geometry.Rect, len(q.Left)+len(q.Right))}
	if size.Width <= 0 || size.Height <= 0 {
		return l
	}

	sx, sy := 1.0, 1.0
	if q.Width > 0 && q.Height > 0 {
		sx, sy = size.Width/q.Width, size.Height/q.Height
	}
	colW := size.Width * columnFrac
	margin := size.Width * marginFrac

	place := func(entries []Entry, x float64) {
		if len(entries) == 0 {
			return
		}
		rowH := size.Height / float64(len(entries))
		boxH := rowH * fillFrac
		for i, e := range entries {
			if e.Box != nil {
				l.boxes[e.ID] = geometry.NewRect(e.Box.X*sx, e.Box.Y*sy, e.Box.Width*sx, e.Box.Height*sy)
				continue
			}
			y := float64(i)*rowH + (rowH-boxH)/2
			l.boxes[e.ID] = geometry.NewRect(x, y, colW, boxH)
		}
	}
	place(q.Left, margin)
	place(q.Right, size.Width-margin-colW)
	return l
}

// Bounds implements match.Layout.
func (l *ColumnLayout) Bounds(id string) (geometry.Rect, bool) {
	r, ok := l.boxes[id]
	return r, ok
}
