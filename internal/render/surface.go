// Package render draws the matching board's line layers onto raster
// surfaces.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"matchline/pkg/geometry"

	"golang.org/x/image/vector"
)

// Surface is a drawable layer the size of the board.
type Surface interface {
	Clear()
	StrokeLine(line geometry.Segment, col color.Color, width float64)
}

// RasterSurface is a transparent RGBA surface. Lines are rasterised with
// anti-aliasing. The pixel buffer is guarded so a UI render goroutine can
// read it while event handlers draw.
type RasterSurface struct {
	mu  sync.Mutex
	img *image.RGBA
	z   vector.Rasterizer
}

// NewRasterSurface creates a transparent surface of the given size.
func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Resize replaces the surface with a transparent one of the new size.
func (s *RasterSurface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b := s.img.Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Size returns the surface dimensions in pixels.
func (s *RasterSurface) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear makes every pixel transparent.
func (s *RasterSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.img.Pix)
}

// StrokeLine draws the segment with the given color and width.
func (s *RasterSurface) StrokeLine(line geometry.Segment, col color.Color, width float64) {
	if width <= 0 {
		width = 1
	}
	q := line.StrokeQuad(width)

	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.img.Bounds()
	if b.Empty() {
		return
	}
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
	s.z.MoveTo(float32(q[0].X), float32(q[0].Y))
	for _, p := range q[1:] {
		s.z.LineTo(float32(p.X), float32(p.Y))
	}
	s.z.ClosePath()
	s.z.Draw(s.img, b, image.NewUniform(col), image.Point{})
}

// Image returns a copy of the surface pixels.
func (s *RasterSurface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}
