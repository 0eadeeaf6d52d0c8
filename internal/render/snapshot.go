package render

import (
	"image"
	"image/color"
	"image/draw"

	"matchline/internal/match"
	"matchline/pkg/colorutil"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Snapshot composes the board into one opaque image: white background, item
// boxes with their labels, then each layer in order (base before overlay).
// The output takes the bounds of the first layer.
func Snapshot(items []*match.Item, layers ...*image.RGBA) *image.RGBA {
	if len(layers) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	bounds := layers[0].Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(colorutil.White), image.Point{}, draw.Src)

	for _, it := range items {
		drawItem(out, it)
	}
	for _, l := range layers {
		draw.Draw(out, bounds, l, bounds.Min, draw.Over)
	}
	return out
}

// drawItem draws an item box with a 1 pixel border, filled when active,
// and its label centered inside.
func drawItem(output *image.RGBA, it *match.Item) {
	if it.Bounds.Empty() {
		return
	}
	x1, y1 := int(it.Bounds.X), int(it.Bounds.Y)
	x2, y2 := int(it.Bounds.X+it.Bounds.Width), int(it.Bounds.Y+it.Bounds.Height)
	box := image.Rect(x1, y1, x2, y2).Intersect(output.Bounds())

	if it.Active {
		draw.Draw(output, box, image.NewUniform(colorutil.ActiveFill), image.Point{}, draw.Src)
	}

	border := colorutil.ItemBorder
	for x := box.Min.X; x < box.Max.X; x++ {
		output.Set(x, box.Min.Y, border)
		output.Set(x, box.Max.Y-1, border)
	}
	for y := box.Min.Y; y < box.Max.Y; y++ {
		output.Set(box.Min.X, y, border)
		output.Set(box.Max.X-1, y, border)
	}

	label := it.Label
	if label == "" {
		label = it.ID
	}
	drawLabel(output, label, box, colorutil.Black)
}

// drawLabel writes text centered in box using the 7x13 bitmap face.
func drawLabel(output *image.RGBA, text string, box image.Rectangle, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  output,
		Src:  image.NewUniform(col),
		Face: face,
	}
	w := d.MeasureString(text).Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()

	x := box.Min.X + (box.Dx()-w)/2
	if x < box.Min.X+2 {
		x = box.Min.X + 2
	}
	y := box.Min.Y + (box.Dy()-h)/2 + m.Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
