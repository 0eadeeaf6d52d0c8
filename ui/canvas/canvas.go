// Package canvas provides the matching board widget: item boxes with two
// transparent line rasters stacked on top.
package canvas

import (
	"image"
	"image/color"

	"matchline/internal/app"
	"matchline/internal/match"
	"matchline/internal/render"
	"matchline/pkg/colorutil"
	"matchline/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardCanvas draws the quiz items and routes pointer input to the session.
type BoardCanvas struct {
	widget.BaseWidget

	state *app.State

	// Line surfaces and the rasters that display them
	base          *render.RasterSurface
	overlay       *render.RasterSurface
	baseRaster    *fynecanvas.Raster
	overlayRaster *fynecanvas.Raster

	boxes []*itemBox
	size  fyne.Size

	onCommit func(match.Commit)
}

// itemBox is the visual of one item. Its colors are a projection of the
// item's flags.
type itemBox struct {
	item  *match.Item
	rect  *fynecanvas.Rectangle
	label *fynecanvas.Text
}

var (
	_ desktop.Mouseable = (*BoardCanvas)(nil)
	_ fyne.Draggable    = (*BoardCanvas)(nil)
)

// NewBoardCanvas creates the widget and attaches it as the session's line
// renderer.
func NewBoardCanvas(state *app.State) *BoardCanvas {
	bc := &BoardCanvas{
		state:   state,
		base:    render.NewRasterSurface(1, 1),
		overlay: render.NewRasterSurface(1, 1),
	}
	bc.baseRaster = fynecanvas.NewRaster(func(w, h int) image.Image { return bc.base.Image() })
	bc.overlayRaster = fynecanvas.NewRaster(func(w, h int) image.Image { return bc.overlay.Image() })

	for _, it := range state.Items() {
		rect := fynecanvas.NewRectangle(colorutil.White)
		rect.StrokeColor = colorutil.ItemBorder
		rect.StrokeWidth = 1
		label := fynecanvas.NewText(it.Label, colorutil.Black)
		label.Alignment = fyne.TextAlignCenter
		bc.boxes = append(bc.boxes, &itemBox{item: it, rect: rect, label: label})
	}

	layer := render.NewLayer(bc.overlay, bc.base, state.Style)
	layer.OnChange(bc.linesChanged)
	state.SetRenderer(layer)

	bc.ExtendBaseWidget(bc)
	return bc
}

// OnCommit sets a callback invoked after a gesture commits a pairing.
func (bc *BoardCanvas) OnCommit(callback func(match.Commit)) {
	bc.onCommit = callback
}

// Snapshot composes items and both line layers into one image.
func (bc *BoardCanvas) Snapshot() *image.RGBA {
	return render.Snapshot(bc.state.Items(), bc.base.Image(), bc.overlay.Image())
}

// MouseDown starts a line when the press lands on an item.
func (bc *BoardCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	if bc.state.Press(toPoint(ev.Position)) {
		bc.refreshBoxes()
	}
}

// MouseUp ends a press that never turned into a drag.
func (bc *BoardCanvas) MouseUp(*desktop.MouseEvent) {
	bc.release()
}

// Dragged extends the line to the pointer.
func (bc *BoardCanvas) Dragged(ev *fyne.DragEvent) {
	if bc.state.Controller().State() != match.Dragging {
		return
	}
	bc.state.Move(toPoint(ev.Position))
	bc.refreshBoxes()
}

// DragEnd commits the line if it ended on an eligible item.
func (bc *BoardCanvas) DragEnd() {
	bc.release()
}

// Cancel abandons a running gesture.
func (bc *BoardCanvas) Cancel() {
	bc.state.Cancel()
	bc.refreshBoxes()
}

func (bc *BoardCanvas) release() {
	if bc.state.Controller().State() != match.Dragging {
		return
	}
	commit, ok := bc.state.Release()
	bc.refreshBoxes()
	if ok && bc.onCommit != nil {
		bc.onCommit(commit)
	}
}

// Refresh re-projects item flags and redraws the line rasters.
func (bc *BoardCanvas) Refresh() {
	bc.refreshBoxes()
	bc.linesChanged()
	bc.BaseWidget.Refresh()
}

func (bc *BoardCanvas) refreshBoxes() {
	for _, b := range bc.boxes {
		fill := color.Color(colorutil.White)
		if b.item.Active {
			fill = colorutil.ActiveFill
		}
		if b.rect.FillColor != fill {
			b.rect.FillColor = fill
			b.rect.Refresh()
		}
	}
}

func (bc *BoardCanvas) linesChanged() {
	bc.baseRaster.Refresh()
	bc.overlayRaster.Refresh()
}

// relayout resizes the surfaces and moves every box to its new place.
func (bc *BoardCanvas) relayout(size fyne.Size) {
	if size == bc.size {
		return
	}
	bc.size = size
	bc.base.Resize(int(size.Width), int(size.Height))
	bc.overlay.Resize(int(size.Width), int(size.Height))
	bc.baseRaster.Resize(size)
	bc.overlayRaster.Resize(size)

	bc.state.Resize(geometry.NewSize(float64(size.Width), float64(size.Height)))
	for _, b := range bc.boxes {
		r := b.item.Bounds
		pos := fyne.NewPos(float32(r.X), float32(r.Y))
		boxSize := fyne.NewSize(float32(r.Width), float32(r.Height))
		b.rect.Move(pos)
		b.rect.Resize(boxSize)

		text := b.label.MinSize()
		b.label.Move(fyne.NewPos(pos.X, pos.Y+(boxSize.Height-text.Height)/2))
		b.label.Resize(fyne.NewSize(boxSize.Width, text.Height))
	}
	bc.refreshBoxes()
}

func toPoint(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}

// CreateRenderer implements fyne.Widget.
func (bc *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	objects := make([]fyne.CanvasObject, 0, 2*len(bc.boxes)+2)
	for _, b := range bc.boxes {
		objects = append(objects, b.rect, b.label)
	}
	objects = append(objects, bc.baseRaster, bc.overlayRaster)
	return &boardRenderer{canvas: bc, objects: objects}
}

type boardRenderer struct {
	canvas  *BoardCanvas
	objects []fyne.CanvasObject
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.canvas.relayout(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	q := r.canvas.state.Quiz
	return fyne.NewSize(float32(q.Width), float32(q.Height))
}

func (r *boardRenderer) Refresh() {
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Destroy() {}
