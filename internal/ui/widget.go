package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/geom"
	"sketchpad/internal/state"
)

// SketchWidget is the interactive canvas. Pointer events feed the session;
// the widget renderer rebuilds the canvas objects from the document, the
// in-progress stroke and the pending preview on every refresh.
type SketchWidget struct {
	widget.BaseWidget
	session *state.Session
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)

func NewSketchWidget(session *state.Session) *SketchWidget {
	w := &SketchWidget{session: session}
	w.ExtendBaseWidget(w)
	return w
}

func (w *SketchWidget) Session() *state.Session { return w.session }

func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.session.StartStroke(geom.Point{X: e.Position.X, Y: e.Position.Y})
	w.Refresh()
}

func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	if !w.session.Drawing() {
		return
	}
	w.session.ExtendStroke(geom.Point{X: e.Position.X, Y: e.Position.Y})
	w.Refresh()
}

func (w *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !w.session.Drawing() {
		return
	}
	w.session.FinishStroke()
	if p := w.session.Preview(); p != nil {
		log.Printf("staged preview at index %d, press Tab to accept", p.Index)
	}
	w.Refresh()
}

func (w *SketchWidget) MouseIn(*desktop.MouseEvent) {}
func (w *SketchWidget) MouseOut() {}
func (w *SketchWidget) MouseMoved(*desktop.MouseEvent) {}
func (w *SketchWidget) DragEnd() {}

// Undo reverses the last committed command, discarding any pending preview.
func (w *SketchWidget) Undo() {
	w.session.Undo()
	w.Refresh()
}

// Redo re-applies the last undone command, discarding any pending preview.
func (w *SketchWidget) Redo() {
	w.session.Redo()
	w.Refresh()
}

// ConfirmPreview commits the staged replacement shape, if any.
func (w *SketchWidget) ConfirmPreview() {
	if w.session.ConfirmPreview() {
		log.Println("preview confirmed")
	}
	w.Refresh()
}

// SaveTo writes the committed document as JSON.
func (w *SketchWidget) SaveTo(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()

	doc := w.session.Document()
	if err := state.EncodeDocument(writer, doc); err != nil {
		log.Printf("SaveTo: %v", err)
		return
	}
	log.Printf("SaveTo: saved %d objects", doc.Len())
}

// LoadFrom replaces the document contents from a JSON file. Loading resets
// the undo/redo history and drops any pending preview.
func (w *SketchWidget) LoadFrom(reader fyne.URIReadCloser) {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("Error closing reader: %v", err)
		}
	}()

	loaded, err := state.DecodeDocument(reader)
	if err != nil {
		log.Printf("LoadFrom: %v", err)
		return
	}

	w.session.DiscardPreview()
	w.session.Document().Reset(loaded.Objects())
	w.Refresh()
	log.Printf("LoadFrom: loaded %d objects", loaded.Len())
}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchWidgetRenderer{board: w}
	r.background = canvas.NewRectangle(color.White)
	return r
}

// canvasObjects implements state.Renderer by collecting Fyne canvas objects.
// An alpha factor below 1 dims the stroke colors, used for the preview pass.
type canvasObjects struct {
	objects []fyne.CanvasObject
	alpha   float64
}

func (r *canvasObjects) pen(c color.Color) color.Color {
	if r.alpha >= 1 {
		return c
	}
	cr, cg, cb, ca := c.RGBA()
	return color.NRGBA{
		R: uint8(cr >> 8),
		G: uint8(cg >> 8),
		B: uint8(cb >> 8),
		A: uint8(float64(ca>>8) * r.alpha),
	}
}

func (r *canvasObjects) Polyline(pts []geom.Point, c color.Color, width float32) {
	for i := 1; i < len(pts); i++ {
		r.Line(pts[i-1], pts[i], c, width)
	}
}

func (r *canvasObjects) Line(a, b geom.Point, c color.Color, width float32) {
	segment := canvas.NewLine(r.pen(c))
	segment.StrokeWidth = width
	segment.Position1 = fyne.NewPos(a.X, a.Y)
	segment.Position2 = fyne.NewPos(b.X, b.Y)
	r.objects = append(r.objects, segment)
}

func (r *canvasObjects) Ellipse(e geom.Ellipse, c color.Color, width float32) {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = r.pen(c)
	circle.StrokeWidth = width
	circle.Position1 = fyne.NewPos(e.Center.X-e.RadiusX, e.Center.Y-e.RadiusY)
	circle.Position2 = fyne.NewPos(e.Center.X+e.RadiusX, e.Center.Y+e.RadiusY)
	r.objects = append(r.objects, circle)
}

type sketchWidgetRenderer struct {
	board      *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchWidgetRenderer) Objects() []fyne.CanvasObject {
	session := r.board.session
	objects := []fyne.CanvasObject{r.background}

	solid := &canvasObjects{alpha: 1}
	session.Document().Draw(solid)
	if stroke := session.CurrentStroke(); stroke != nil {
		stroke.Draw(solid)
	}
	objects = append(objects, solid.objects...)

	// The preview goes on top, at half opacity.
	if p := session.Preview(); p != nil {
		translucent := &canvasObjects{alpha: 0.5}
		p.Candidate.Draw(translucent)
		objects = append(objects, translucent.objects...)
	}

	return objects
}

func (r *sketchWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *sketchWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sketchWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sketchWidgetRenderer) Destroy() {}
