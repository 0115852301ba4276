package state

import (
	"image/color"

	"github.com/google/uuid"

	"sketchpad/internal/geom"
)

// Renderer is the drawing backend boundary. The UI implements it with canvas
// objects, the exporter with PDF primitives; the model never rasterizes.
type Renderer interface {
	// Polyline draws connected segments through the points.
	Polyline(pts []geom.Point, c color.Color, width float32)
	// Line draws a single segment.
	Line(a, b geom.Point, c color.Color, width float32)
	// Ellipse draws an axis-aligned ellipse outline.
	Ellipse(e geom.Ellipse, c color.Color, width float32)
}

// Drawable is a placed shape: a freehand stroke or one of the primitives a
// stroke can be simplified to. Implementations are *Stroke, *LineSegment and
// *EllipseSegment.
type Drawable interface {
	// ID is the stable identity of the object, preserved across undo/redo.
	ID() string
	Draw(r Renderer)
	// Clone returns a deep copy with a fresh identity.
	Clone() Drawable
	// Complement classifies the shape in place; no-op for primitives.
	Complement()
	// Complementable reports whether a simplified replacement is available.
	Complementable() bool
}

// Stroke is raw freehand input: an append-only point sequence with a color
// and width, plus the classification state written by Complement.
type Stroke struct {
	id     string
	points []geom.Point
	color  color.Color
	width  float32

	fitOpts geom.Options

	complemented bool
	shape        geom.ShapeType
	ellipse      geom.Ellipse
}

func NewStroke(c color.Color, width float32) *Stroke {
	return &Stroke{
		id:    uuid.NewString(),
		color: c,
		width: width,
	}
}

// SetFitOptions overrides the classification thresholds used by Complement.
func (s *Stroke) SetFitOptions(opts geom.Options) { s.fitOpts = opts }

func (s *Stroke) AddPoint(p geom.Point) { s.points = append(s.points, p) }

// Points returns the recorded point sequence. Callers must not mutate it.
func (s *Stroke) Points() []geom.Point { return s.points }

func (s *Stroke) ID() string { return s.id }
func (s *Stroke) Color() color.Color { return s.color }
func (s *Stroke) Width() float32 { return s.width }

// Shape returns the detected shape from the last Complement call.
func (s *Stroke) Shape() geom.ShapeType { return s.shape }

// FitEllipse returns the fitted ellipse parameters; only meaningful when
// Shape is ShapeEllipse or ShapeCurve.
func (s *Stroke) FitEllipse() geom.Ellipse { return s.ellipse }

func (s *Stroke) Draw(r Renderer) {
	if len(s.points) < 2 {
		return
	}
	r.Polyline(s.points, s.color, s.width)
}

func (s *Stroke) Clone() Drawable {
	clone := NewStroke(s.color, s.width)
	clone.points = append([]geom.Point(nil), s.points...)
	clone.fitOpts = s.fitOpts
	clone.complemented = s.complemented
	clone.shape = s.shape
	clone.ellipse = s.ellipse
	return clone
}

// Complement runs shape classification over the recorded points and
// overwrites any previous result. Fewer than two points leaves the stroke
// unclassified.
func (s *Stroke) Complement() {
	fit := geom.ClassifyStrokeWith(s.points, s.width, s.fitOpts)
	s.shape = fit.Shape
	s.ellipse = fit.Ellipse
	s.complemented = fit.Shape != geom.ShapeNone
}

func (s *Stroke) Complementable() bool {
	return s.complemented && s.shape != geom.ShapeNone
}

// LineSegment is an immutable straight segment, typically the simplified
// replacement for a line-like stroke.
type LineSegment struct {
	id         string
	start, end geom.Point
	color      color.Color
	width      float32
}

func NewLineSegment(start, end geom.Point, c color.Color, width float32) *LineSegment {
	return &LineSegment{id: uuid.NewString(), start: start, end: end, color: c, width: width}
}

func (l *LineSegment) ID() string { return l.id }
func (l *LineSegment) Start() geom.Point { return l.start }
func (l *LineSegment) End() geom.Point { return l.end }
func (l *LineSegment) Color() color.Color { return l.color }
func (l *LineSegment) Width() float32 { return l.width }

func (l *LineSegment) Draw(r Renderer) { r.Line(l.start, l.end, l.color, l.width) }

func (l *LineSegment) Clone() Drawable {
	return NewLineSegment(l.start, l.end, l.color, l.width)
}

func (l *LineSegment) Complement() {}
func (l *LineSegment) Complementable() bool { return false }

// EllipseSegment is an immutable axis-aligned ellipse outline, the simplified
// replacement for ellipse-like and curve-like strokes.
type EllipseSegment struct {
	id      string
	ellipse geom.Ellipse
	color   color.Color
	width   float32
}

func NewEllipseSegment(e geom.Ellipse, c color.Color, width float32) *EllipseSegment {
	return &EllipseSegment{id: uuid.NewString(), ellipse: e, color: c, width: width}
}

func (e *EllipseSegment) ID() string { return e.id }
func (e *EllipseSegment) Ellipse() geom.Ellipse { return e.ellipse }
func (e *EllipseSegment) Color() color.Color { return e.color }
func (e *EllipseSegment) Width() float32 { return e.width }

func (e *EllipseSegment) Draw(r Renderer) { r.Ellipse(e.ellipse, e.color, e.width) }

func (e *EllipseSegment) Clone() Drawable {
	return NewEllipseSegment(e.ellipse, e.color, e.width)
}

func (e *EllipseSegment) Complement() {}
func (e *EllipseSegment) Complementable() bool { return false }
