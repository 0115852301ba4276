package state

import (
	"image/color"

	"sketchpad/internal/geom"
)

// Preview is a staged, not-yet-committed replacement candidate: the
// simplified shape that would take the original's slot if confirmed. It is
// pre-history staging, not part of the undo/redo history.
type Preview struct {
	Original  Drawable
	Candidate Drawable
	Index     int
}

// Session is the per-editing-session orchestration: the in-progress stroke,
// the optional pending preview, and the pen settings new strokes pick up.
// One session drives one document for the session's lifetime.
type Session struct {
	doc     *Document
	current *Stroke
	preview *Preview

	penColor color.Color
	penWidth float32
	fitOpts  geom.Options
}

func NewSession(doc *Document) *Session {
	return &Session{
		doc:      doc,
		penColor: color.Black,
		penWidth: 3.0,
		fitOpts:  geom.DefaultOptions(),
	}
}

func (s *Session) Document() *Document { return s.doc }

// CurrentStroke returns the in-progress stroke, or nil when idle.
func (s *Session) CurrentStroke() *Stroke { return s.current }

// Preview returns the pending preview triple, or nil when none is staged.
func (s *Session) Preview() *Preview { return s.preview }

func (s *Session) Drawing() bool { return s.current != nil }

func (s *Session) SetColor(c color.Color) { s.penColor = c }
func (s *Session) SetWidth(w float32) { s.penWidth = w }
func (s *Session) SetFitOptions(o geom.Options) { s.fitOpts = o }
func (s *Session) Color() color.Color { return s.penColor }
func (s *Session) Width() float32 { return s.penWidth }

// StartStroke begins a new freehand stroke at p. Starting a stroke discards
// any pending preview; the committed raw stroke underneath it stays.
func (s *Session) StartStroke(p geom.Point) {
	s.DiscardPreview()
	s.current = NewStroke(s.penColor, s.penWidth)
	s.current.SetFitOptions(s.fitOpts)
	s.current.AddPoint(p)
}

// ExtendStroke appends a point to the in-progress stroke; no-op when idle.
func (s *Session) ExtendStroke(p geom.Point) {
	if s.current == nil {
		return
	}
	s.current.AddPoint(p)
}

// FinishStroke commits the in-progress stroke to the document as one
// undoable unit, classifies it, and stages a preview when the stroke is
// complementable. Strokes with fewer than two points are dropped silently.
func (s *Session) FinishStroke() {
	stroke := s.current
	s.current = nil
	if stroke == nil || len(stroke.Points()) < 2 {
		return
	}

	s.doc.Apply(NewAddObject(stroke))

	stroke.Complement()
	if !stroke.Complementable() {
		return
	}

	var candidate Drawable
	switch stroke.Shape() {
	case geom.ShapeLine:
		pts := stroke.Points()
		candidate = NewLineSegment(pts[0], pts[len(pts)-1], stroke.Color(), stroke.Width())
	case geom.ShapeEllipse, geom.ShapeCurve:
		candidate = NewEllipseSegment(stroke.FitEllipse(), stroke.Color(), stroke.Width())
	default:
		return
	}

	s.preview = &Preview{
		Original:  stroke,
		Candidate: candidate,
		Index:     s.doc.LastIndex(),
	}
}

// ConfirmPreview turns the pending preview into a committed replace command,
// the second independently undoable unit of the complement flow. It reports
// false when no preview is staged.
func (s *Session) ConfirmPreview() bool {
	if s.preview == nil {
		return false
	}
	p := s.preview
	s.preview = nil
	s.doc.Apply(NewReplaceObjectAt(p.Index, p.Original, p.Candidate))
	return true
}

// DiscardPreview drops the pending preview with no history effect.
func (s *Session) DiscardPreview() {
	s.preview = nil
}

// Undo discards any pending preview, then reverses the last command.
func (s *Session) Undo() bool {
	s.DiscardPreview()
	return s.doc.Undo()
}

// Redo discards any pending preview, then re-applies the last undone command.
func (s *Session) Redo() bool {
	s.DiscardPreview()
	return s.doc.Redo()
}
