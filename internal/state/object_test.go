package state

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchpad/internal/geom"
)

// recorder implements Renderer and counts what was drawn.
type recorder struct {
	polylines int
	lines     int
	ellipses  int
}

func (r *recorder) Polyline(pts []geom.Point, c color.Color, w float32) { r.polylines++ }
func (r *recorder) Line(a, b geom.Point, c color.Color, w float32) { r.lines++ }
func (r *recorder) Ellipse(e geom.Ellipse, c color.Color, w float32) { r.ellipses++ }

func lineStroke(width float32) *Stroke {
	s := NewStroke(color.Black, width)
	s.AddPoint(geom.Point{X: 0, Y: 0})
	s.AddPoint(geom.Point{X: 50, Y: 0.2})
	s.AddPoint(geom.Point{X: 100, Y: -0.1})
	return s
}

func circleStroke(width float32) *Stroke {
	s := NewStroke(color.Black, width)
	for i := 0; i < 16; i++ {
		a := 2 * math.Pi * float64(i) / 16
		s.AddPoint(geom.Point{
			X: float32(100 + 40*math.Cos(a)),
			Y: float32(100 + 40*math.Sin(a)),
		})
	}
	return s
}

func TestStrokeComplement(t *testing.T) {
	s := lineStroke(3)
	assert.False(t, s.Complementable())

	s.Complement()
	require.True(t, s.Complementable())
	assert.Equal(t, geom.ShapeLine, s.Shape())
}

func TestStrokeComplementOverwritesPriorResult(t *testing.T) {
	s := lineStroke(3)
	s.Complement()
	require.Equal(t, geom.ShapeLine, s.Shape())

	// Extend the stroke far off the chord and re-classify: the previous
	// result is replaced, not accumulated.
	for i := 0; i < 10; i++ {
		y := float32(80)
		if i%2 == 0 {
			y = -80
		}
		s.AddPoint(geom.Point{X: float32(100 + i*10), Y: y})
	}
	s.Complement()
	assert.Equal(t, geom.ShapeCurve, s.Shape())
	assert.True(t, s.Complementable())
}

func TestStrokeComplementTooFewPoints(t *testing.T) {
	s := NewStroke(color.Black, 3)
	s.AddPoint(geom.Point{X: 1, Y: 1})
	s.Complement()

	assert.Equal(t, geom.ShapeNone, s.Shape())
	assert.False(t, s.Complementable())
}

func TestStrokeCloneIsIndependent(t *testing.T) {
	s := circleStroke(3)
	s.Complement()

	clone := s.Clone().(*Stroke)
	assert.NotEqual(t, s.ID(), clone.ID())
	assert.Equal(t, s.Points(), clone.Points())
	assert.Equal(t, s.Shape(), clone.Shape())
	assert.Equal(t, s.FitEllipse(), clone.FitEllipse())

	// Growing the original must not leak into the clone's buffer.
	before := len(clone.Points())
	s.AddPoint(geom.Point{X: 500, Y: 500})
	assert.Len(t, clone.Points(), before)
}

func TestPrimitivesAreNeverComplementable(t *testing.T) {
	l := NewLineSegment(geom.Point{}, geom.Point{X: 10}, color.Black, 3)
	e := NewEllipseSegment(geom.Ellipse{RadiusX: 20, RadiusY: 20}, color.Black, 3)

	l.Complement()
	e.Complement()
	assert.False(t, l.Complementable())
	assert.False(t, e.Complementable())
}

func TestDrawDispatch(t *testing.T) {
	r := &recorder{}
	lineStroke(3).Draw(r)
	NewLineSegment(geom.Point{}, geom.Point{X: 10}, color.Black, 3).Draw(r)
	NewEllipseSegment(geom.Ellipse{RadiusX: 20, RadiusY: 20}, color.Black, 3).Draw(r)

	assert.Equal(t, 1, r.polylines)
	assert.Equal(t, 1, r.lines)
	assert.Equal(t, 1, r.ellipses)
}

func TestStrokeDrawSkipsDegenerate(t *testing.T) {
	r := &recorder{}
	s := NewStroke(color.Black, 3)
	s.AddPoint(geom.Point{X: 5, Y: 5})
	s.Draw(r)
	assert.Zero(t, r.polylines)
}
