package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleEllipse returns n points evenly spaced on an axis-aligned ellipse,
// starting at angle zero and not repeating the first point.
func sampleEllipse(cx, cy, rx, ry float64, n int) []Point {
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Point{
			X: float32(cx + rx*math.Cos(a)),
			Y: float32(cy + ry*math.Sin(a)),
		})
	}
	return pts
}

func TestClassifyStroke_TooFewPoints(t *testing.T) {
	assert.Equal(t, ShapeNone, ClassifyStroke(nil, 3).Shape)
	assert.Equal(t, ShapeNone, ClassifyStroke([]Point{}, 3).Shape)
	assert.Equal(t, ShapeNone, ClassifyStroke([]Point{{X: 5, Y: 5}}, 3).Shape)
}

func TestClassifyStroke_PerfectlyCollinear(t *testing.T) {
	pts := []Point{{0, 0}, {10, 10}, {20, 20}, {30, 30}}

	// Zero deviation matches regardless of stroke width.
	for _, w := range []float32{0.5, 1, 3, 50} {
		fit := ClassifyStroke(pts, w)
		require.Equal(t, ShapeLine, fit.Shape, "width %v", w)
		assert.Equal(t, Point{0, 0}, fit.Start)
		assert.Equal(t, Point{30, 30}, fit.End)
	}
}

func TestClassifyStroke_NearlyStraightScenario(t *testing.T) {
	// Width 3 gives tolerance 6; the worst point deviates by about 0.2.
	pts := []Point{{0, 0}, {50, 0.2}, {100, -0.1}}
	fit := ClassifyStroke(pts, 3)

	require.Equal(t, ShapeLine, fit.Shape)
	assert.Equal(t, Point{0, 0}, fit.Start)
	assert.Equal(t, Point{100, -0.1}, fit.End)
}

func TestClassifyStroke_Circle(t *testing.T) {
	pts := sampleEllipse(100, 100, 40, 40, 16)
	fit := ClassifyStroke(pts, 3)

	require.Equal(t, ShapeEllipse, fit.Shape)
	assert.InDelta(t, 100, fit.Ellipse.Center.X, 1e-3)
	assert.InDelta(t, 100, fit.Ellipse.Center.Y, 1e-3)
	assert.InDelta(t, 40, fit.Ellipse.RadiusX, 1e-3)
	assert.InDelta(t, 40, fit.Ellipse.RadiusY, 1e-3)
}

func TestClassifyStroke_EllipseScenario(t *testing.T) {
	pts := sampleEllipse(100, 100, 40, 30, 12)
	fit := ClassifyStroke(pts, 3)

	require.Equal(t, ShapeEllipse, fit.Shape)
	assert.InDelta(t, 100, fit.Ellipse.Center.X, 1e-3)
	assert.InDelta(t, 100, fit.Ellipse.Center.Y, 1e-3)
	assert.InDelta(t, 40, fit.Ellipse.RadiusX, 1e-3)
	assert.InDelta(t, 30, fit.Ellipse.RadiusY, 1e-3)
}

// A closed loop has near-coincident endpoints, so the chord through them says
// nothing about straightness. The gate on the chord deviation is what routes
// it to the ellipse branch; verify the deviation really clears the gate.
func TestClassifyStroke_GateDecidesEllipseOverLine(t *testing.T) {
	const width = 3
	pts := sampleEllipse(100, 100, 40, 40, 16)

	tolerance := 2.0 * width
	require.Greater(t, maxChordDeviation(pts), 5*tolerance)
	assert.Equal(t, ShapeEllipse, ClassifyStroke(pts, width).Shape)
}

func TestClassifyStroke_DegenerateRadiusFallsBackToCurve(t *testing.T) {
	// Radius below the minimum can never be an ellipse; with more than ten
	// points and a large deviation it lands on the curve fallback.
	pts := sampleEllipse(50, 50, 8, 8, 12)
	fit := ClassifyStroke(pts, 0.5)

	require.Equal(t, ShapeCurve, fit.Shape)
	assert.InDelta(t, 8, fit.Ellipse.RadiusX, 1e-3)
}

func TestClassifyStroke_ShortWobbleIsNone(t *testing.T) {
	// Not straight, not elliptical, and too few points for a curve.
	pts := []Point{{0, 0}, {10, 40}, {20, -40}, {30, 40}, {40, 0}}
	assert.Equal(t, ShapeNone, ClassifyStroke(pts, 1).Shape)
}

func TestClassifyStroke_LongWobbleIsCurve(t *testing.T) {
	pts := make([]Point, 0, 12)
	for i := 0; i < 12; i++ {
		y := float32(40)
		if i%2 == 0 {
			y = -40
		}
		pts = append(pts, Point{X: float32(i * 10), Y: y})
	}
	assert.Equal(t, ShapeCurve, ClassifyStroke(pts, 1).Shape)
}

func TestClassifyStrokeWith_CustomThresholds(t *testing.T) {
	pts := []Point{{0, 0}, {50, 4}, {100, 0}}

	// Deviation 4 misses the default tolerance for width 1 but a wider
	// factor accepts it.
	assert.Equal(t, ShapeNone, ClassifyStroke(pts, 1).Shape)

	loose := DefaultOptions()
	loose.LineToleranceFactor = 5
	assert.Equal(t, ShapeLine, ClassifyStrokeWith(pts, 1, loose).Shape)
}

func TestClassifyStrokeWith_ZeroOptionsMeansDefaults(t *testing.T) {
	pts := sampleEllipse(100, 100, 40, 30, 12)
	assert.Equal(t, ClassifyStroke(pts, 3), ClassifyStrokeWith(pts, 3, Options{}))
}

func TestMaxChordDeviation(t *testing.T) {
	// Chord along the x axis; the middle point sits 7 above it.
	pts := []Point{{0, 0}, {50, 7}, {100, 0}}
	assert.InDelta(t, 7, maxChordDeviation(pts), 1e-4)

	// Coincident endpoints collapse the implicit equation; the divisor
	// fallback keeps the computation finite.
	closed := []Point{{0, 0}, {3, 4}, {0, 0}}
	assert.False(t, math.IsNaN(maxChordDeviation(closed)))
}

func TestBoundingEllipse(t *testing.T) {
	pts := []Point{{10, 20}, {90, 20}, {50, 80}}
	e := BoundingEllipse(pts)

	assert.Equal(t, Point{50, 50}, e.Center)
	assert.Equal(t, float32(40), e.RadiusX)
	assert.Equal(t, float32(30), e.RadiusY)
}

func TestBoundingBox_Empty(t *testing.T) {
	min, max := BoundingBox(nil)
	assert.Equal(t, Point{}, min)
	assert.Equal(t, Point{}, max)
}
