// Package geom holds the pure geometry used by the recognizer: point and
// ellipse types plus the stroke classification that decides whether a
// freehand sequence can be simplified to a line, an ellipse or a curve.
package geom

import "math"

// Options tunes the classification thresholds. The zero value of any field
// falls back to its default, so Options{} behaves like DefaultOptions().
type Options struct {
	// LineToleranceFactor scales the stroke width into the maximum
	// perpendicular deviation allowed for a line match.
	LineToleranceFactor float64
	// EllipseGateFactor scales the line tolerance into the minimum chord
	// deviation required before an ellipse match beats a line match.
	EllipseGateFactor float64
	// MinRadius rejects degenerate ellipse fits below this half-axis size.
	MinRadius float64
	// EllipseResidual is the maximum normalized residual |nx²+ny²-1|.
	EllipseResidual float64
	// CurveMinPoints is the minimum point count (exclusive) for the
	// generic curve fallback.
	CurveMinPoints int
}

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		LineToleranceFactor: 2.0,
		EllipseGateFactor:   5.0,
		MinRadius:           10.0,
		EllipseResidual:     0.2,
		CurveMinPoints:      10,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.LineToleranceFactor <= 0 {
		o.LineToleranceFactor = def.LineToleranceFactor
	}
	if o.EllipseGateFactor <= 0 {
		o.EllipseGateFactor = def.EllipseGateFactor
	}
	if o.MinRadius <= 0 {
		o.MinRadius = def.MinRadius
	}
	if o.EllipseResidual <= 0 {
		o.EllipseResidual = def.EllipseResidual
	}
	if o.CurveMinPoints <= 0 {
		o.CurveMinPoints = def.CurveMinPoints
	}
	return o
}

// ClassifyStroke inspects an ordered point sequence and decides whether it
// approximates a line, an ellipse or a generic curve, using the default
// thresholds. Fewer than two points always yields ShapeNone.
func ClassifyStroke(points []Point, strokeWidth float32) Fit {
	return ClassifyStrokeWith(points, strokeWidth, DefaultOptions())
}

// ClassifyStrokeWith is ClassifyStroke with explicit thresholds. It is a pure
// function: every call re-evaluates the sequence from scratch.
//
// The decision order favors the simplest matching shape, except that a clear
// ellipse wins over a line: a closed loop has near-coincident endpoints, so
// its chord deviation is huge and the gate factor keeps it out of the line
// branch.
func ClassifyStrokeWith(points []Point, strokeWidth float32, opts Options) Fit {
	if len(points) < 2 {
		return Fit{}
	}
	opts = opts.normalized()

	maxDev := maxChordDeviation(points)
	tolerance := opts.LineToleranceFactor * float64(strokeWidth)

	ellipse := BoundingEllipse(points)
	switch {
	case isEllipseLike(points, ellipse, opts) && maxDev > opts.EllipseGateFactor*tolerance:
		return Fit{Shape: ShapeEllipse, Ellipse: ellipse}
	case maxDev < tolerance:
		return Fit{Shape: ShapeLine, Start: points[0], End: points[len(points)-1]}
	case len(points) > opts.CurveMinPoints:
		// No dedicated curve fit; the bounding ellipse stands in for
		// preview purposes.
		return Fit{Shape: ShapeCurve, Ellipse: ellipse}
	}
	return Fit{}
}

// maxChordDeviation returns the maximum perpendicular distance from any point
// to the infinite line through the first and last point. Coincident endpoints
// degrade the divisor to 1, which makes any off-chord point deviate wildly.
func maxChordDeviation(points []Point) float64 {
	start, end := points[0], points[len(points)-1]

	// Implicit line equation A*x + B*y + C = 0 through start and end.
	a := float64(end.Y - start.Y)
	b := float64(start.X - end.X)
	c := float64(end.X)*float64(start.Y) - float64(end.Y)*float64(start.X)

	div := math.Sqrt(a*a + b*b)
	if div == 0 {
		div = 1
	}

	var maxDev float64
	for _, p := range points {
		d := math.Abs(a*float64(p.X)+b*float64(p.Y)+c) / div
		if d > maxDev {
			maxDev = d
		}
	}
	return maxDev
}

// isEllipseLike reports whether every point lies close to the bounding-box
// ellipse. Needs at least five points and non-degenerate radii.
func isEllipseLike(points []Point, e Ellipse, opts Options) bool {
	if len(points) < 5 {
		return false
	}
	if float64(e.RadiusX) < opts.MinRadius || float64(e.RadiusY) < opts.MinRadius {
		return false
	}
	for _, p := range points {
		nx := float64(p.X-e.Center.X) / float64(e.RadiusX)
		ny := float64(p.Y-e.Center.Y) / float64(e.RadiusY)
		if math.Abs(nx*nx+ny*ny-1) >= opts.EllipseResidual {
			return false
		}
	}
	return true
}
