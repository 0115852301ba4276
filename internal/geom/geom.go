package geom

// Point is a 2D coordinate in canvas space.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Ellipse is an axis-aligned ellipse described by its center and half-axes.
type Ellipse struct {
	Center  Point   `json:"center"`
	RadiusX float32 `json:"radius_x"`
	RadiusY float32 `json:"radius_y"`
}

// ShapeType identifies what a freehand point sequence was recognized as.
type ShapeType int

const (
	ShapeNone ShapeType = iota
	ShapeLine
	ShapeEllipse
	ShapeCurve
)

func (s ShapeType) String() string {
	switch s {
	case ShapeLine:
		return "line"
	case ShapeEllipse:
		return "ellipse"
	case ShapeCurve:
		return "curve"
	default:
		return "none"
	}
}

// Fit is the result of classifying a point sequence. Start and End are set
// for ShapeLine; Ellipse is set for ShapeEllipse and ShapeCurve.
type Fit struct {
	Shape   ShapeType
	Start   Point
	End     Point
	Ellipse Ellipse
}

// BoundingBox returns the axis-aligned bounding box of the points.
// It returns zero points for an empty slice.
func BoundingBox(points []Point) (min, max Point) {
	if len(points) == 0 {
		return Point{}, Point{}
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// BoundingEllipse fits an ellipse to the bounding box of the points: the
// center is the box midpoint and the radii are the half extents. This is the
// approximation used throughout instead of a least-squares fit.
func BoundingEllipse(points []Point) Ellipse {
	min, max := BoundingBox(points)
	return Ellipse{
		Center:  Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2},
		RadiusX: (max.X - min.X) / 2,
		RadiusY: (max.Y - min.Y) / 2,
	}
}
