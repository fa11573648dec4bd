package spline

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Sub computes p−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// ControlPoint is a point that shapes a curve, together with the weight it
// carries in rational curves. A weight of zero is treated as 1, so that
// ControlPoint{Point: p} has unit weight.
//
// Only [NURBS] makes use of weights.
type ControlPoint struct {
	Point
	Weight float64
}

// Cp returns the control point (x, y) with weight w.
func Cp(x, y, w float64) ControlPoint {
	return ControlPoint{Point: Pt(x, y), Weight: w}
}

// SplitControlPoints separates control points into their positions and
// weights, substituting 1 for zero weights.
func SplitControlPoints(cps []ControlPoint) ([]Point, []float64) {
	pts := make([]Point, len(cps))
	ws := make([]float64, len(cps))
	for i, cp := range cps {
		pts[i] = cp.Point
		ws[i] = cp.Weight
		if ws[i] == 0 {
			ws[i] = 1
		}
	}
	return pts, ws
}
