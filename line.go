package spline

// Line is a straight line segment between two points.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Eval evaluates the line at t ∈ [0, 1].
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance between pt and the closest point on the
// line, as well as that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	v := pt.Sub(l.P0)
	dd := d.Hypot2()
	if dd == 0 {
		return v.Hypot2(), 0
	}
	t = min(max(v.Dot(d)/dd, 0), 1)
	return l.Eval(t).DistanceSquared(pt), t
}
