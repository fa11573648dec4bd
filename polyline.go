package spline

import (
	"iter"
	"math"
)

// Polyline is a sequence of points connected by straight lines, such as the
// output of an [Evaluator].
type Polyline []Point

// Segments returns an iterator over the lines connecting consecutive points.
func (pl Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pl); i++ {
			if !yield(Line{pl[i-1], pl[i]}) {
				break
			}
		}
	}
}

// Length returns the sum of the lengths of all segments.
func (pl Polyline) Length() float64 {
	var l float64
	for seg := range pl.Segments() {
		l += seg.Length()
	}
	return l
}

// BoundingBox returns the smallest rectangle enclosing all points. The zero
// Rect is returned for an empty polyline.
func (pl Polyline) BoundingBox() Rect {
	if len(pl) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(pl[0], pl[0])
	for _, pt := range pl[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// IsClosed reports whether the polyline has at least two points and its last
// point is exactly equal to its first.
func (pl Polyline) IsClosed() bool {
	return len(pl) > 1 && pl[0] == pl[len(pl)-1]
}

// Nearest returns the index of the segment closest to pt, the squared distance
// to it, and the parameter of the closest point on that segment. A polyline
// with a single point is treated as a degenerate segment. The index is -1 for
// an empty polyline.
func (pl Polyline) Nearest(pt Point) (idx int, distSq, t float64) {
	switch len(pl) {
	case 0:
		return -1, math.Inf(1), 0
	case 1:
		return 0, pl[0].DistanceSquared(pt), 0
	}
	idx, distSq = -1, math.Inf(1)
	i := 0
	for seg := range pl.Segments() {
		if d, tt := seg.Nearest(pt); d < distSq {
			idx, distSq, t = i, d, tt
		}
		i++
	}
	return idx, distSq, t
}
