package spline

import (
	"fmt"
	"math"
)

// KnotVector is a non-decreasing sequence of parameter values partitioning the
// domain of a B-spline or NURBS curve.
type KnotVector []float64

// ClampedKnots returns the clamped, uniform knot vector for a curve of degree p
// with numPoints control points.
//
// The vector has numPoints+p+1 entries: p+1 zeros, p+1 ones, and
// numPoints−p−1 interior knots spaced uniformly in (0, 1). When numPoints is
// p+1 there are no interior knots and the curve is a single Bézier segment.
//
// ClampedKnots panics if p < 1 or numPoints < p+1.
func ClampedKnots(numPoints, p int) KnotVector {
	if p < 1 {
		panic(fmt.Sprintf("invalid degree %d", p))
	}
	if numPoints < p+1 {
		panic(fmt.Sprintf("%d control points are too few for degree %d", numPoints, p))
	}

	n := numPoints - 1
	m := n + p + 2
	knots := make(KnotVector, m)
	// Interior knots are (i−p)/(n−p+1) for p < i < m−p−1.
	segs := float64(n - p + 1)
	for i := p + 1; i < m-p-1; i++ {
		knots[i] = float64(i-p) / segs
	}
	for i := m - p - 1; i < m; i++ {
		knots[i] = 1
	}
	return knots
}

// Clone returns a copy of the knot vector.
func (knots KnotVector) Clone() KnotVector {
	return append(KnotVector(nil), knots...)
}

// NumPoints returns the number of control points a curve of degree p over
// these knots has.
func (knots KnotVector) NumPoints(p int) int {
	return len(knots) - p - 1
}

// Domain returns the valid parameter range [knots[p], knots[n+1]] of a curve of
// degree p.
func (knots KnotVector) Domain(p int) (lo, hi float64) {
	return knots[p], knots[len(knots)-p-1]
}

// IsNonDecreasing reports whether no knot is smaller than its predecessor.
func (knots KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return false
		}
	}
	return true
}

// IsValid reports whether knots is a well-formed, clamped knot vector for a
// curve of degree p: it is non-decreasing, describes at least p+1 control
// points, and its first and last p+1 entries are equal.
func (knots KnotVector) IsValid(p int) bool {
	if p < 1 || len(knots) < 2*(p+1) {
		return false
	}
	for _, k := range knots {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return false
		}
	}
	for _, k := range knots[:p+1] {
		if k != knots[0] {
			return false
		}
	}
	last := knots[len(knots)-1]
	for _, k := range knots[len(knots)-p-1:] {
		if k != last {
			return false
		}
	}
	return knots.IsNonDecreasing()
}

// Span returns the index k of the knot span containing u, such that
// knots[k] ≤ u < knots[k+1], for a curve of degree p. At the upper end of the
// domain, the last non-empty span is returned.
//
// Span panics if u lies outside of the curve's domain. The samplers in this
// package never produce such values; a panic indicates a bug in the caller's
// parameter mapping.
func (knots KnotVector) Span(p int, u float64) int {
	// n is the index of the last control point.
	n := len(knots) - p - 2
	if math.IsNaN(u) || u < knots[p] || u > knots[n+1] {
		panic(fmt.Sprintf("parameter %v outside of knot domain [%v, %v]", u, knots[p], knots[n+1]))
	}

	if u >= knots[n+1] {
		return n
	}
	if u <= knots[p] {
		// Skip over empty spans caused by repeated knots at the start.
		k := p
		for knots[k+1] <= u {
			k++
		}
		return k
	}

	low, high := p, n+1
	mid := (low + high) / 2
	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}
