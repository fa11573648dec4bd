package spline

import "fmt"

// Basis computes the p+1 non-vanishing B-spline basis functions of degree p at
// parameter u, which must lie in the knot span with index span (see
// [KnotVector.Span]). Element i of the result is the value of N[span−p+i, p](u).
//
// The values are non-negative and sum to 1. This is algorithm A2.2 from The
// NURBS Book by Piegl and Tiller.
//
// Basis panics if the span has zero width, which happens when u is not inside
// span or when a knot's multiplicity exceeds the degree.
func (knots KnotVector) Basis(span int, u float64, p int) []float64 {
	N := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	knots.basis(N, left, right, span, u, p)
	return N
}

// basis is the allocation-free core of [KnotVector.Basis]. N, left and right
// must have length of at least p+1.
func (knots KnotVector) basis(N, left, right []float64, span int, u float64, p int) {
	N[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			den := right[r+1] + left[j-r]
			if den == 0 {
				panic(fmt.Sprintf("degenerate knot span %d at u=%v", span, u))
			}
			tmp := N[r] / den
			N[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		N[j] = saved
	}
}
