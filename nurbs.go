package spline

import (
	"fmt"
	"math"
)

// NURBS evaluates clamped, uniform non-uniform rational B-splines. Each control
// point carries a positive weight; the larger a point's weight relative to its
// neighbors, the more strongly the curve is pulled towards it. With uniform
// weights the curve is identical to the [BSpline] of the same degree.
//
// The degree is Config.Degree clamped to one less than the number of control
// points. Weights come from Config.Weights; if that is absent, has the wrong
// length, or contains a weight that isn't positive and finite, every point is
// given weight 1.
//
// Config.Resolution is the number of samples, evenly spaced in the parameter
// domain. At least two samples are taken, and the first and last samples lie
// exactly at the start and end of the domain.
type NURBS struct{}

// Evaluate implements [Evaluator].
func (NURBS) Evaluate(points []Point, cfg Config) []Point {
	n := len(points)
	p := clampDegree(cfg.Degree, n)
	if p < 1 {
		Logger().Warn("too few control points for a NURBS curve", "points", n)
		return points
	}
	samples := DefaultNURBSSamples
	if cfg.Resolution > 0 {
		samples = max(int(math.Round(min(cfg.Resolution, MaxSteps+1))), 2)
	}

	weights := nurbsWeights(cfg.Weights, n)
	knots := ClampedKnots(n, p)
	lo, hi := knots.Domain(p)

	N := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	out := make([]Point, samples)
	for i := range out {
		t := float64(i) / float64(samples-1)
		u := lo + t*(hi-lo)
		if i == samples-1 {
			u = hi
		}
		k := knots.Span(p, u)
		knots.basis(N, left, right, k, u, p)
		out[i] = rationalPoint(points, weights, N, k, p)
	}

	Logger().Debug("sampled NURBS curve", "points", n, "degree", p, "samples", samples)
	return out
}

// EvaluateNURBS samples the NURBS curve of the given degree defined by points
// and weights. Weights may be nil. See [NURBS].
func EvaluateNURBS(points []Point, weights []float64, degree int, samples int) []Point {
	return NURBS{}.Evaluate(points, Config{
		Degree:     degree,
		Resolution: float64(samples),
		Weights:    weights,
	})
}

// EvaluateControlPoints samples the NURBS curve defined by weighted control
// points. The weights in cfg are ignored.
func EvaluateControlPoints(cps []ControlPoint, cfg Config) []Point {
	pts, ws := SplitControlPoints(cps)
	cfg.Weights = ws
	return NURBS{}.Evaluate(pts, cfg)
}

// rationalPoint computes Σ wᵢNᵢPᵢ / Σ wᵢNᵢ over the p+1 control points active in
// span k, given their basis function values N.
func rationalPoint(points []Point, weights, N []float64, k, p int) Point {
	var x, y, w float64
	for i := 0; i <= p; i++ {
		idx := k - p + i
		wn := weights[idx] * N[i]
		x += wn * points[idx].X
		y += wn * points[idx].Y
		w += wn
	}
	if w == 0 {
		panic(fmt.Sprintf("zero total weight in knot span %d", k))
	}
	return Point{X: x / w, Y: y / w}
}

// nurbsWeights returns the weights to use for n control points.
func nurbsWeights(ws []float64, n int) []float64 {
	if len(ws) == n {
		ok := true
		for _, w := range ws {
			if !(w > 0) || math.IsInf(w, 0) {
				ok = false
				break
			}
		}
		if ok {
			return ws
		}
		Logger().Warn("ignoring weights that aren't positive and finite", "weights", ws)
	}
	uniform := make([]float64, n)
	for i := range uniform {
		uniform[i] = 1
	}
	return uniform
}
