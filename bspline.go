package spline

// BSpline evaluates clamped, uniform polynomial B-splines using de Boor's
// algorithm. The curve starts at the first control point, ends at the last
// one, and is pulled towards the points in between.
//
// The degree is Config.Degree clamped to one less than the number of control
// points. The curve is sampled at t = 0, step, 2·step, … up to 1 with step =
// Config.Resolution. If the last sample isn't the last control point, the
// control point is appended, so that coarse steps never cut the curve short.
type BSpline struct{}

// Evaluate implements [Evaluator].
func (BSpline) Evaluate(points []Point, cfg Config) []Point {
	n := len(points)
	p := clampDegree(cfg.Degree, n)
	if p < 1 || n < p+1 {
		Logger().Warn("too few control points for a B-spline", "points", n)
		return points
	}
	step := normalizeStep(cfg.Resolution, DefaultBSplineStep)

	knots := ClampedKnots(n, p)
	d := make([]Point, p+1)
	out := make([]Point, 0, stepCount(step)+1)
	stepSamples(step, func(t float64) {
		k := knots.Span(p, t)
		out = append(out, knots.deBoor(d, points, k, t, p))
	})

	if last := points[n-1]; out[len(out)-1] != last {
		out = append(out, last)
	}

	Logger().Debug("sampled B-spline", "points", n, "degree", p, "samples", len(out))
	return out
}

// EvaluateBSpline samples the clamped B-spline of the given degree defined by
// points. See [BSpline].
func EvaluateBSpline(points []Point, degree int, resolution float64) []Point {
	return BSpline{}.Evaluate(points, Config{Degree: degree, Resolution: resolution})
}

// deBoor evaluates the degree p B-spline with the given control points at u,
// which lies in span k. d is scratch space of length p+1 that receives the
// active control points P[k−p] … P[k].
func (knots KnotVector) deBoor(d []Point, points []Point, k int, u float64, p int) Point {
	copy(d, points[k-p:k+1])
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			i := j + k - p
			den := knots[i+1+p-r] - knots[i]
			if den == 0 {
				panic("degenerate knot span in de Boor recursion")
			}
			alpha := (u - knots[i]) / den
			d[j] = Point(Vec2(d[j-1]).Mul(1 - alpha).Add(Vec2(d[j]).Mul(alpha)))
		}
	}
	return d[p]
}
