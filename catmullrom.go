package spline

// CatmullRom evaluates uniform Catmull-Rom splines, which pass through every
// control point. The curve between two consecutive points P₁ and P₂ is shaped
// by their neighbors P₀ and P₃. The first and last points act as their own
// missing neighbors.
//
// Each segment is sampled at t = 0, step, 2·step, … up to 1 with step =
// Config.Resolution, and the samples of all segments are concatenated. The end
// sample of one segment and the start sample of the next are both P₂ and both
// appear in the output.
//
// A non-zero Config.Tension scales the tangents by (1−tension), producing a
// cardinal spline.
type CatmullRom struct{}

// Evaluate implements [Evaluator].
func (CatmullRom) Evaluate(points []Point, cfg Config) []Point {
	n := len(points)
	if n < 2 {
		return points
	}
	step := normalizeStep(cfg.Resolution, DefaultCatmullRomStep)
	out := make([]Point, 0, (n-1)*stepCount(step))
	for i := 0; i < n-1; i++ {
		seg := CatmullRomSegment{
			P0:      points[max(i-1, 0)],
			P1:      points[i],
			P2:      points[i+1],
			P3:      points[min(i+2, n-1)],
			Tension: cfg.Tension,
		}
		stepSamples(step, func(t float64) {
			out = append(out, seg.Eval(t))
		})
	}

	Logger().Debug("sampled Catmull-Rom spline", "points", n, "samples", len(out))
	return out
}

// EvaluateCatmullRom samples the Catmull-Rom spline through points with the
// given parameter step. See [CatmullRom].
func EvaluateCatmullRom(points []Point, resolution float64) []Point {
	return CatmullRom{}.Evaluate(points, Config{Resolution: resolution})
}

// CatmullRomSegment is the piece of a cardinal spline between P1 and P2.
type CatmullRomSegment struct {
	P0, P1, P2, P3 Point
	Tension        float64
}

// Eval evaluates the segment at t ∈ [0, 1]. Eval(0) is P1 and Eval(1) is P2.
func (s CatmullRomSegment) Eval(t float64) Point {
	// Hermite form with tangents m₁ = (1−τ)(P₂−P₀)/2 and m₂ = (1−τ)(P₃−P₁)/2.
	// With τ = 0 this expands to
	// ½(2P₁ + (−P₀+P₂)t + (2P₀−5P₁+4P₂−P₃)t² + (−P₀+3P₁−3P₂+P₃)t³).
	s1 := 0.5 * (1 - s.Tension)
	m1 := s.P2.Sub(s.P0).Mul(s1)
	m2 := s.P3.Sub(s.P1).Mul(s1)

	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return Point(Vec2(s.P1).Mul(h00).
		Add(m1.Mul(h10)).
		Add(Vec2(s.P2).Mul(h01)).
		Add(m2.Mul(h11)))
}
