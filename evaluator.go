package spline

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultCatmullRomStep is the parameter increment used by [CatmullRom]
	// when no resolution is configured.
	DefaultCatmullRomStep = 0.1
	// DefaultBSplineStep is the parameter increment used by [BSpline] when no
	// resolution is configured.
	DefaultBSplineStep = 0.01
	// DefaultNURBSSamples is the number of samples taken by [NURBS] when no
	// resolution is configured.
	DefaultNURBSSamples = 100
	// DefaultDegree is the degree of B-spline and NURBS curves when no degree is
	// configured.
	DefaultDegree = 3
)

// Config controls how a curve is sampled. The zero value selects the defaults
// of each curve family.
type Config struct {
	// Resolution controls sample density. For [CatmullRom] and [BSpline] it is
	// the parameter increment between samples, at least 1/[MaxSteps]; for
	// [NURBS] it is the number of samples, rounded to the nearest integer and
	// at most [MaxSteps]+1. Non-positive and NaN values select the family's
	// default, as does an infinite step.
	Resolution float64

	// Degree is the requested polynomial degree of [BSpline] and [NURBS]
	// curves. It is clamped to one less than the number of control points.
	// Non-positive values select [DefaultDegree].
	Degree int

	// Weights holds one weight per control point for [NURBS]. If its length
	// differs from the number of control points, uniform weights are used.
	Weights []float64

	// Tension turns [CatmullRom] into a cardinal spline. Zero yields a
	// Catmull-Rom spline, one yields straight segments.
	Tension float64
}

// An Evaluator samples the curve defined by a sequence of control points,
// returning a polyline. Evaluators do not retain points or configuration
// across calls and are safe for concurrent use.
//
// When the points don't define a curve, for example because there are fewer
// than two of them, Evaluate returns points itself.
type Evaluator interface {
	Evaluate(points []Point, cfg Config) []Point
}

var (
	_ Evaluator = CatmullRom{}
	_ Evaluator = BSpline{}
	_ Evaluator = NURBS{}
)

// Kind enumerates the curve families.
type Kind int

const (
	KindCatmullRom Kind = iota
	KindBSpline
	KindNURBS
)

// ErrUnknownKind is returned by [ParseKind] for unrecognized names.
var ErrUnknownKind = errors.New("unknown curve kind")

func (k Kind) String() string {
	switch k {
	case KindCatmullRom:
		return "spline"
	case KindBSpline:
		return "bspline"
	case KindNURBS:
		return "nurbs"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Evaluator returns the evaluator for curves of kind k. It panics for values
// other than the declared kinds.
func (k Kind) Evaluator() Evaluator {
	switch k {
	case KindCatmullRom:
		return CatmullRom{}
	case KindBSpline:
		return BSpline{}
	case KindNURBS:
		return NURBS{}
	default:
		panic(fmt.Sprintf("invalid curve kind %d", int(k)))
	}
}

// ParseKind returns the kind with the given name. It accepts the names
// returned by [Kind.String] as well as "catmull-rom" and "catmullrom", and
// ignores case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spline", "catmull-rom", "catmullrom":
		return KindCatmullRom, nil
	case "bspline", "b-spline":
		return KindBSpline, nil
	case "nurbs":
		return KindNURBS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindCatmullRom, KindBSpline, KindNURBS:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("invalid curve kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	kk, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// clampDegree returns the degree actually used for n control points.
func clampDegree(requested, n int) int {
	if requested <= 0 {
		requested = DefaultDegree
	}
	return min(requested, n-1)
}

// MaxSteps bounds the number of parameter steps per curve segment. Finer
// steps are coarsened to 1/MaxSteps.
const MaxSteps = 1 << 16

// normalizeStep returns the parameter step to use for a configured resolution.
// NaN, infinite and non-positive values select def.
func normalizeStep(step, def float64) float64 {
	if !(step > 0) || math.IsInf(step, 1) {
		return def
	}
	return max(step, 1.0/MaxSteps)
}

// stepCount returns the number of samples taken by stepSamples.
func stepCount(step float64) int {
	const eps = 1e-9
	return int(math.Floor(1/step+eps)) + 1
}

// stepSamples calls fn with t = 0, step, 2·step, … up to and including 1 where
// the last multiple of step reaches it. Multiples that overshoot 1 by rounding
// error only are clamped to 1. step must have been normalized.
func stepSamples(step float64, fn func(t float64)) {
	n := stepCount(step)
	for i := 0; i < n; i++ {
		fn(min(float64(i)*step, 1))
	}
}
