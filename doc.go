// Package spline turns sequences of 2D control points into dense polylines
// approximating parametric curves. It was designed to back interactive curve
// editors, which hand it the points a user has placed and draw whatever it
// returns, but it has no knowledge of pixels, canvases, or input events.
//
// # Curve families
//
// Three families of curves are supported, each implemented by an [Evaluator]:
//
//   - [CatmullRom], an interpolating cubic spline that passes through every
//     control point. A tension parameter turns it into a cardinal spline.
//   - [BSpline], a clamped polynomial B-spline evaluated with de Boor's
//     algorithm. It starts and ends at the first and last control points and
//     is pulled towards the others.
//   - [NURBS], a clamped rational B-spline evaluated with the Cox–de Boor
//     basis functions. Every control point carries a weight; with uniform
//     weights the curve is the same as the B-spline of the same degree.
//
// [Kind] enumerates the families, which is convenient when the family is
// picked at runtime, for example from a user interface.
//
// All evaluators are configured with a [Config], whose zero value selects
// reasonable defaults. Inputs that don't define a curve, such as a single
// point, are returned unchanged rather than causing errors.
//
// # Knot vectors
//
// The B-spline and NURBS evaluators are built from exported primitives:
// [ClampedKnots] constructs a clamped, uniform [KnotVector],
// [KnotVector.Span] locates the knot span containing a parameter, and
// [KnotVector.Basis] computes the non-vanishing basis functions in a span.
// These may be used directly to evaluate curves at arbitrary parameters.
//
// # Concurrency
//
// Evaluation is a pure function of its inputs. Evaluators hold no state and
// may be used concurrently. Output slices are freshly allocated, except when
// the input is returned unchanged.
//
// # Logging
//
// The package logs nothing by default. Use [SetLogger] to receive warnings
// about inputs that fall back to defaults.
package spline
