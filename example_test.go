package spline_test

import (
	"fmt"

	"honnef.co/go/spline"
)

func ExampleEvaluateCatmullRom() {
	pts := []spline.Point{spline.Pt(0, 0), spline.Pt(1, 2), spline.Pt(2, 0), spline.Pt(3, 2)}
	for _, pt := range spline.EvaluateCatmullRom(pts, 0.5) {
		fmt.Println(pt)
	}
	// Output:
	// (0, 0)
	// (0.4375, 1.125)
	// (1, 2)
	// (1, 2)
	// (1.5, 1)
	// (2, 0)
	// (2, 0)
	// (2.5625, 0.875)
	// (3, 2)
}

func ExampleKnotVector_Basis() {
	knots := spline.ClampedKnots(4, 3)
	span := knots.Span(3, 0.5)
	fmt.Println(knots)
	fmt.Println(span, knots.Basis(span, 0.5, 3))
	// Output:
	// [0 0 0 0 1 1 1 1]
	// 3 [0.125 0.375 0.375 0.125]
}

func ExampleKind() {
	kind, err := spline.ParseKind("nurbs")
	if err != nil {
		panic(err)
	}
	pts := []spline.Point{spline.Pt(0, 0), spline.Pt(1, 2), spline.Pt(2, 0), spline.Pt(3, 2)}
	out := kind.Evaluator().Evaluate(pts, spline.Config{
		Resolution: 5,
		Weights:    []float64{1, 5, 1, 1},
	})
	fmt.Println(kind, len(out), out[0], out[len(out)-1])
	// Output:
	// nurbs 5 (0, 0) (3, 2)
}
