package spline

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"spline", KindCatmullRom},
		{"Catmull-Rom", KindCatmullRom},
		{"catmullrom", KindCatmullRom},
		{"bspline", KindBSpline},
		{" B-Spline ", KindBSpline},
		{"NURBS", KindNURBS},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q) returned error: %s", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("bezier"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got error %v, want %v", err, ErrUnknownKind)
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindCatmullRom, KindBSpline, KindNURBS} {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Kind
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		diff(t, k, got)
	}
	if _, err := Kind(42).MarshalText(); err == nil {
		t.Error("expected error for invalid kind")
	}
	diff(t, "Kind(42)", Kind(42).String())
	expectPanic(t, func() { Kind(42).Evaluator() })
}

func TestKindsDiffer(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(100, 200), Pt(200, 0), Pt(300, 200), Pt(400, 0)}
	cfg := Config{Resolution: 0.1, Degree: 3}

	cr := KindCatmullRom.Evaluator().Evaluate(pts, cfg)
	bs := KindBSpline.Evaluator().Evaluate(pts, cfg)
	nu := KindNURBS.Evaluator().Evaluate(pts, Config{Resolution: 11, Degree: 3, Weights: []float64{1, 4, 1, 4, 1}})

	// Catmull-Rom interpolates the interior control points, the B-splines
	// don't.
	if !containsPoint(cr, pts[1]) {
		t.Errorf("Catmull-Rom spline doesn't pass through %v", pts[1])
	}
	if containsPoint(bs, pts[1]) {
		t.Errorf("B-spline passes through %v", pts[1])
	}

	diff(t, 4*11, len(cr))
	diff(t, 11, len(bs))
	diff(t, 11, len(nu))
	if bs[5] == nu[5] {
		t.Error("weighted NURBS curve equals the B-spline")
	}
}

func containsPoint(pts []Point, pt Point) bool {
	for _, p := range pts {
		if p.Distance(pt) < 1e-9 {
			return true
		}
	}
	return false
}

func TestEvaluatorsDontMutateInput(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 3), Pt(4, 1), Pt(6, 6), Pt(9, 2)}
	orig := append([]Point(nil), pts...)
	ws := []float64{1, 2, 3, 2, 1}
	for _, k := range []Kind{KindCatmullRom, KindBSpline, KindNURBS} {
		k.Evaluator().Evaluate(pts, Config{Weights: ws})
		diff(t, orig, pts)
	}
	diff(t, []float64{1, 2, 3, 2, 1}, ws)
}

func TestConcurrentEvaluation(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 3), Pt(4, 1), Pt(6, 6), Pt(9, 2)}
	want := map[Kind][]Point{}
	kinds := []Kind{KindCatmullRom, KindBSpline, KindNURBS}
	for _, k := range kinds {
		want[k] = k.Evaluator().Evaluate(pts, Config{})
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		k := kinds[i%len(kinds)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			diff(t, want[k], k.Evaluator().Evaluate(pts, Config{}))
		}()
	}
	wg.Wait()
}

func TestStepSamples(t *testing.T) {
	collect := func(step float64) []float64 {
		var ts []float64
		stepSamples(step, func(t float64) { ts = append(ts, t) })
		return ts
	}
	diff(t, []float64{0, 0.5, 1}, collect(0.5))
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, collect(0.25))
	diff(t, []float64{0}, collect(1.5))
	diff(t, 11, len(collect(0.1)))
	diff(t, 101, len(collect(0.01)))
	diff(t, 4, len(collect(0.3)))
	if ts := collect(1.0 / 3); ts[len(ts)-1] != 1 {
		t.Errorf("last sample is %v, want 1", ts[len(ts)-1])
	}
}

func TestNormalizeStep(t *testing.T) {
	for _, tc := range []struct {
		step, want float64
	}{
		{0.25, 0.25},
		{0, 0.1},
		{-1, 0.1},
		{math.NaN(), 0.1},
		{math.Inf(1), 0.1},
		{1e-30, 1.0 / MaxSteps},
		{math.SmallestNonzeroFloat64, 1.0 / MaxSteps},
	} {
		diff(t, tc.want, normalizeStep(tc.step, 0.1))
	}
	diff(t, MaxSteps+1, stepCount(normalizeStep(1e-300, 0.1)))
}
