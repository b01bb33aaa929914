package xpath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadBezYAt(t *testing.T) {
	// x(t) = t, y = 2x(1 - x)
	q := QuadBez{Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0)}
	const n = 10
	for i := range n + 1 {
		x := float64(i) / float64(n)
		want := 2 * x * (1 - x)
		if y := q.YAt(x); math.Abs(y-want) > 1e-12 {
			t.Errorf("YAt(%v) = %v, want %v", x, y, want)
		}
	}
	if y := q.YAt(0.0); math.Abs(y) > 1e-8 {
		t.Errorf("got %v at start point, want 0", y)
	}
	if y := q.YAt(1.0); math.Abs(y) > 1e-8 {
		t.Errorf("got %v at end point, want 0", y)
	}
}

func TestQuadBezSolveX(t *testing.T) {
	q := QuadBez{Pt(0.0, 0.0), Pt(0.2, 1.0), Pt(1.0, 0.5)}
	const n = 1000
	for i := range n + 1 {
		x := float64(i) / float64(n)
		ts, ok := q.SolveX(x)
		if !ok {
			t.Fatalf("SolveX(%v) didn't converge", x)
		}
		if d := math.Abs(q.Eval(ts).X - x); d >= 1e-9 {
			t.Fatalf("SolveX(%v): x(%v) is off by %g", x, ts, d)
		}
		if y := q.YAt(x); y != q.Eval(ts).Y {
			t.Fatalf("YAt(%v) = %v, want %v", x, y, q.Eval(ts).Y)
		}
	}
}

func TestQuadBezSolveXNoConvergence(t *testing.T) {
	// x(t) never exceeds 4/3, so there is nothing to converge to.
	q := QuadBez{Pt(0.0, 0.0), Pt(2.0, 1.0), Pt(1.0, 0.0)}
	if _, ok := q.SolveX(5.0); ok {
		t.Error("expected SolveX to not converge")
	}
	// YAt still returns its best effort.
	_ = q.YAt(5.0)
}

func TestQuadBezNonMonotonicYAt(t *testing.T) {
	// x overshoots the end point. Evaluation silently picks whichever
	// solution Newton-Raphson lands on.
	q := QuadBez{Pt(0.0, 0.0), Pt(1.5, 1.0), Pt(1.0, 0.0)}
	const want = 0.30901699437488916
	if y := q.YAt(0.5); math.Abs(y-want) > 1e-12 {
		t.Errorf("got %v, want %v", y, want)
	}
}

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	assertNear(t, q.Eval(0), q.Start(), 1e-12)
	assertNear(t, q.Eval(1), q.End(), 1e-12)
	assertNear(t, q.Eval(0.5), Pt(0.25*3.1+0.5*5.9+0.25*5.3, 0.25*4.1+0.5*2.6+0.25*5.8), 1e-12)
}

func TestQuadBezDerivative(t *testing.T) {
	q := QuadBez{Pt(0.0, 0.0), Pt(0.0, 0.5), Pt(1.0, 1.0)}
	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		dApprox := (q.xAt(ts+delta) - q.xAt(ts)) / delta
		if d := math.Abs(q.dxAt(ts) - dApprox); d > delta*2 {
			t.Errorf("got difference of %g, want at most %g", d, delta*2)
		}
	}
}

func TestQuadBezXExtrema(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	q := QuadBez{Pt(0.0, 0.0), Pt(1.5, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.XExtrema()
	diff(t, []float64{0.75}, extrema[:n], approx)
	if q.MonotonicX() {
		t.Error("curve shouldn't be monotonic")
	}

	q = QuadBez{Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0)}
	extrema, n = q.XExtrema()
	diff(t, []float64{}, extrema[:n])
	if !q.MonotonicX() {
		t.Error("curve should be monotonic")
	}

	// Vertical tangent at the start point
	q = QuadBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0)}
	if !q.MonotonicX() {
		t.Error("curve should be monotonic")
	}

	// Reverse direction
	q = QuadBez{Pt(1.0, 0.0), Pt(0.5, 1.0), Pt(0.0, 0.0)}
	if !q.MonotonicX() {
		t.Error("curve should be monotonic")
	}

	q = QuadBez{Pt(1.0, 0.0), Pt(3.0, 1.0), Pt(1.0, 2.0)}
	if q.MonotonicX() {
		t.Error("closed loop in x shouldn't be monotonic")
	}
}

func TestQuadBezNonFinite(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(0.5, 1), Pt(1, 0)}
	if q.IsInf() || q.IsNaN() {
		t.Errorf("%v is not finite", q)
	}
	q.P1.Y = math.Inf(1)
	if !q.IsInf() || q.IsNaN() {
		t.Errorf("%v: got IsInf=%t IsNaN=%t", q, q.IsInf(), q.IsNaN())
	}
	q.P1.Y = math.NaN()
	if q.IsInf() || !q.IsNaN() {
		t.Errorf("%v: got IsInf=%t IsNaN=%t", q, q.IsInf(), q.IsNaN())
	}
}
