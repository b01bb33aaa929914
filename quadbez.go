package xpath

import (
	"fmt"
)

var _ Segment = QuadBez{}
var _ ParametricCurve = QuadBez{}
var _ XSolver = QuadBez{}

// QuadBez is a quadratic Bézier segment. As a [Segment], it is evaluated by
// inverting x(t) with Newton-Raphson iteration.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) String() string {
	return fmt.Sprintf("QuadBez(%s, %s, %s)", q.P0, q.P1, q.P2)
}

func (q QuadBez) Eval(t float64) Point {
	return Point{
		X: quadBez(q.P0.X, q.P1.X, q.P2.X, t),
		Y: quadBez(q.P0.Y, q.P1.Y, q.P2.Y, t),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) xAt(t float64) float64 {
	return quadBez(q.P0.X, q.P1.X, q.P2.X, t)
}

func (q QuadBez) dxAt(t float64) float64 {
	return quadBezDeriv(q.P0.X, q.P1.X, q.P2.X, t)
}

// SolveX returns the parameter t at which the curve's x coordinate equals x.
//
// The initial guess assumes that x is linearly distributed between the end
// points, and is refined with Newton-Raphson iteration. The result is only
// meaningful when x(t) is monotonic; see [QuadBez.MonotonicX].
func (q QuadBez) SolveX(x float64) (float64, bool) {
	t := (x - q.P0.X) / (q.P2.X - q.P0.X)
	return solveNewton(q, x, t)
}

// YAt returns the y coordinate of the curve at x. Failure to converge isn't
// reported; the best estimate of t is used.
func (q QuadBez) YAt(x float64) float64 {
	t, _ := q.SolveX(x)
	return quadBez(q.P0.Y, q.P1.Y, q.P2.Y, t)
}

// XExtrema returns the parameter values in (0, 1) at which x(t) has a
// stationary point.
func (q QuadBez) XExtrema() ([2]float64, int) {
	var out [2]float64
	var outN int
	d0 := q.P1.X - q.P0.X
	d1 := q.P2.X - q.P1.X
	dd := d1 - d0
	if dd != 0.0 {
		t := -d0 / dd
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	return out, outN
}

// MonotonicX reports whether x(t) is strictly monotonic, that is, whether the
// curve is a single-valued function of x.
func (q QuadBez) MonotonicX() bool {
	ex, n := q.XExtrema()
	return monotonic(q.dxAt, ex[:n])
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// quadBez evaluates one coordinate of a quadratic Bézier in Bernstein form.
func quadBez(p0, p1, p2, t float64) float64 {
	mt := 1.0 - t
	return p0*(mt*mt) + 2*p1*mt*t + p2*(t*t)
}

func quadBezDeriv(p0, p1, p2, t float64) float64 {
	return 2 * ((p1-p0)*(1.0-t) + (p2-p1)*t)
}
