package xpath

import (
	"fmt"
	"sort"
)

var _ Segment = CubicBez{}
var _ ParametricCurve = CubicBez{}
var _ XSolver = CubicBez{}

// CubicBez is a cubic Bézier segment. As a [Segment], it is evaluated by
// inverting x(t) with Newton-Raphson iteration.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez(%s, %s, %s, %s)", c.P0, c.P1, c.P2, c.P3)
}

func (c CubicBez) Eval(t float64) Point {
	return Point{
		X: cubicBez(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t),
		Y: cubicBez(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t),
	}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) xAt(t float64) float64 {
	return cubicBez(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t)
}

func (c CubicBez) dxAt(t float64) float64 {
	return cubicBezDeriv(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t)
}

// SolveX returns the parameter t at which the curve's x coordinate equals x.
//
// The initial guess assumes that x is linearly distributed between the end
// points, and is refined with Newton-Raphson iteration. The result is only
// meaningful when x(t) is monotonic; see [CubicBez.MonotonicX].
func (c CubicBez) SolveX(x float64) (float64, bool) {
	t := (x - c.P0.X) / (c.P3.X - c.P0.X)
	return solveNewton(c, x, t)
}

// YAt returns the y coordinate of the curve at x. Failure to converge isn't
// reported; the best estimate of t is used.
func (c CubicBez) YAt(x float64) float64 {
	t, _ := c.SolveX(x)
	return cubicBez(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t)
}

// XExtrema returns the parameter values in (0, 1), in increasing order, at
// which x(t) has a stationary point.
func (c CubicBez) XExtrema() ([2]float64, int) {
	var out [2]float64
	var outN int
	d0 := c.P1.X - c.P0.X
	d1 := c.P2.X - c.P1.X
	d2 := c.P3.X - c.P2.X
	a := d0 - 2*d1 + d2
	b := 2 * (d1 - d0)
	roots, n := SolveQuadratic(d0, b, a)
	for _, t := range roots[:n] {
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	sort.Float64s(out[:outN])
	return out, outN
}

// MonotonicX reports whether x(t) is strictly monotonic, that is, whether the
// curve is a single-valued function of x. Stationary points that don't
// reverse the direction of x, such as a horizontal tangent at an inflection,
// are allowed.
func (c CubicBez) MonotonicX() bool {
	ex, n := c.XExtrema()
	return monotonic(c.dxAt, ex[:n])
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// cubicBez evaluates one coordinate of a cubic Bézier in Bernstein form.
func cubicBez(p0, p1, p2, p3, t float64) float64 {
	mt := 1.0 - t
	return p0*(mt*mt*mt) + 3*p1*(mt*mt)*t + 3*p2*mt*(t*t) + p3*(t*t*t)
}

func cubicBezDeriv(p0, p1, p2, p3, t float64) float64 {
	mt := 1.0 - t
	return 3 * ((p1-p0)*(mt*mt) + 2*(p2-p1)*mt*t + (p3-p2)*(t*t))
}
