package xpath

import (
	"fmt"
	"math"
	"slices"
)

// NewtonTolerance is the step size below which the Newton-Raphson inversion
// of x(t) is considered converged.
const NewtonTolerance = 1e-11

// NewtonMaxIterations caps the number of Newton-Raphson steps taken when
// inverting x(t). When the cap is reached, the current estimate is used as is.
const NewtonMaxIterations = 20

// Segment describes one piece of a [XPath]: a function y(x).
//
// Segments are defined over the interval between two knots, but they must be
// able to evaluate any x, as paths extrapolate with their first and last
// segments.
type Segment interface {
	// YAt returns the y coordinate of the segment at x.
	YAt(x float64) float64
}

// ParametricCurve describes a curve parametrized by a scalar t ∈ [0, 1].
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	Start() Point
	End() Point
}

// XSolver is implemented by segments that can invert x(t).
type XSolver interface {
	// SolveX returns the parameter t at which the curve's x coordinate equals
	// x, and whether the solver converged.
	SolveX(x float64) (t float64, converged bool)
}

var _ Segment = Func(nil)

// Func adapts an ordinary function to a [Segment].
type Func func(x float64) float64

// YAt returns f(x).
func (f Func) YAt(x float64) float64 {
	return f(x)
}

func (f Func) String() string {
	return fmt.Sprintf("Func(%p)", f)
}

// xCurve is the x coordinate of a parametric curve and its derivative.
type xCurve interface {
	xAt(t float64) float64
	dxAt(t float64) float64
}

// solveNewton finds t such that c.xAt(t) == x, starting from the guess t.
//
// The iteration stops once a step is no larger than [NewtonTolerance], or
// after [NewtonMaxIterations] steps. A NaN step also stops it; the estimate is
// returned either way.
func solveNewton(c xCurve, x, t float64) (float64, bool) {
	dt := -(c.xAt(t) - x) / c.dxAt(t)
	for i := 0; math.Abs(dt) > NewtonTolerance && i < NewtonMaxIterations; i++ {
		t += dt
		dt = -(c.xAt(t) - x) / c.dxAt(t)
	}
	return t, math.Abs(dt) <= NewtonTolerance
}

// monotonic reports whether a coordinate is strictly monotonic over [0, 1],
// given its derivative and the candidate stationary points of the derivative.
//
// The derivative has no zeros between consecutive candidates, so its sign on
// each such interval is the sign at the interval's midpoint.
func monotonic(deriv func(t float64) float64, stationary []float64) bool {
	ts := []float64{0}
	for _, t := range stationary {
		if t > 0.0 && t < 1.0 {
			ts = append(ts, t)
		}
	}
	ts = append(ts, 1)
	slices.Sort(ts)

	var sign float64
	for i := range len(ts) - 1 {
		if ts[i] == ts[i+1] {
			continue
		}
		d := deriv(0.5 * (ts[i] + ts[i+1]))
		if d == 0 || math.IsNaN(d) {
			return false
		}
		s := math.Copysign(1, d)
		if sign != 0 && s != sign {
			return false
		}
		sign = s
	}
	return sign != 0
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}
