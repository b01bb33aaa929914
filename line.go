package xpath

import (
	"fmt"
	"math"
)

// Line represents a line segment. As a [Segment], it is the affine function
// through its two points.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

var _ Segment = Line{}
var _ ParametricCurve = Line{}
var _ XSolver = Line{}

func (l Line) String() string {
	return fmt.Sprintf("Line(%s, %s)", l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// YAt returns the y coordinate of the line at x. Values of x outside of the
// line's extent are extrapolated.
func (l Line) YAt(x float64) float64 {
	frac := (x - l.P0.X) / (l.P1.X - l.P0.X)
	return l.P0.Y*(1.0-frac) + l.P1.Y*frac
}

// SolveX returns the parameter at which the line reaches x. It doesn't need to
// iterate and only fails to converge for vertical lines.
func (l Line) SolveX(x float64) (float64, bool) {
	t := (x - l.P0.X) / (l.P1.X - l.P0.X)
	return t, !math.IsNaN(t) && !math.IsInf(t, 0)
}

// MonotonicX reports whether x strictly increases or decreases along the line.
func (l Line) MonotonicX() bool {
	return l.P0.X != l.P1.X
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
