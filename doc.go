// Package xpath provides segmented functions y(x) built from lines and
// Bézier curves. It was designed to describe wall contours and similar
// profiles for the geometry layer of flow solvers, where a boundary is
// conveniently drawn with a few Béziers but has to be queried as a function
// of x.
//
// # Paths
//
// An [XPath] is an ordered sequence of segments, joined at knots. Paths are
// built like Bézier paths in graphics APIs: [XPath.MoveTo] sets the starting
// point and [XPath.LineTo], [XPath.QuadTo] and [XPath.CubicTo] each append a
// segment that starts where the previous one ended. Alternatively, [New]
// assembles a path from a list of knots and arbitrary [Segment] values, and
// [FromElements] converts a sequence of [PathElement] values.
//
// [XPath.YAt] evaluates the path. It finds the segment containing x with a
// linear scan over the knots and evaluates that segment. Outside of the range
// of knots, the nearest segment is extrapolated.
//
// # Segments
//
// The package includes the following segments:
//   - [Line]
//   - [QuadBez]
//   - [CubicBez]
//   - [Func], which adapts an ordinary function
//
// Béziers are parametric curves, so evaluating them at x requires finding the
// parameter t for which x(t) = x. This is done with Newton-Raphson iteration,
// starting from the guess that x is linearly distributed along the curve. The
// iteration stops once the step size drops to [NewtonTolerance] or after
// [NewtonMaxIterations] steps. Failing to converge isn't treated as an error;
// [XSolver.SolveX] reports convergence for callers that care.
//
// # Monotonicity
//
// Evaluation assumes that knots increase in x and that every segment is a
// single-valued function of x, i.e. that x(t) is monotonic. These assumptions
// aren't checked when building paths, as paths are frequently built from
// trusted, hand-written control points. [XPath.Validate] checks them on
// request.
package xpath
