// Package geom provides the 2D geometry behind the curve editor: points and
// vectors, lines and cubic Béziers, Bézier paths, and arc length
// parameterization.
//
// # Interpolation
//
// [Basis] turns an ordered list of control points into a smooth path using a
// uniform cubic B-spline. The resulting path starts at the first point and ends
// at the last; interior points pull on the curve without lying on it.
//
// # Arc length
//
// Positions along a curve are specified by distance traveled, not by curve
// parameter, so that evenly spaced samples are evenly spaced on screen.
// [CubicBez.Arclen] measures lengths with adaptive Legendre-Gauss quadrature
// and [CubicBez.SolveForArclen] inverts that measurement with the
// [ITP method]. [Path] combines the two over a whole [BezPath]: it caches
// per-segment lengths and answers [Path.PointAtLength] queries, the same
// contract as SVG's getTotalLength and getPointAtLength.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
package geom
