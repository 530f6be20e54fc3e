// Package curve provides primitives for quadratic and cubic Bézier segments
// in two and three dimensions, built around exact interval bounds on the
// magnitude of a segment's first derivative.
//
// # Derivative magnitude bounds
//
// The central operation is DerivativeMagnitudeBounds, available on [QuadBez],
// [CubicBez], [QuadBez3], and [CubicBez3]. Given only the control points of a
// segment, it returns a tight closed-form [Interval] containing |B′(t)| for
// all t ∈ [0, 1]. For quadratics the bounds are exact; for cubics the maximum
// is the largest control vector magnitude of the derivative and the minimum
// is found by point-to-segment distance or, when the derivative's control
// polygon encloses the origin, by containment analysis.
//
// Callers such as arc length computation, adaptive flattening, and Newton
// step sizing use the returned interval to decide subdivision depth or
// numerical step size. [QuadBez.Arclen] and its siblings demonstrate the
// pattern: since arc length is the integral of the derivative magnitude over
// the unit interval, the interval is itself an arc length bracket, and
// bisection narrows it to any desired accuracy.
//
// All operations are pure functions of their inputs. No type in this package
// has identity or mutable state, and any number of calls may run in parallel
// without coordination.
//
// # Value types
//
// [Point] and [Vec2] represent locations and displacements in the plane;
// [Point3] and [Vec3] are their three-dimensional counterparts. The curve
// types store their control points directly and provide evaluation,
// subdivision, differentiation, and extrema in both dimensions, along with
// axis-aligned bounds ([Rect] and [Box3]).
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Real-Time Collision Detection] by Christer Ericson (closest-point and
//     orientation tests)
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Real-Time Collision Detection]: https://realtimecollisiondetection.net/
package curve
