package curve

import "math"

// originDistanceToSegment returns the distance from the origin to the segment
// from a to b. aHypot2 and bHypot2 must be the squared magnitudes of a and b,
// which all callers have at hand already.
//
// This is the classical three-case analysis: if the foot of the perpendicular
// from the origin falls beyond either endpoint, the nearest point is that
// endpoint; otherwise the distance is the height of the triangle (0, a, b)
// over the base b−a.
func originDistanceToSegment(a, b Vec2, aHypot2, bHypot2 float64) float64 {
	ab := b.Sub(a)
	abHypot2 := ab.Hypot2()
	switch {
	case abHypot2 == 0.0:
		// a and b coincide; the segment is a single point.
		return math.Sqrt(aHypot2)
	case aHypot2 >= bHypot2+abHypot2:
		return math.Sqrt(bHypot2)
	case bHypot2 >= aHypot2+abHypot2:
		return math.Sqrt(aHypot2)
	default:
		// |a × b| is twice the area of the triangle (0, a, b); dividing by
		// the base length gives its height.
		return math.Abs(a.Cross(b)) / math.Sqrt(abHypot2)
	}
}

// originDistanceToSegment3 is [originDistanceToSegment] in three dimensions.
func originDistanceToSegment3(a, b Vec3, aHypot2, bHypot2 float64) float64 {
	ab := b.Sub(a)
	abHypot2 := ab.Hypot2()
	switch {
	case abHypot2 == 0.0:
		return math.Sqrt(aHypot2)
	case aHypot2 >= bHypot2+abHypot2:
		return math.Sqrt(bHypot2)
	case bHypot2 >= aHypot2+abHypot2:
		return math.Sqrt(aHypot2)
	default:
		return math.Sqrt(a.Cross(b).Hypot2() / abHypot2)
	}
}

type derivativeBounded[C any] interface {
	DerivativeMagnitudeBounds() Interval
	Subdivide() (C, C)
}

// Halving a segment can at worst leave the bracket width unchanged, so cap
// the recursion depth in case a cusp sits exactly on the origin.
const maxArclenDepth = 24

// arclenFromDerivativeBounds computes arc length by recursive bisection.
//
// The arc length of a segment is the integral of its derivative magnitude
// over the unit interval, so the segment's derivative magnitude interval
// brackets it. The bracket width contracts under subdivision, and the
// midpoint of a sufficiently narrow bracket is within accuracy of the true
// length.
func arclenFromDerivativeBounds[C derivativeBounded[C]](c C, accuracy float64, depth int) float64 {
	bounds := c.DerivativeMagnitudeBounds()
	if bounds.Width() <= 2.0*accuracy || depth >= maxArclenDepth {
		return bounds.Midpoint()
	}
	c0, c1 := c.Subdivide()
	return arclenFromDerivativeBounds(c0, 0.5*accuracy, depth+1) +
		arclenFromDerivativeBounds(c1, 0.5*accuracy, depth+1)
}
