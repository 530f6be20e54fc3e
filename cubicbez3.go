package curve

import (
	"math"
	"sort"
)

var _ Extremer3 = CubicBez3{}

// minNormalEpsilon guards the supporting-plane test: when the squared plane
// normal is this small relative to the squared magnitudes of the difference
// vectors that produced it (i.e. sin² of the angle between them), the
// control triangle is too close to degenerate for a trustworthy projection
// and the per-edge minimum is used instead.
const minNormalEpsilon = 1e-18

// CubicBez3 is a cubic Bézier segment in three-dimensional space.
type CubicBez3 struct {
	P0 Point3
	P1 Point3
	P2 Point3
	P3 Point3
}

func (c CubicBez3) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez3) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (cb CubicBez3) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := Vec3(cb.P0).Mul(mt * mt * mt)
	b := Vec3(cb.P1).Mul(mt * mt * 3.0)
	c := Vec3(cb.P2).Mul(mt * 3.0)
	d := Vec3(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point3(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez3) Subdivide() (CubicBez3, CubicBez3) {
	pm := c.Eval(0.5)
	return CubicBez3{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point3(Vec3(c.P0).Add(Vec3(c.P1).Mul(2.0)).Add(Vec3(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez3{
			pm,
			Point3(Vec3(c.P1).Add(Vec3(c.P2).Mul(2.0)).Add(Vec3(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez3) Subsegment(t0, t1 float64) CubicBez3 {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec3(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec3(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez3{p0, p1, p2, p3}
}

// Differentiate returns the derivative of the cubic: a quadratic Bézier in
// vector space whose control points are the scaled edge vectors of the
// cubic's control polygon.
func (c CubicBez3) Differentiate() QuadBez3 {
	return QuadBez3{
		Point3(c.P1.Sub(c.P0).Mul(3)),
		Point3(c.P2.Sub(c.P1).Mul(3)),
		Point3(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez3) Translate(v Vec3) CubicBez3 {
	return CubicBez3{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicBez3) Start() Point3 {
	return c.P0
}

func (c CubicBez3) End() Point3 {
	return c.P3
}

func (c CubicBez3) Extrema() ([MaxExtrema3]float64, int) {
	// three calls to oneCoord, up to 2 roots per call, for a total of 6
	// possible values.
	var out [MaxExtrema3]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	oneCoord(d0.Z, d1.Z, d2.Z)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned box enclosing the segment.
func (c CubicBez3) BoundingBox() Box3 {
	return BoundingBox3(c)
}

// DerivativeMagnitudeBounds returns a tight interval bounding the magnitude
// of the segment's first derivative, |B′(t)|, over t ∈ [0, 1].
//
// Up to the factor 3, the derivative is a quadratic Bézier with control
// vectors d0, d1, d2, which always lie in a common plane with normal
// n = (d1−d0)×(d2−d1). The maximum magnitude is attained at one of the
// control vectors. For the minimum, the three triple products below are the
// projected orientation tests of the planar case; when all are strictly
// positive the origin projects into the control triangle and the minimum is
// the perpendicular distance from the origin to the supporting plane.
// Otherwise the nearest point lies on one of the triangle's edges.
//
// Note the identity d0×d1 + d1×d2 + d2×d0 = n, so the three triple products
// always sum to |n|²; "all strictly positive" is the spatial analog of the
// planar same-sign test.
func (c CubicBez3) DerivativeMagnitudeBounds() Interval {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	dd0 := d1.Sub(d0)
	dd1 := d2.Sub(d1)
	d0Hypot2 := d0.Hypot2()
	d1Hypot2 := d1.Hypot2()
	d2Hypot2 := d2.Hypot2()

	n := dd0.Cross(dd1)
	nHypot2 := n.Hypot2()
	area0 := d0.Cross(d1).Dot(n)
	area1 := d1.Cross(d2).Dot(n)
	area2 := d2.Cross(d0).Dot(n)

	var minDist float64
	if nHypot2 > minNormalEpsilon*dd0.Hypot2()*dd1.Hypot2() &&
		area0 > 0.0 && area1 > 0.0 && area2 > 0.0 {
		minDist = math.Abs(d0.Dot(n)) / math.Sqrt(nHypot2)
	} else {
		minDist = min(
			originDistanceToSegment3(d0, d1, d0Hypot2, d1Hypot2),
			originDistanceToSegment3(d1, d2, d1Hypot2, d2Hypot2),
			originDistanceToSegment3(d2, d0, d2Hypot2, d0Hypot2),
		)
	}
	return Interval{
		Min: 3.0 * minDist,
		Max: 3.0 * math.Sqrt(max(d0Hypot2, d1Hypot2, d2Hypot2)),
	}
}

// Arclen returns the arc length of the cubic Bézier segment.
//
// The result is within the given accuracy of the true length. The
// computation brackets the length with [CubicBez3.DerivativeMagnitudeBounds]
// and bisects until the bracket is narrow enough.
func (c CubicBez3) Arclen(accuracy float64) float64 {
	return arclenFromDerivativeBounds(c, accuracy, 0)
}
