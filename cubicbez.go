package curve

import (
	"math"
	"sort"
)

var _ Extremer = CubicBez{}

// CubicBez is a cubic Bézier segment in the plane.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the derivative of the cubic: a quadratic Bézier in
// vector space whose control points are the scaled edge vectors of the
// cubic's control polygon.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
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
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// segment.
func (c CubicBez) BoundingBox() Rect {
	return BoundingBox(c)
}

// DerivativeMagnitudeBounds returns a tight interval bounding the magnitude
// of the segment's first derivative, |B′(t)|, over t ∈ [0, 1].
//
// Up to the factor 3, the derivative is a quadratic Bézier whose control
// points are the edge vectors d0, d1, d2 of the control polygon. The maximum
// magnitude is attained at one of those control vectors. For the minimum, the
// signs of the three orientation tests below tell whether the origin lies
// inside the triangle (d0, d1, d2); if it does, the derivative's hull
// surrounds the origin and the magnitude reaches zero. Otherwise the nearest
// point lies on one of the triangle's edges.
func (c CubicBez) DerivativeMagnitudeBounds() Interval {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	dd0 := d1.Sub(d0)
	dd1 := d2.Sub(d1)
	dd2 := d0.Sub(d2)
	d0Hypot2 := d0.Hypot2()
	d1Hypot2 := d1.Hypot2()
	d2Hypot2 := d2.Hypot2()

	// Twice the signed areas of the triangles (0, d1, d2), (0, d2, d0), and
	// (0, d0, d1).
	area0 := d1.Cross(dd1)
	area1 := d2.Cross(dd2)
	area2 := d0.Cross(dd0)

	var minDist float64
	degenerate := area0 == 0.0 && area1 == 0.0 && area2 == 0.0
	if !degenerate &&
		((area0 >= 0.0 && area1 >= 0.0 && area2 >= 0.0) ||
			(area0 <= 0.0 && area1 <= 0.0 && area2 <= 0.0)) {
		// The origin is inside the triangle, or on its boundary.
		minDist = 0.0
	} else {
		// A collinear control polygon degenerates the triangle to a
		// segment; the per-edge distances then give the exact minimum.
		minDist = min(
			originDistanceToSegment(d0, d1, d0Hypot2, d1Hypot2),
			originDistanceToSegment(d1, d2, d1Hypot2, d2Hypot2),
			originDistanceToSegment(d2, d0, d2Hypot2, d0Hypot2),
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
// computation brackets the length with [CubicBez.DerivativeMagnitudeBounds]
// and bisects until the bracket is narrow enough.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return arclenFromDerivativeBounds(c, accuracy, 0)
}
