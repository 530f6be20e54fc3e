package curve

import (
	"math"
	"sort"
)

var _ Extremer3 = QuadBez3{}

// QuadBez3 is a quadratic Bézier segment in three-dimensional space.
type QuadBez3 struct {
	P0 Point3
	P1 Point3
	P2 Point3
}

func (q QuadBez3) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez3) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez3) Raise() CubicBez3 {
	return CubicBez3{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez3) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point3(a.Add(d.Mul(t)))
}

func (q QuadBez3) Subdivide() (QuadBez3, QuadBez3) {
	pm := q.Eval(0.5)
	return QuadBez3{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez3{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez3) Subsegment(t0 float64, t1 float64) QuadBez3 {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez3{p0, p1, p2}
}

// Differentiate returns the derivative of the quadratic: a straight segment
// in vector space, represented as a [Line3].
func (q QuadBez3) Differentiate() Line3 {
	return Line3{
		Point3(q.P1.Sub(q.P0).Mul(2)),
		Point3(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez3) Translate(v Vec3) QuadBez3 {
	return QuadBez3{
		P0: q.P0.Translate(v),
		P1: q.P1.Translate(v),
		P2: q.P2.Translate(v),
	}
}

func (q QuadBez3) Start() Point3 {
	return q.P0
}

func (q QuadBez3) End() Point3 {
	return q.P2
}

func (q QuadBez3) Extrema() ([MaxExtrema3]float64, int) {
	// One root per coordinate, as the derivative is linear in each.
	var out [MaxExtrema3]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	oneCoord := func(d, ddc float64) {
		if ddc != 0.0 {
			t := -d / ddc
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}
	oneCoord(d0.X, dd.X)
	oneCoord(d0.Y, dd.Y)
	oneCoord(d0.Z, dd.Z)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned box enclosing the segment.
func (q QuadBez3) BoundingBox() Box3 {
	return BoundingBox3(q)
}

// DerivativeMagnitudeBounds returns the exact range of the magnitude of the
// segment's first derivative, |B′(t)|, over t ∈ [0, 1].
//
// The derivative is a straight segment in vector space from 2(P1−P0) to
// 2(P2−P1), just as in the planar case; the distance from the origin to a
// segment is a one-dimensional problem regardless of the ambient dimension.
func (q QuadBez3) DerivativeMagnitudeBounds() Interval {
	a := q.P1.Sub(q.P0)
	b := q.P2.Sub(q.P1)
	aHypot2 := a.Hypot2()
	bHypot2 := b.Hypot2()
	return Interval{
		Min: 2.0 * originDistanceToSegment3(a, b, aHypot2, bHypot2),
		Max: 2.0 * math.Sqrt(max(aHypot2, bHypot2)),
	}
}

// Arclen returns the arc length of the quadratic Bézier segment.
//
// The result is within the given accuracy of the true length. The
// computation brackets the length with [QuadBez3.DerivativeMagnitudeBounds]
// and bisects until the bracket is narrow enough.
func (q QuadBez3) Arclen(accuracy float64) float64 {
	return arclenFromDerivativeBounds(q, accuracy, 0)
}
