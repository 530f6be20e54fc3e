package curve

import "math"

var _ Extremer = QuadBez{}

// QuadBez is a quadratic Bézier segment in the plane.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Differentiate returns the derivative of the quadratic: a straight segment
// in vector space, represented as a [Line].
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Translate(v Vec2) QuadBez {
	return QuadBez{
		P0: q.P0.Translate(v),
		P1: q.P1.Translate(v),
		P2: q.P2.Translate(v),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.

	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// segment.
func (q QuadBez) BoundingBox() Rect {
	return BoundingBox(q)
}

// DerivativeMagnitudeBounds returns the exact range of the magnitude of the
// segment's first derivative, |B′(t)|, over t ∈ [0, 1].
//
// The derivative of a quadratic Bézier is a straight segment in vector space
// from 2(P1−P0) to 2(P2−P1). Its magnitude is the distance from the origin to
// a point sliding along that segment, a convex function of t, so the maximum
// is attained at an endpoint and the minimum is the point-to-segment distance
// from the origin.
func (q QuadBez) DerivativeMagnitudeBounds() Interval {
	a := q.P1.Sub(q.P0)
	b := q.P2.Sub(q.P1)
	aHypot2 := a.Hypot2()
	bHypot2 := b.Hypot2()
	return Interval{
		Min: 2.0 * originDistanceToSegment(a, b, aHypot2, bHypot2),
		Max: 2.0 * math.Sqrt(max(aHypot2, bHypot2)),
	}
}

// Arclen returns the arc length of the quadratic Bézier segment.
//
// The result is within the given accuracy of the true length. The
// computation brackets the length with [QuadBez.DerivativeMagnitudeBounds]
// and bisects until the bracket is narrow enough.
func (q QuadBez) Arclen(accuracy float64) float64 {
	return arclenFromDerivativeBounds(q, accuracy, 0)
}
