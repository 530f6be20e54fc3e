package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{Pt(0.0, 0.0), Pt(0.5, 0.0), Pt(1.0, 1.0)}
	assertNear(t, Pt(0.0, 0.0), q.Eval(0.0), 1e-12)
	assertNear(t, Pt(0.5, 0.25), q.Eval(0.5), 1e-12)
	assertNear(t, Pt(1.0, 1.0), q.Eval(1.0), 1e-12)
}

func TestQuadBezDifferentiate(t *testing.T) {
	// Central differences are exact for quadratics up to rounding.
	const h = 1e-6
	rng := newRand()
	for range 16 {
		q := randQuadBez(rng)
		d := q.Differentiate()
		for _, ts := range sampleTs[1 : len(sampleTs)-1] {
			want := q.Eval(ts + h).Sub(q.Eval(ts - h)).Mul(1.0 / (2.0 * h))
			got := Vec2(d.Eval(ts))
			if want.Sub(got).Hypot() > 1e-6 {
				t.Fatalf("derivative at t=%g: got %v, want %v", ts, got, want)
			}
		}
	}
}

func TestQuadBezSubdivide(t *testing.T) {
	rng := newRand()
	for range 16 {
		q := randQuadBez(rng)
		q0, q1 := q.Subdivide()
		assertNear(t, q.Eval(0.0), q0.Eval(0.0), 1e-12)
		assertNear(t, q.Eval(0.25), q0.Eval(0.5), 1e-12)
		assertNear(t, q.Eval(0.5), q0.Eval(1.0), 1e-12)
		assertNear(t, q.Eval(0.5), q1.Eval(0.0), 1e-12)
		assertNear(t, q.Eval(0.75), q1.Eval(0.5), 1e-12)
		assertNear(t, q.Eval(1.0), q1.Eval(1.0), 1e-12)
	}
}

func TestQuadBezSubsegment(t *testing.T) {
	rng := newRand()
	for range 16 {
		q := randQuadBez(rng)
		t0, t1 := 0.25, 0.75
		sub := q.Subsegment(t0, t1)
		for _, u := range sampleTs {
			assertNear(t, q.Eval(t0+(t1-t0)*u), sub.Eval(u), 1e-11)
		}
	}
}

func TestQuadBezRaise(t *testing.T) {
	rng := newRand()
	for range 16 {
		q := randQuadBez(rng)
		c := q.Raise()
		for _, ts := range sampleTs {
			assertNear(t, q.Eval(ts), c.Eval(ts), 1e-11)
		}

		// Raising the order must not shrink the derivative magnitude range.
		qb := q.DerivativeMagnitudeBounds()
		cb := c.DerivativeMagnitudeBounds()
		tolerance := 1e-9 * (1.0 + qb.Max)
		if cb.Min > qb.Min+tolerance || cb.Max < qb.Max-tolerance {
			t.Fatalf("raised bounds %v do not cover %v", cb, qb)
		}
	}
}

func TestQuadBezExtrema(t *testing.T) {
	q := QuadBez{Pt(-1.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 0.0)}
	ex, n := q.Extrema()
	diff(t, []float64{0.5}, ex[:n])
}

func TestQuadBezBoundingBox(t *testing.T) {
	q := QuadBez{Pt(-1.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 0.0)}
	diff(t, Rect{-1.0, 0.0, 1.0, 0.5}, q.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))
}

func TestQuadBezArclen(t *testing.T) {
	// The parabola y = x² from (0,0) to (1,1) has a closed-form length.
	q := QuadBez{Pt(0.0, 0.0), Pt(0.5, 0.0), Pt(1.0, 1.0)}
	want := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for _, accuracy := range []float64{1e-3, 1e-4, 1e-5} {
		got := q.Arclen(accuracy)
		if math.Abs(got-want) > accuracy {
			t.Errorf("accuracy %g: got %g, want %g", accuracy, got, want)
		}
	}
}

func TestQuadBezArclenQuadrature(t *testing.T) {
	curves := []QuadBez{
		{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)},
		{Pt(0.0, 0.0), Pt(1.0, 1.01), Pt(2.0, 2.0)},
	}
	for _, q := range curves {
		d := q.Differentiate()
		want := quad.Fixed(func(ts float64) float64 {
			return Vec2(d.Eval(ts)).Hypot()
		}, 0, 1, 300, nil, 0)
		got := q.Arclen(1e-4)
		if math.Abs(got-want) > 2e-4 {
			t.Errorf("%v: got %g, want %g", q, got, want)
		}
	}
}

func TestQuadBezArclenDegenerate(t *testing.T) {
	p := Pt(1.5, -2.5)
	if got := (QuadBez{p, p, p}).Arclen(1e-9); got != 0.0 {
		t.Errorf("got %g, want 0", got)
	}
}
