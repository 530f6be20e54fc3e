package curve

import (
	"math"
	"testing"
)

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(2.0, 0.0)}
	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(1.0, 1.0), 1.0, 0.5},
		{Pt(-1.0, 1.0), 2.0, 0.0},
		{Pt(3.0, 1.0), 2.0, 1.0},
		{Pt(0.5, 0.0), 0.0, 0.25},
	}
	for _, tc := range tests {
		distSq, ts := l.Nearest(tc.pt)
		if distSq != tc.distSq || ts != tc.t {
			t.Errorf("Nearest(%v) = (%g, %g), want (%g, %g)",
				tc.pt, distSq, ts, tc.distSq, tc.t)
		}
	}
}

func TestLine3Nearest(t *testing.T) {
	l := Line3{Pt3(0.0, 0.0, 0.0), Pt3(2.0, 0.0, 0.0)}
	tests := []struct {
		pt     Point3
		distSq float64
		t      float64
	}{
		{Pt3(1.0, 1.0, 1.0), 2.0, 0.5},
		{Pt3(-1.0, 1.0, 0.0), 2.0, 0.0},
		{Pt3(3.0, 0.0, 1.0), 2.0, 1.0},
	}
	for _, tc := range tests {
		distSq, ts := l.Nearest(tc.pt)
		if distSq != tc.distSq || ts != tc.t {
			t.Errorf("Nearest(%v) = (%g, %g), want (%g, %g)",
				tc.pt, distSq, ts, tc.distSq, tc.t)
		}
	}
}

func TestLineEval(t *testing.T) {
	l := Line{Pt(1.0, 2.0), Pt(3.0, 6.0)}
	assertNear(t, Pt(1.0, 2.0), l.Eval(0.0), 1e-12)
	assertNear(t, Pt(2.0, 4.0), l.Eval(0.5), 1e-12)
	assertNear(t, Pt(3.0, 6.0), l.Eval(1.0), 1e-12)

	l3 := Line3{Pt3(1.0, 2.0, 3.0), Pt3(3.0, 6.0, 9.0)}
	assertNear3(t, Pt3(2.0, 4.0, 6.0), l3.Eval(0.5), 1e-12)
}

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(3.0, 4.0)}
	diff(t, 5.0, l.Length())
	diff(t, 5.0, l.Arclen(1e-9))

	l3 := Line3{Pt3(0.0, 0.0, 0.0), Pt3(2.0, 3.0, 6.0)}
	diff(t, 7.0, l3.Length())
	diff(t, 7.0, l3.Arclen(1e-9))
}

func TestLineSubsegment(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(4.0, 8.0)}
	diff(t, Line{Pt(1.0, 2.0), Pt(3.0, 6.0)}, l.Subsegment(0.25, 0.75))

	l0, l1 := l.Subdivide()
	diff(t, Line{Pt(0.0, 0.0), Pt(2.0, 4.0)}, l0)
	diff(t, Line{Pt(2.0, 4.0), Pt(4.0, 8.0)}, l1)
}

func TestLineBoundingBox(t *testing.T) {
	l := Line{Pt(3.0, -1.0), Pt(1.0, 2.0)}
	diff(t, Rect{1.0, -1.0, 3.0, 2.0}, l.BoundingBox())

	l3 := Line3{Pt3(3.0, -1.0, 5.0), Pt3(1.0, 2.0, 4.0)}
	diff(t, Box3{1.0, -1.0, 4.0, 3.0, 2.0, 5.0}, l3.BoundingBox())
}

func TestLineIsNaN(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, math.NaN())}
	if !l.IsNaN() {
		t.Error("expected NaN line")
	}
	l3 := Line3{Pt3(0.0, 0.0, math.Inf(1)), Pt3(1.0, 1.0, 1.0)}
	if !l3.IsInf() {
		t.Error("expected infinite line")
	}
}
