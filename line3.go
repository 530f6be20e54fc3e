package curve

// Line3 represents a line segment in three-dimensional space.
type Line3 struct {
	P0 Point3
	P1 Point3
}

// Length returns the length of the line.
func (l Line3) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line.
func (l Line3) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line3) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line3) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line3) Translate(v Vec3) Line3 {
	return Line3{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line3) Eval(t float64) Point3 {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the nearest point on the
// line, along with the parameter of that point.
func (l Line3) Nearest(pt Point3) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line3) Start() Point3 { return l.P0 }
func (l Line3) End() Point3   { return l.P1 }

func (l Line3) Subsegment(start, end float64) Line3 {
	return Line3{l.Eval(start), l.Eval(end)}
}

func (l Line3) Subdivide() (Line3, Line3) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

func (l Line3) Extrema() ([MaxExtrema3]float64, int) {
	return [MaxExtrema3]float64{}, 0
}

func (l Line3) BoundingBox() Box3 {
	return NewBox3FromPoints(l.P0, l.P1)
}
