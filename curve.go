package curve

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 4 to support cubic Béziers in the plane. If other curves are used,
// they should be subdivided to limit the number of extrema.
const MaxExtrema = 4

// MaxExtrema3 is the maximum number of extrema that can be reported by
// [Extremer3]: up to two per coordinate for cubic Béziers in space.
const MaxExtrema3 = 6

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

// Extremer describes parametrized plane curves that report their extrema.
type Extremer interface {
	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count.
	// At most four extrema can be reported, which is sufficient for
	// cubic Béziers.
	//
	// The extrema should be reported in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// Extremer3 describes parametrized space curves that report their extrema.
type Extremer3 interface {
	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count.
	// At most six extrema can be reported, which is sufficient for
	// cubic Béziers.
	Extrema() ([MaxExtrema3]float64, int)
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// curve in the range [0, 1].
func BoundingBox(c interface {
	Extremer
	Eval(t float64) Point
}) Rect {
	bbox := NewRectFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// BoundingBox3 returns the smallest axis-aligned box that encloses the curve
// in the range [0, 1].
func BoundingBox3(c interface {
	Extremer3
	Eval(t float64) Point3
}) Box3 {
	bbox := NewBox3FromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}
