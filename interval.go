package curve

import (
	"fmt"
	"math"
)

// Interval is a closed range [Min, Max] of scalar values.
//
// Intervals returned by the DerivativeMagnitudeBounds methods bound a vector
// magnitude and thus satisfy 0 ≤ Min ≤ Max.
type Interval struct {
	Min float64
	Max float64
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Min, iv.Max)
}

// Width returns Max − Min.
func (iv Interval) Width() float64 {
	return iv.Max - iv.Min
}

// Midpoint returns the value halfway between Min and Max.
func (iv Interval) Midpoint() float64 {
	return 0.5 * (iv.Min + iv.Max)
}

// Contains reports whether v lies within the interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Min && v <= iv.Max
}

// IsInf reports whether at least one of the bounds is infinite.
func (iv Interval) IsInf() bool {
	return math.IsInf(iv.Min, 0) || math.IsInf(iv.Max, 0)
}

// IsNaN reports whether at least one of the bounds is NaN.
func (iv Interval) IsNaN() bool {
	return math.IsNaN(iv.Min) || math.IsNaN(iv.Max)
}
