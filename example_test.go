package curve_test

import (
	"fmt"

	curve "github.com/ianmackenzie/elm-geometry-sub014"
)

func ExampleQuadBez_DerivativeMagnitudeBounds() {
	q := curve.QuadBez{
		P0: curve.Pt(0, 0),
		P1: curve.Pt(3, 4),
		P2: curve.Pt(9, 12),
	}
	fmt.Println(q.DerivativeMagnitudeBounds())
	// Output: [10, 20]
}

func ExampleCubicBez_DerivativeMagnitudeBounds() {
	// Unevenly spaced points on a line: the speed falls from 9 to 3.
	c := curve.CubicBez{
		P0: curve.Pt(0, 0),
		P1: curve.Pt(3, 0),
		P2: curve.Pt(5, 0),
		P3: curve.Pt(6, 0),
	}
	fmt.Println(c.DerivativeMagnitudeBounds())
	// Output: [3, 9]
}

func ExampleCubicBez_Arclen() {
	c := curve.CubicBez{
		P0: curve.Pt(0, 0),
		P1: curve.Pt(1.0/3.0, 0),
		P2: curve.Pt(2.0/3.0, 1.0/3.0),
		P3: curve.Pt(1, 1),
	}
	fmt.Printf("%.4f\n", c.Arclen(1e-6))
	// Output: 1.4789
}

func ExampleQuadBez3_DerivativeMagnitudeBounds() {
	q := curve.QuadBez3{
		P0: curve.Pt3(0, 0, 0),
		P1: curve.Pt3(3, 0, 4),
		P2: curve.Pt3(9, 0, 12),
	}
	fmt.Println(q.DerivativeMagnitudeBounds())
	// Output: [10, 20]
}
