package curve

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got Point, epsilon float64) {
	t.Helper()
	if d := want.Distance(got); d > epsilon {
		t.Errorf("got %v, want %v (distance %g > %g)", got, want, d, epsilon)
	}
}

func assertNear3(t *testing.T, want, got Point3, epsilon float64) {
	t.Helper()
	if d := want.Distance(got); d > epsilon {
		t.Errorf("got %v, want %v (distance %g > %g)", got, want, d, epsilon)
	}
}

// newRand returns a deterministic source so that failures are reproducible.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xcafe))
}

func randCoord(rng *rand.Rand) float64 {
	return rng.Float64()*20.0 - 10.0
}

func randPoint(rng *rand.Rand) Point {
	return Pt(randCoord(rng), randCoord(rng))
}

func randPoint3(rng *rand.Rand) Point3 {
	return Pt3(randCoord(rng), randCoord(rng), randCoord(rng))
}

func randQuadBez(rng *rand.Rand) QuadBez {
	return QuadBez{randPoint(rng), randPoint(rng), randPoint(rng)}
}

func randCubicBez(rng *rand.Rand) CubicBez {
	return CubicBez{randPoint(rng), randPoint(rng), randPoint(rng), randPoint(rng)}
}

func randQuadBez3(rng *rand.Rand) QuadBez3 {
	return QuadBez3{randPoint3(rng), randPoint3(rng), randPoint3(rng)}
}

func randCubicBez3(rng *rand.Rand) CubicBez3 {
	return CubicBez3{randPoint3(rng), randPoint3(rng), randPoint3(rng), randPoint3(rng)}
}
