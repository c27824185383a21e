package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestIntersectLineTriangle(t *testing.T) {
	t0 := [3]float64{0, 0, 0}
	u := [3]float64{1, 0, 0}
	v := [3]float64{0, 1, 0}

	// Vertical line through the triangle's interior hits z=0 at (0.25,0.25,0).
	pt, ok := IntersectLineTriangle([3]float64{0.25, 0.25, 5}, [3]float64{0, 0, -1}, t0, u, v)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, pt[2], test.ShouldAlmostEqual, 0.0, 1e-9)

	// A line that misses the triangle entirely.
	_, ok = IntersectLineTriangle([3]float64{5, 5, 5}, [3]float64{0, 0, -1}, t0, u, v)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestIntersectHorizontalLinePolygon(t *testing.T) {
	square := [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	xs := IntersectHorizontalLinePolygon(0, square)
	test.That(t, len(xs), test.ShouldEqual, 2)
}
