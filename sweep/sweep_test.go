package sweep

import (
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

// square2D returns an axis-aligned square (as a closed, parameter-ordered polygon)
// centered at (cx, cy) with half-width r.
func square2D(cx, cy, r float64) *mat.Dense {
	pts := [][2]float64{
		{cx - r, cy - r},
		{cx + r, cy - r},
		{cx + r, cy + r},
		{cx - r, cy + r},
	}
	m := mat.NewDense(2, len(pts), nil)
	for j, p := range pts {
		m.Set(0, j, p[0])
		m.Set(1, j, p[1])
	}
	return m
}

func TestDecompose2DFreeIntervalAvoidsObstacle(t *testing.T) {
	arena := square2D(0, 0, 10)
	obstacle := square2D(0, 0, 2)

	fs, err := Decompose2D(Wrap([]*mat.Dense{arena}), Wrap([]*mat.Dense{obstacle}), 21)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(fs.Y), test.ShouldEqual, 21)

	// The middle sweep line (y=0) passes through the obstacle, so it must
	// produce two free intervals: left of the obstacle and right of it.
	midIdx := 10
	test.That(t, len(fs.XL[midIdx]), test.ShouldEqual, 2)
	test.That(t, fs.XU[midIdx][0], test.ShouldBeLessThanOrEqualTo, -2.0)
	test.That(t, fs.XL[midIdx][1], test.ShouldBeGreaterThanOrEqualTo, 2.0)
}

func TestDecompose2DRejectsNoArena(t *testing.T) {
	_, err := Decompose2D(nil, nil, 5)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestEnhanceKeepsLinesSorted(t *testing.T) {
	arena := square2D(0, 0, 10)
	obstacle := square2D(3, 0, 1)

	fs, err := Decompose2D(Wrap([]*mat.Dense{arena}), Wrap([]*mat.Dense{obstacle}), 11)
	test.That(t, err, test.ShouldBeNil)

	Enhance(fs)
	for _, line := range fs.XL {
		for i := 1; i < len(line); i++ {
			test.That(t, line[i-1], test.ShouldBeLessThanOrEqualTo, line[i])
		}
	}
}
