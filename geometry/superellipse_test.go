package geometry

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestSuperellipseSurfaceDeterministic(t *testing.T) {
	// Resampling with the same N twice produces identical matrices: Surface
	// is a pure function of the shape's parameters (spec round-trip
	// property).
	s, err := NewSuperellipse(2, 1, 1, r2.Point{X: 1, Y: -1}, 0.3)
	test.That(t, err, test.ShouldBeNil)

	m1 := s.Surface(16)
	m2 := s.Surface(16)
	test.That(t, mat.Equal(m1, m2), test.ShouldBeTrue)
}

func TestSuperellipseConstructionRejectsDegenerate(t *testing.T) {
	_, err := NewSuperellipse(0, 1, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewSuperellipse(1, 1, 3, r2.Point{}, 0)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestMinkowskiSum2DInflateAndShrink(t *testing.T) {
	target, err := NewSuperellipse(5, 5, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldBeNil)
	robot, err := NewSuperellipse(1, 0.5, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldBeNil)

	inflated, err := target.MinkowskiSum2D(robot, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, inflated.A0, test.ShouldAlmostEqual, 6.0)

	shrunk, err := target.MinkowskiSum2D(robot, -1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, shrunk.A0, test.ShouldAlmostEqual, 4.0)
}

func TestSuperellipseContains(t *testing.T) {
	s, err := NewSuperellipse(2, 1, 1, r2.Point{X: 1, Y: 1}, 0)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, s.Contains(r2.Point{X: 1, Y: 1}), test.ShouldBeTrue)
	test.That(t, s.Contains(r2.Point{X: 1, Y: 1.5}), test.ShouldBeTrue)
	test.That(t, s.Contains(r2.Point{X: 100, Y: 100}), test.ShouldBeFalse)
}
