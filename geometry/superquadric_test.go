package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestSuperquadricConstructionRejectsDegenerate(t *testing.T) {
	_, err := NewSuperquadric(0, 1, 1, 1, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewSuperquadric(1, 1, 1, 3, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSuperquadricContains(t *testing.T) {
	s, err := NewSuperquadric(2, 1, 1, 1, 1, r3.Vector{X: 1}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldBeNil)

	test.That(t, s.Contains(r3.Vector{X: 1}), test.ShouldBeTrue)
	test.That(t, s.Contains(r3.Vector{X: 2.5}), test.ShouldBeTrue)
	test.That(t, s.Contains(r3.Vector{X: 100}), test.ShouldBeFalse)
}

func TestSuperquadricMinkowskiSum3D(t *testing.T) {
	target, err := NewSuperquadric(5, 5, 5, 1, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldBeNil)
	robot, err := NewSuperquadric(1, 1, 1, 1, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldBeNil)

	inflated, err := target.MinkowskiSum3D(robot, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, inflated.A0, test.ShouldAlmostEqual, 6.0)

	shrunk, err := target.MinkowskiSum3D(robot, -1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, shrunk.A0, test.ShouldAlmostEqual, 4.0)
}
