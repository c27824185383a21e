package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.viam.com/test"
)

func TestMVCE3DIdentity(t *testing.T) {
	// MVCE(a, a, q, q) should return the input ellipsoid up to numerical
	// tolerance (spec round-trip property).
	a := [3]float64{1, 1, 1}
	id := mgl64.QuatIdent()
	result := MVCE3D(a, a, id, id)

	test.That(t, result.A0, test.ShouldAlmostEqual, 1.0, 1e-6)
	test.That(t, result.A1, test.ShouldAlmostEqual, 1.0, 1e-6)
	test.That(t, result.A2, test.ShouldAlmostEqual, 1.0, 1e-6)
}

func TestMVCE2DContainsBoth(t *testing.T) {
	a := [2]float64{1, 0.5}
	b := [2]float64{1, 0.5}
	result := MVCE2D(a, b, 0, 0)

	test.That(t, result.A0, test.ShouldAlmostEqual, 1.0, 1e-6)
	test.That(t, result.A1, test.ShouldAlmostEqual, 0.5, 1e-6)
}

func TestTFE3DBoundsEndpoints(t *testing.T) {
	a := [3]float64{1, 1, 2}
	qa := mgl64.QuatIdent()
	qb := mgl64.AnglesToQuat(0, 0, 1.0, mgl64.XYZ)

	enclosed := TFE3D(a, qa, qb, 5)

	// The TFE is built to contain every rotated copy of the body along the
	// interpolation, so it keeps at least the body's own semi-axes (1, 1, 2):
	// a rotation about z leaves the long z axis in place.
	test.That(t, enclosed.A0, test.ShouldBeGreaterThanOrEqualTo, 1.0-1e-6)
	test.That(t, enclosed.A1, test.ShouldBeGreaterThanOrEqualTo, 1.0-1e-6)
	test.That(t, enclosed.A2, test.ShouldBeGreaterThanOrEqualTo, 2.0-1e-6)
}
