package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
)

// TFE2D computes the tightly-fitted ellipse bounding every rotated copy of
// a superellipse with semi-axes a as it rotates from thetaA to thetaB:
// slerp (lerp, in 2D) step interpolated orientations are folded into the
// MVCE iteratively, following the reference planner's getTFE3D.
func TFE2D(a [2]float64, thetaA, thetaB float64, nStep int) *Superellipse {
	if nStep < 1 {
		nStep = 1
	}
	enclosed := MVCE2D(a, a, thetaA, thetaB)
	for i := 1; i < nStep; i++ {
		by := float64(i) / float64(nStep-1)
		thetaI := thetaA + (thetaB-thetaA)*by
		enclosed = MVCE2D(a, [2]float64{enclosed.A0, enclosed.A1}, thetaI, enclosed.Theta)
	}
	return enclosed
}

// TFE3D is the 3D tightly-fitted ellipsoid: N_step slerp-interpolated
// orientations between quatA and quatB are folded into the MVCE3D
// iteratively.
func TFE3D(a [3]float64, quatA, quatB mgl64.Quat, nStep int) *Superquadric {
	if nStep < 1 {
		nStep = 1
	}
	enclosed := MVCE3D(a, a, quatA, quatB)
	for i := 1; i < nStep; i++ {
		by := float64(i) / float64(nStep-1)
		quatI := mgl64.QuatSlerp(quatA, quatB, by)
		enclosed = MVCE3D(a, [3]float64{enclosed.A0, enclosed.A1, enclosed.A2}, quatI, enclosed.Quat)
	}
	return enclosed
}
