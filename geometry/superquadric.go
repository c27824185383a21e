package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Superquadric is a 3D superquadric body part: semi-axes (a0,a1,a2), two
// shape exponents (eps1,eps2), position and orientation quaternion. An
// optional list of quaternion samples may be attached as QuatPresets; no
// code in this module reads it, and the planner takes its orientation
// slices from its own evenly spaced samples.
type Superquadric struct {
	A0, A1, A2   float64
	Eps1, Eps2   float64
	Pos          r3.Vector
	Quat         mgl64.Quat
	QuatPresets  []mgl64.Quat
}

// NewSuperquadric constructs a superquadric, rejecting degenerate shapes.
func NewSuperquadric(a0, a1, a2, eps1, eps2 float64, pos r3.Vector, quat mgl64.Quat) (*Superquadric, error) {
	for _, a := range []float64{a0, a1, a2} {
		if !(a > 0) || math.IsNaN(a) {
			return nil, errInvalidInput("superquadric semi-axes must be finite and positive")
		}
	}
	for _, e := range []float64{eps1, eps2} {
		if !(e > 0 && e < 2) || math.IsNaN(e) {
			return nil, errInvalidInput("superquadric exponents must lie in (0,2)")
		}
	}
	if quat.Dot(quat) < 1e-12 {
		return nil, errInvalidInput("superquadric orientation quaternion is degenerate")
	}
	return &Superquadric{A0: a0, A1: a1, A2: a2, Eps1: eps1, Eps2: eps2, Pos: pos, Quat: quat.Normalize()}, nil
}

// SetPose updates position and orientation in place.
func (s *Superquadric) SetPose(pos r3.Vector, quat mgl64.Quat) {
	s.Pos = pos
	s.Quat = quat.Normalize()
}

// Surface samples an n×n parameter grid on the superquadric boundary in
// world space, returned as a 3×(n*n) point matrix.
func (s *Superquadric) Surface(n int) *mat.Dense {
	out := mat.NewDense(3, n*n, nil)
	col := 0
	for i := 0; i < n; i++ {
		eta := -math.Pi/2 + math.Pi*float64(i)/float64(n-1)
		cosEtaExp := signedPow(math.Cos(eta), 2.0/s.Eps1)
		sinEtaExp := signedPow(math.Sin(eta), 2.0/s.Eps1)
		for j := 0; j < n; j++ {
			omega := -math.Pi + 2*math.Pi*float64(j)/float64(n-1)
			x := s.A0 * cosEtaExp * signedPow(math.Cos(omega), 2.0/s.Eps2)
			y := s.A1 * cosEtaExp * signedPow(math.Sin(omega), 2.0/s.Eps2)
			z := s.A2 * sinEtaExp

			rotated := s.Quat.Rotate(mgl64.Vec3{x, y, z})
			out.Set(0, col, rotated[0]+s.Pos.X)
			out.Set(1, col, rotated[1]+s.Pos.Y)
			out.Set(2, col, rotated[2]+s.Pos.Z)
			col++
		}
	}
	return out
}

// MinkowskiSum3D is the 3D analogue of Superellipse.MinkowskiSum2D: the
// additive semi-axis approximation used by the reference planner.
func (s *Superquadric) MinkowskiSum3D(other *Superquadric, k int) (*Superquadric, error) {
	if k != 1 && k != -1 {
		return nil, errInvalidInput("minkowski sum indicator k must be +1 or -1")
	}
	a0 := s.A0 + float64(k)*other.A0
	a1 := s.A1 + float64(k)*other.A1
	a2 := s.A2 + float64(k)*other.A2
	if a0 <= 0 || a1 <= 0 || a2 <= 0 {
		return nil, errInvalidInput("minkowski difference collapsed a semi-axis to zero or below")
	}
	return &Superquadric{A0: a0, A1: a1, A2: a2, Eps1: s.Eps1, Eps2: s.Eps2, Pos: s.Pos, Quat: s.Quat}, nil
}

// SemiAxes returns the semi-axes as a slice, the shape MVCE/TFE operate on.
func (s *Superquadric) SemiAxes() []float64 { return []float64{s.A0, s.A1, s.A2} }

// Contains reports whether p lies on or within the superquadric boundary,
// evaluating ((x/a0)^(2/eps2) + (y/a1)^(2/eps2))^(eps2/eps1) + (z/a2)^(2/eps1)
// <= 1 in the shape's local frame.
func (s *Superquadric) Contains(p r3.Vector) bool {
	local := s.Quat.Conjugate().Rotate(mgl64.Vec3{p.X - s.Pos.X, p.Y - s.Pos.Y, p.Z - s.Pos.Z})
	expXY := 2.0 / s.Eps2
	xyTerm := math.Pow(math.Abs(local[0]/s.A0), expXY) + math.Pow(math.Abs(local[1]/s.A1), expXY)
	return math.Pow(xyTerm, s.Eps2/s.Eps1)+math.Pow(math.Abs(local[2]/s.A2), 2.0/s.Eps1) <= 1
}
