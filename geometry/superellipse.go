// Package geometry implements the numeric primitives the planner is built
// on: superellipse/superquadric surface sampling, the minimum-volume
// concentric ellipsoid (MVCE) and tightly-fitted ellipsoid (TFE) fitters,
// and line/triangle/mesh/polygon intersection routines.
package geometry

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// Superellipse is a 2D superellipse (or superelliptic body part): semi-axes
// (a0,a1), shape exponent eps in (0,2), position and rotation angle. It is
// immutable except for its pose, which a rigid body re-poses in place.
type Superellipse struct {
	A0, A1 float64
	Eps    float64
	Pos    r2.Point
	Theta  float64
}

// NewSuperellipse constructs a superellipse, rejecting degenerate shapes.
func NewSuperellipse(a0, a1, eps float64, pos r2.Point, theta float64) (*Superellipse, error) {
	if !(a0 > 0 && a1 > 0) || math.IsNaN(a0) || math.IsNaN(a1) {
		return nil, errInvalidInput("superellipse semi-axes must be finite and positive")
	}
	if !(eps > 0 && eps < 2) || math.IsNaN(eps) {
		return nil, errInvalidInput("superellipse exponent must lie in (0,2)")
	}
	return &Superellipse{A0: a0, A1: a1, Eps: eps, Pos: pos, Theta: theta}, nil
}

// SetPose updates position and angle in place, per the BodyTree contract
// that re-posing a body never reallocates its shape.
func (s *Superellipse) SetPose(pos r2.Point, theta float64) {
	s.Pos = pos
	s.Theta = theta
}

// SemiAxes returns the semi-axes as a slice, the shape MVCE/TFE operate on.
func (s *Superellipse) SemiAxes() []float64 { return []float64{s.A0, s.A1} }

// Contains reports whether p lies on or within the superellipse boundary,
// evaluating the defining inequality |x/a0|^(2/eps) + |y/a1|^(2/eps) <= 1 in
// the shape's local (unrotated, untranslated) frame.
func (s *Superellipse) Contains(p r2.Point) bool {
	dx, dy := p.X-s.Pos.X, p.Y-s.Pos.Y
	cosT, sinT := math.Cos(-s.Theta), math.Sin(-s.Theta)
	lx := cosT*dx - sinT*dy
	ly := sinT*dx + cosT*dy
	exp := 2.0 / s.Eps
	return math.Pow(math.Abs(lx/s.A0), exp)+math.Pow(math.Abs(ly/s.A1), exp) <= 1
}

// signedPow computes sgn(x)|x|^p, the signed-exponent formula used by
// superquadric surface parameterizations.
func signedPow(x, p float64) float64 {
	if x == 0 {
		return 0
	}
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	return sign * math.Pow(math.Abs(x), p)
}

// Surface samples n points on the superellipse boundary on a regular
// parameter grid, in world space after rotation and translation, returned
// as a 2×n point matrix.
func (s *Superellipse) Surface(n int) *mat.Dense {
	out := mat.NewDense(2, n, nil)
	cosT, sinT := math.Cos(s.Theta), math.Sin(s.Theta)
	exp := 2.0 / s.Eps
	for i := 0; i < n; i++ {
		t := -math.Pi + 2*math.Pi*float64(i)/float64(n-1)
		x := s.A0 * signedPow(math.Cos(t), exp)
		y := s.A1 * signedPow(math.Sin(t), exp)
		wx := cosT*x - sinT*y + s.Pos.X
		wy := sinT*x + cosT*y + s.Pos.Y
		out.Set(0, i, wx)
		out.Set(1, i, wy)
	}
	return out
}

// MinkowskiSum2D approximates the Minkowski sum (k=+1, inflate) or
// difference (k=-1, shrink) of this superellipse with another body's
// superellipse `other`, following the original HRM implementation's
// closed-form approximation: semi-axes add (or subtract) directly, sharing
// this shape's exponent and pose; other's exponent and orientation are not
// used. For k=+1 this is exact only when both shapes are ellipses (eps=1)
// with proportional semi-axes and the same orientation, e.g. two circles;
// for other ellipses the result lies inside the exact Minkowski sum. It is
// the same additive approximation the reference planner uses.
func (s *Superellipse) MinkowskiSum2D(other *Superellipse, k int) (*Superellipse, error) {
	if k != 1 && k != -1 {
		return nil, errInvalidInput("minkowski sum indicator k must be +1 or -1")
	}
	a0 := s.A0 + float64(k)*other.A0
	a1 := s.A1 + float64(k)*other.A1
	if a0 <= 0 || a1 <= 0 {
		return nil, errInvalidInput("minkowski difference collapsed a semi-axis to zero or below")
	}
	return &Superellipse{A0: a0, A1: a1, Eps: s.Eps, Pos: s.Pos, Theta: s.Theta}, nil
}
