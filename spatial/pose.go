// Package spatial provides the minimal pose and orientation representation
// the planner needs: a translation plus a unit quaternion. It intentionally
// covers a small subset of what a full spatial-math package would offer:
// only what the Highway Roadmap pipeline touches (composition, delta,
// linear/slerp interpolation).
package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Pose is a rigid transform: a translation and a rotation expressed as a
// unit quaternion. The zero value is not a valid Pose; use NewZeroPose.
type Pose struct {
	point       r3.Vector
	orientation mgl64.Quat
}

// NewZeroPose returns the identity transform.
func NewZeroPose() Pose {
	return Pose{orientation: mgl64.QuatIdent()}
}

// NewPoseFromPoint returns a pose with identity orientation at point.
func NewPoseFromPoint(point r3.Vector) Pose {
	return Pose{point: point, orientation: mgl64.QuatIdent()}
}

// NewPose returns a pose with the given translation and orientation. The
// orientation is normalized; a near-zero quaternion is an error since it
// cannot represent a rotation.
func NewPose(point r3.Vector, orientation mgl64.Quat) (Pose, error) {
	n := orientation.Dot(orientation)
	if n < 1e-12 {
		return Pose{}, errors.New("spatial: degenerate orientation quaternion")
	}
	return Pose{point: point, orientation: orientation.Normalize()}, nil
}

// Point returns the translation component.
func (p Pose) Point() r3.Vector { return p.point }

// Orientation returns the rotation component.
func (p Pose) Orientation() mgl64.Quat { return p.orientation }

// Compose returns a, followed by b, i.e. a's frame transformed by b.
func Compose(a, b Pose) Pose {
	rotated := a.orientation.Rotate(mgl64.Vec3{b.point.X, b.point.Y, b.point.Z})
	return Pose{
		point:       a.point.Add(r3.Vector{X: rotated[0], Y: rotated[1], Z: rotated[2]}),
		orientation: a.orientation.Mul(b.orientation).Normalize(),
	}
}

// PoseDelta returns the pose that, composed with from, yields to.
func PoseDelta(from, to Pose) Pose {
	invFrom := from.orientation.Inverse()
	diff := to.point.Sub(from.point)
	rotated := invFrom.Rotate(mgl64.Vec3{diff.X, diff.Y, diff.Z})
	return Pose{
		point:       r3.Vector{X: rotated[0], Y: rotated[1], Z: rotated[2]},
		orientation: invFrom.Mul(to.orientation).Normalize(),
	}
}

// Heading returns the pose's rotation about Z, the planar angle a 2D
// orientation reduces to.
func (p Pose) Heading() float64 {
	rotated := p.orientation.Rotate(mgl64.Vec3{1, 0, 0})
	return math.Atan2(rotated[1], rotated[0])
}

// Interpolate returns the pose `by` of the way from a to b: linear in
// translation, spherical (slerp) in orientation. by=0 returns a, by=1
// returns b.
func Interpolate(a, b Pose, by float64) Pose {
	point := r3.Vector{
		X: a.point.X + (b.point.X-a.point.X)*by,
		Y: a.point.Y + (b.point.Y-a.point.Y)*by,
		Z: a.point.Z + (b.point.Z-a.point.Z)*by,
	}
	return Pose{point: point, orientation: mgl64.QuatSlerp(a.orientation, b.orientation, by)}
}
