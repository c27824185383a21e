// Package articulated extends the Highway Roadmap pipeline to articulated
// bodies: instead of per-orientation slices, each layer fixes a sampled
// full joint configuration, and forward kinematics place every link for
// that configuration.
package articulated

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/viam-labs/highwayroadmap/spatial"
)

// JointSpec is one revolute joint: a fixed origin transform from its parent
// link frame, a rotation axis, and an angle range.
type JointSpec struct {
	Origin   spatial.Pose
	Axis     r3.Vector
	Min, Max float64
}

// Chain is an ordered list of joints, base to end effector.
type Chain struct {
	Joints []JointSpec
}

// Transforms returns the cumulative world transform at each joint for the
// given configuration (one angle per joint, same order as Joints).
func (c *Chain) Transforms(config []float64) []spatial.Pose {
	out := make([]spatial.Pose, len(c.Joints))
	acc := spatial.NewZeroPose()
	for i, j := range c.Joints {
		acc = spatial.Compose(acc, j.Origin)
		rotation, err := spatial.NewPose(r3.Vector{}, mgl64.QuatRotate(config[i], mgl64.Vec3{j.Axis.X, j.Axis.Y, j.Axis.Z}))
		if err != nil || j.Axis.Norm() == 0 {
			// A zero rotation axis cannot happen for a well-formed joint
			// spec; fall back to identity rather than propagate, since
			// Transforms has no error return (spec treats FK as total).
			rotation = spatial.NewZeroPose()
		}
		acc = spatial.Compose(acc, rotation)
		out[i] = acc
	}
	return out
}
