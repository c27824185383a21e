// Package bodytree models a rigid body as a base plus a list of links, each
// held at a fixed relative transform from the base. It is the shape side of
// the planner: setting the tree's transform moves every link in lockstep,
// and MinkowskiSum turns the whole tree into the per-body point clouds the
// boundary builder needs.
package bodytree

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/highwayroadmap/geometry"
	"github.com/viam-labs/highwayroadmap/spatial"
)

// Shape is anything that can be sampled as a surface point cloud.
// geometry.Superellipse and geometry.Superquadric both satisfy it, and they
// are the only shapes MinkowskiSum can combine.
type Shape interface {
	Surface(n int) *mat.Dense
}

// Link is a rigid body held at a fixed offset from the tree's base.
type Link struct {
	Body     Shape
	Relative spatial.Pose
}

// BodyTree is a base body plus a list of links, each at a fixed relative
// transform from the base. SetTransform moves the whole tree as a unit.
type BodyTree struct {
	base      Shape
	links     []Link
	transform spatial.Pose
}

// New builds a tree from a base body and its links. The tree starts at the
// zero pose.
func New(base Shape, links []Link) *BodyTree {
	return &BodyTree{
		base:      base,
		links:     links,
		transform: spatial.NewZeroPose(),
	}
}

// SetTransform places the base at world transform T and updates every link
// to T composed with the link's relative transform.
func (bt *BodyTree) SetTransform(t spatial.Pose) {
	bt.transform = t
}

// NumLinks returns 1 (the base) plus the number of links, i.e. the number of
// bodies a per-body operation (MinkowskiSum, a bridge-layer TFE list) will
// produce.
func (bt *BodyTree) NumLinks() int {
	return 1 + len(bt.links)
}

// Bodies returns the base shape followed by every link's shape, in tree
// order, letting callers (e.g. the bridge-layer TFE builder) introspect the
// concrete body types without re-deriving the chain.
func (bt *BodyTree) Bodies() []Shape {
	out := make([]Shape, 0, bt.NumLinks())
	out = append(out, bt.base)
	for _, l := range bt.links {
		out = append(out, l.Body)
	}
	return out
}

// RelativeTransforms returns the base's relative transform (identity)
// followed by every link's relative transform, in tree order.
func (bt *BodyTree) RelativeTransforms() []spatial.Pose {
	out := make([]spatial.Pose, 0, bt.NumLinks())
	out = append(out, spatial.NewZeroPose())
	for _, l := range bt.links {
		out = append(out, l.Relative)
	}
	return out
}

// LinkTransforms returns the current world transform of the base followed
// by the world transform of every link, in tree order. The bridge-layer
// component uses this to build one TFE per link without re-deriving the
// chain.
func (bt *BodyTree) LinkTransforms() []spatial.Pose {
	out := make([]spatial.Pose, 0, bt.NumLinks())
	out = append(out, bt.transform)
	for _, l := range bt.links {
		out = append(out, spatial.Compose(bt.transform, l.Relative))
	}
	return out
}

// MinkowskiSum computes, for every body in the tree (base then links), the
// Minkowski combination of target with that body, sampled at n points per
// body. k=+1 inflates target by the body (obstacle case); k=-1 shrinks
// target by the body (arena case). The result has length NumLinks().
func (bt *BodyTree) MinkowskiSum(target Shape, k int, n int) ([]*mat.Dense, error) {
	if k != 1 && k != -1 {
		return nil, errors.Errorf("minkowski sum direction must be +1 or -1, got %d", k)
	}

	transforms := bt.LinkTransforms()
	bodies := make([]Shape, 0, bt.NumLinks())
	bodies = append(bodies, bt.base)
	for _, l := range bt.links {
		bodies = append(bodies, l.Body)
	}

	out := make([]*mat.Dense, 0, len(bodies))
	for i, body := range bodies {
		combined, err := minkowskiCombine(target, body, k)
		if err != nil {
			return nil, errors.Wrapf(err, "body %d", i)
		}
		pts := combined.Surface(n)
		applyTransform(pts, transforms[i])
		out = append(out, pts)
	}
	return out, nil
}

// minkowskiCombine dispatches on concrete shape type to the closed-form
// semi-axis adjustment: 2D superellipses combine with MinkowskiSum2D, 3D
// superquadrics with MinkowskiSum3D.
func minkowskiCombine(target, body Shape, k int) (Shape, error) {
	switch t := target.(type) {
	case *geometry.Superellipse:
		b, ok := body.(*geometry.Superellipse)
		if !ok {
			return nil, errors.New("target and body dimensionality mismatch")
		}
		return t.MinkowskiSum2D(b, k)
	case *geometry.Superquadric:
		b, ok := body.(*geometry.Superquadric)
		if !ok {
			return nil, errors.New("target and body dimensionality mismatch")
		}
		return t.MinkowskiSum3D(b, k)
	default:
		return nil, errors.Errorf("unsupported shape type %T", target)
	}
}

// applyTransform rotates and translates a 2xN or 3xN point matrix in place
// by pose. 2D poses use only the point's X,Y and the orientation's rotation
// about Z.
func applyTransform(pts *mat.Dense, pose spatial.Pose) {
	rows, cols := pts.Dims()
	origin := pose.Point()
	rot := pose.Orientation().Mat4()

	for j := 0; j < cols; j++ {
		switch rows {
		case 2:
			x, y := pts.At(0, j), pts.At(1, j)
			rx := rot.At(0, 0)*x + rot.At(0, 1)*y
			ry := rot.At(1, 0)*x + rot.At(1, 1)*y
			pts.Set(0, j, rx+origin.X)
			pts.Set(1, j, ry+origin.Y)
		case 3:
			x, y, z := pts.At(0, j), pts.At(1, j), pts.At(2, j)
			rx := rot.At(0, 0)*x + rot.At(0, 1)*y + rot.At(0, 2)*z
			ry := rot.At(1, 0)*x + rot.At(1, 1)*y + rot.At(1, 2)*z
			rz := rot.At(2, 0)*x + rot.At(2, 1)*y + rot.At(2, 2)*z
			pts.Set(0, j, rx+origin.X)
			pts.Set(1, j, ry+origin.Y)
			pts.Set(2, j, rz+origin.Z)
		}
	}
}
