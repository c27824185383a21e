// Package bridge connects the intra-layer graphs of two adjacent
// orientation slices: it builds a per-body tightly-fitted ellipsoid (TFE)
// bounding every intermediate orientation, decomposes the free space that
// bounding shape sees, and validates candidate vertex pairs against it.
package bridge

import (
	"github.com/pkg/errors"

	"github.com/viam-labs/highwayroadmap/bodytree"
	"github.com/viam-labs/highwayroadmap/geometry"
	"github.com/viam-labs/highwayroadmap/layergraph"
	"github.com/viam-labs/highwayroadmap/spatial"
	"github.com/viam-labs/highwayroadmap/sweep"
)

// Strategy selects which bridge-layer construction connects two adjacent
// orientation slices.
type Strategy int

const (
	// TFEStrategy bounds every body's swept volume with a tightly-fitted
	// ellipsoid and validates the direct edge against it.
	TFEStrategy Strategy = iota
	// KCStrategy is the Kinematics-of-Containment variant: instead of
	// validating the direct edge, it synthesizes a single bridge vertex
	// at the translation/orientation midpoint and accepts the pair if
	// both halves validate.
	KCStrategy
)

// BuildTFEs2D returns one tightly-fitted ellipse per body in tree (base
// then links), each bounding that body across every orientation between
// poseA and poseB.
func BuildTFEs2D(tree *bodytree.BodyTree, poseA, poseB spatial.Pose, nStep int) ([]*geometry.Superellipse, error) {
	bodies := tree.Bodies()
	relatives := tree.RelativeTransforms()

	out := make([]*geometry.Superellipse, len(bodies))
	for i, body := range bodies {
		se, ok := body.(*geometry.Superellipse)
		if !ok {
			return nil, errors.Errorf("bridge: body %d is not a 2D shape (%T)", i, body)
		}
		axes := se.SemiAxes()
		thetaA := spatial.Compose(poseA, relatives[i]).Heading()
		thetaB := spatial.Compose(poseB, relatives[i]).Heading()
		out[i] = geometry.TFE2D([2]float64{axes[0], axes[1]}, thetaA, thetaB, nStep)
	}
	return out, nil
}

// BuildTFEs3D is the 3D analogue of BuildTFEs2D, producing one superquadric
// TFE per body bounding every orientation between poseA and poseB.
func BuildTFEs3D(tree *bodytree.BodyTree, poseA, poseB spatial.Pose, nStep int) ([]*geometry.Superquadric, error) {
	bodies := tree.Bodies()
	relatives := tree.RelativeTransforms()

	out := make([]*geometry.Superquadric, len(bodies))
	for i, body := range bodies {
		sq, ok := body.(*geometry.Superquadric)
		if !ok {
			return nil, errors.Errorf("bridge: body %d is not a 3D shape (%T)", i, body)
		}
		axes := sq.SemiAxes()
		qa := spatial.Compose(poseA, relatives[i]).Orientation()
		qb := spatial.Compose(poseB, relatives[i]).Orientation()
		out[i] = geometry.TFE3D([3]float64{axes[0], axes[1], axes[2]}, qa, qb, nStep)
	}
	return out, nil
}

// inFreeCell reports whether (x, y) falls inside one of middle's free
// intervals on its nearest sweep line.
func inFreeCell(middle *sweep.FreeSegment2D, x, y float64) bool {
	nearest := nearestLine(middle.Y, y)
	xl, xu := middle.XL[nearest], middle.XU[nearest]
	for k := range xl {
		if x >= xl[k] && x <= xu[k] {
			return true
		}
	}
	return false
}

func nearestLine(lines []float64, y float64) int {
	best, bestDiff := 0, absf(lines[0]-y)
	for i, l := range lines {
		if d := absf(l - y); d < bestDiff {
			bestDiff, best = d, i
		}
	}
	return best
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// ValidateTransitions interpolates nPoint equispaced configurations between
// vertexA and vertexB (linear in translation, linear in the stored
// orientation coordinate) and checks that each one's base position
// (Coord[0], Coord[1]) lies in a free cell of middle. BuildBridgeEdges
// weights an accepted pair by the Euclidean distance between the two
// vertices' (x, y) translations; the orientation coordinate does not add to
// the weight.
func ValidateTransitions(middle *sweep.FreeSegment2D, vertexA, vertexB layergraph.Vertex, nPoint int) bool {
	for k := 0; k <= nPoint; k++ {
		by := float64(k) / float64(nPoint)
		x := lerp(vertexA.Coord[0], vertexB.Coord[0], by)
		y := lerp(vertexA.Coord[1], vertexB.Coord[1], by)
		if !inFreeCell(middle, x, y) {
			return false
		}
	}
	return true
}

func lerp(a, b, by float64) float64 { return a + (b-a)*by }
