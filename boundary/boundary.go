// Package boundary flattens a body tree's Minkowski-combined surfaces
// against a scene's arenas and obstacles into the two point-cloud lists the
// sweep-line decomposition consumes.
package boundary

import (
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/highwayroadmap/bodytree"
)

// Boundary holds the per-body surface point clouds for every arena
// (shrunk by the robot) and every obstacle (inflated by the robot), at the
// robot's current transform on its tree.
type Boundary struct {
	Arena    []*mat.Dense
	Obstacle []*mat.Dense
}

// Build computes the arena and obstacle boundaries for tree at its current
// transform. Arenas are processed in scene order, shrunk (k=-1); obstacles
// are processed in scene order, inflated (k=+1). Per-body outputs from a
// single Minkowski sum follow tree order (base then links) and are appended
// in sequence, so ordering is stable across calls.
func Build(tree *bodytree.BodyTree, arenas, obstacles []bodytree.Shape, samplesPerBody int) (Boundary, error) {
	var out Boundary

	for _, arena := range arenas {
		bodies, err := tree.MinkowskiSum(arena, -1, samplesPerBody)
		if err != nil {
			return Boundary{}, err
		}
		out.Arena = append(out.Arena, bodies...)
	}

	for _, obstacle := range obstacles {
		bodies, err := tree.MinkowskiSum(obstacle, 1, samplesPerBody)
		if err != nil {
			return Boundary{}, err
		}
		out.Obstacle = append(out.Obstacle, bodies...)
	}

	return out, nil
}
