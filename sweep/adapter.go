package sweep

import "gonum.org/v1/gonum/mat"

// Wrap adapts a slice of gonum matrices (as produced by bodytree.MinkowskiSum
// / boundary.Boundary) to the narrow matrixLike slice Decompose2D/3D expect.
func Wrap(ms []*mat.Dense) []matrixLike {
	out := make([]matrixLike, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out
}
