package bridge

import (
	"github.com/viam-labs/highwayroadmap/layergraph"
	"github.com/viam-labs/highwayroadmap/sweep"
)

// ValidateTransitions3D is the 3D analogue of ValidateTransitions: it
// interpolates nPoint configurations between vertexA and vertexB (linear in
// x, y, z) and checks each one's (y, z) against the outer x-layer of middle
// nearest its interpolated x. Orientation components past index 2 are not
// re-validated here: the TFE bounding every intermediate orientation is what
// BuildTFEs3D already certified when middle was built.
func ValidateTransitions3D(middle *sweep.FreeSegment3D, vertexA, vertexB layergraph.Vertex, nPoint int) bool {
	for k := 0; k <= nPoint; k++ {
		by := float64(k) / float64(nPoint)
		x := lerp(vertexA.Coord[0], vertexB.Coord[0], by)
		y := lerp(vertexA.Coord[1], vertexB.Coord[1], by)
		z := lerp(vertexA.Coord[2], vertexB.Coord[2], by)
		if !inFreeCell(nearestXLayer(middle, x), y, z) {
			return false
		}
	}
	return true
}

func nearestXLayer(fs3 *sweep.FreeSegment3D, x float64) *sweep.FreeSegment2D {
	best, bestDiff := 0, absf(fs3.X[0]-x)
	for i, v := range fs3.X {
		if d := absf(v - x); d < bestDiff {
			bestDiff, best = d, i
		}
	}
	return fs3.Layers[best]
}
