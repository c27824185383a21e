package bridge

import (
	"math"

	"github.com/viam-labs/highwayroadmap/layergraph"
	"github.com/viam-labs/highwayroadmap/sweep"
)

// BuildBridgeEdges3D is the 3D analogue of BuildBridgeEdges: same monotone
// resume scan, but translation distance and validation both run over
// (x, y, z) against a nested FreeSegment3D.
func BuildBridgeEdges3D(strategy Strategy, middle *sweep.FreeSegment3D, sliceA, sliceB []layergraph.Vertex, limit float64, nPoint int) []Connection {
	var out []Connection
	startB := 0

	for i, va := range sliceA {
		for j := startB; j < len(sliceB); j++ {
			vb := sliceB[j]
			if translationDistance3D(va, vb) > limit {
				continue
			}

			switch strategy {
			case KCStrategy:
				mid, ok := addMiddleVertex3D(middle, va, vb, nPoint)
				if !ok {
					continue
				}
				out = append(out, Connection{IndexA: i, IndexB: j, Weight: translationDistance3D(va, vb), Mid: mid})
			default:
				if !ValidateTransitions3D(middle, va, vb, nPoint) {
					continue
				}
				out = append(out, Connection{IndexA: i, IndexB: j, Weight: translationDistance3D(va, vb)})
			}
			startB = j
			break
		}
	}
	return out
}

func addMiddleVertex3D(middle *sweep.FreeSegment3D, va, vb layergraph.Vertex, nPoint int) (*layergraph.Vertex, bool) {
	coord := make([]float64, len(va.Coord))
	for i := range coord {
		coord[i] = lerp(va.Coord[i], vb.Coord[i], 0.5)
	}
	mid := layergraph.Vertex{Coord: coord}

	half := nPoint/2 + 1
	if !ValidateTransitions3D(middle, va, mid, half) {
		return nil, false
	}
	if !ValidateTransitions3D(middle, mid, vb, half) {
		return nil, false
	}
	return &mid, true
}

func translationDistance3D(a, b layergraph.Vertex) float64 {
	dx := a.Coord[0] - b.Coord[0]
	dy := a.Coord[1] - b.Coord[1]
	dz := a.Coord[2] - b.Coord[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
