package bridge

import (
	"math"

	"github.com/viam-labs/highwayroadmap/layergraph"
	"github.com/viam-labs/highwayroadmap/sweep"
)

// Connection is a validated bridge edge between a vertex in slice A and a
// vertex in slice B, both identified by their index in the slice passed to
// BuildBridgeEdges. The caller (typically the roadmap package) offsets
// these into the global vertex index space.
type Connection struct {
	IndexA, IndexB int
	Weight         float64
	// Mid is set only under KCStrategy: the synthesized midpoint vertex
	// the roadmap must also insert, splitting this connection into two
	// edges (A-Mid, Mid-B) instead of a direct A-B edge.
	Mid *layergraph.Vertex
}

// BuildBridgeEdges scans sliceA against sliceB in index order. For each A
// vertex it resumes the B scan from where the previous A vertex left off
// (monotone sweep), skipping any pair whose Euclidean translation distance
// exceeds limit, and accepts the first pair that validates against middle.
func BuildBridgeEdges(strategy Strategy, middle *sweep.FreeSegment2D, sliceA, sliceB []layergraph.Vertex, limit float64, nPoint int) []Connection {
	var out []Connection
	startB := 0

	for i, va := range sliceA {
		for j := startB; j < len(sliceB); j++ {
			vb := sliceB[j]
			if translationDistance(va, vb) > limit {
				continue
			}

			switch strategy {
			case KCStrategy:
				mid, ok := addMiddleVertex(middle, va, vb, nPoint)
				if !ok {
					continue
				}
				out = append(out, Connection{IndexA: i, IndexB: j, Weight: translationDistance(va, vb), Mid: mid})
			default:
				if !ValidateTransitions(middle, va, vb, nPoint) {
					continue
				}
				out = append(out, Connection{IndexA: i, IndexB: j, Weight: translationDistance(va, vb)})
			}
			startB = j
			break
		}
	}
	return out
}

// addMiddleVertex synthesizes the translation/orientation midpoint between
// va and vb and accepts it only if both halves (va-mid, mid-vb) validate
// against middle, the Kinematics-of-Containment alternative to certifying
// the direct edge.
func addMiddleVertex(middle *sweep.FreeSegment2D, va, vb layergraph.Vertex, nPoint int) (*layergraph.Vertex, bool) {
	coord := make([]float64, len(va.Coord))
	for i := range coord {
		coord[i] = lerp(va.Coord[i], vb.Coord[i], 0.5)
	}
	mid := layergraph.Vertex{Coord: coord}

	half := nPoint/2 + 1
	if !ValidateTransitions(middle, va, mid, half) {
		return nil, false
	}
	if !ValidateTransitions(middle, mid, vb, half) {
		return nil, false
	}
	return &mid, true
}

func translationDistance(a, b layergraph.Vertex) float64 {
	dx := a.Coord[0] - b.Coord[0]
	dy := a.Coord[1] - b.Coord[1]
	return math.Sqrt(dx*dx + dy*dy)
}
