// Package roadmap assembles the per-layer intra-layer graphs and
// bridge-layer edges into one dense graph, backed by
// gonum.org/v1/gonum/graph/simple, and searches it with A*.
package roadmap

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the global roadmap: a weighted undirected graph over
// configuration-coordinate vertices. Vertex indices are a single dense,
// insertion-ordered space, matching every intra-layer and bridge-layer
// graph merged into it.
type Graph struct {
	g      *simple.WeightedUndirectedGraph
	coords map[int64][]float64
	nextID int64
}

// New returns an empty roadmap graph.
func New() *Graph {
	return &Graph{
		g:      simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		coords: make(map[int64][]float64),
	}
}

// AddVertex inserts a new vertex at coord and returns its graph ID.
func (r *Graph) AddVertex(coord []float64) int64 {
	id := r.nextID
	r.nextID++
	r.g.AddNode(simple.Node(id))
	r.coords[id] = coord
	return id
}

// AddEdge connects a and b with an undirected weighted edge.
func (r *Graph) AddEdge(a, b int64, weight float64) {
	r.g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(a), T: simple.Node(b), W: weight})
}

// Coord returns the configuration coordinate of vertex id.
func (r *Graph) Coord(id int64) []float64 { return r.coords[id] }

// NumVertices returns the number of vertices inserted so far.
func (r *Graph) NumVertices() int { return len(r.coords) }

// VertexIDs returns every vertex ID in insertion order.
func (r *Graph) VertexIDs() []int64 {
	out := make([]int64, r.nextID)
	for i := range out {
		out[i] = int64(i)
	}
	return out
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
