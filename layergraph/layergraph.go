// Package layergraph builds the intra-layer graph for one orientation
// slice: a vertex per free interval on every sweep line, with edges between
// touching segments on the same line and overlapping segments on adjacent
// lines.
package layergraph

import (
	"math"

	"github.com/viam-labs/highwayroadmap/sweep"
)

// Vertex is one free-interval midpoint, carrying its full configuration
// coordinate (translation plus orientation) and its position in the sweep
// raster for edge lookups.
type Vertex struct {
	Coord []float64
	Line  int
	Seg   int
}

// Edge is a weighted undirected connection between two vertex indices into
// the slice returned alongside it.
type Edge struct {
	From, To int
	Weight   float64
}

// GenerateVertices emits one vertex per free interval in fs, with
// coordinate (xM, y, orientation...).
func GenerateVertices(fs *sweep.FreeSegment2D, orientation []float64) []Vertex {
	var out []Vertex
	for i := range fs.Y {
		for j := range fs.XM[i] {
			coord := make([]float64, 0, 2+len(orientation))
			coord = append(coord, fs.XM[i][j], fs.Y[i])
			coord = append(coord, orientation...)
			out = append(out, Vertex{Coord: coord, Line: i, Seg: j})
		}
	}
	return out
}

// ConnectIntraLayer adds same-line touching-segment edges (gap under eps)
// and adjacent-line overlap edges, weighted by Euclidean distance between
// vertex coordinates. vertices must be exactly the output of
// GenerateVertices for the same fs.
func ConnectIntraLayer(fs *sweep.FreeSegment2D, vertices []Vertex, eps float64) []Edge {
	index := make(map[[2]int]int, len(vertices))
	for idx, v := range vertices {
		index[[2]int{v.Line, v.Seg}] = idx
	}

	var edges []Edge
	n := len(fs.Y)
	for i := 0; i < n; i++ {
		for j := 0; j+1 < len(fs.XU[i]); j++ {
			if math.Abs(fs.XU[i][j]-fs.XL[i][j+1]) < eps {
				edges = append(edges, edgeBetween(vertices, index, i, j, i, j+1))
			}
		}

		if i+1 >= n {
			continue
		}
		for j1 := range fs.XM[i] {
			for j2 := range fs.XM[i+1] {
				if segmentsOverlap(fs, i, j1, i+1, j2) {
					edges = append(edges, edgeBetween(vertices, index, i, j1, i+1, j2))
				}
			}
		}
	}
	return edges
}

// segmentsOverlap reports whether the free intervals at (lineA, segA) and
// (lineB, segB) are connectable: one's midpoint falls within the other's
// span, and the two intervals overlap in x.
func segmentsOverlap(fs *sweep.FreeSegment2D, lineA, segA, lineB, segB int) bool {
	xl1, xu1, xm1 := fs.XL[lineA][segA], fs.XU[lineA][segA], fs.XM[lineA][segA]
	xl2, xu2, xm2 := fs.XL[lineB][segB], fs.XU[lineB][segB], fs.XM[lineB][segB]

	midInside := (xm1 >= xl2 && xm1 <= xu2) || (xm2 >= xl1 && xm2 <= xu1)
	overlap := xu1 >= xl2 && xu2 >= xl1
	return midInside && overlap
}

func edgeBetween(vertices []Vertex, index map[[2]int]int, lineA, segA, lineB, segB int) Edge {
	a := index[[2]int{lineA, segA}]
	b := index[[2]int{lineB, segB}]
	return Edge{From: a, To: b, Weight: euclidean(vertices[a].Coord, vertices[b].Coord)}
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
