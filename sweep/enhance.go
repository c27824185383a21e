package sweep

import "sort"

// Enhance walks adjacent sweep lines and injects zero-width pinch vertices
// wherever a segment's endpoint on one line lands inside a segment on the
// neighboring line, guaranteeing that intra-layer edges (layergraph.
// ConnectIntraLayer) stay inside a single convex cell. Lines are re-sorted
// after insertion.
func Enhance(fs *FreeSegment2D) {
	n := len(fs.Y)
	for i := 0; i < n-1; i++ {
		pinchEndpoints(fs, i, i+1)
		pinchEndpoints(fs, i+1, i)
	}
	for i := range fs.XL {
		sortLine(fs, i)
	}
}

// pinchEndpoints scans every segment on "from" and, for each endpoint that
// lands strictly inside a segment on "to", clones that endpoint onto "to"
// as a zero-width [x,x] segment.
func pinchEndpoints(fs *FreeSegment2D, from, to int) {
	for j := range fs.XL[from] {
		for _, x := range [2]float64{fs.XL[from][j], fs.XU[from][j]} {
			for k := range fs.XL[to] {
				yl, yu := fs.XL[to][k], fs.XU[to][k]
				if x > yl && x < yu {
					insertPinch(fs, to, x)
				}
			}
		}
	}
}

func insertPinch(fs *FreeSegment2D, line int, x float64) {
	fs.XL[line] = append(fs.XL[line], x)
	fs.XU[line] = append(fs.XU[line], x)
	fs.XM[line] = append(fs.XM[line], x)
}

func sortLine(fs *FreeSegment2D, i int) {
	type triple struct{ l, u, m float64 }
	triples := make([]triple, len(fs.XL[i]))
	for j := range triples {
		triples[j] = triple{fs.XL[i][j], fs.XU[i][j], fs.XM[i][j]}
	}
	sort.Slice(triples, func(a, b int) bool { return triples[a].l < triples[b].l })
	for j, t := range triples {
		fs.XL[i][j], fs.XU[i][j], fs.XM[i][j] = t.l, t.u, t.m
	}
}
