// Package sweep implements the per-orientation-layer free-space
// decomposition: separating each body boundary into left/right half-curves,
// rasterizing sweep lines across the arena, and reducing each line to a set
// of disjoint free intervals via the interval package.
package sweep

// FreeSegment2D is the free-space decomposition of one orientation layer:
// Ny sweep lines at Y[i], each holding zero or more disjoint free intervals
// [XL[i][j], XU[i][j]] with midpoint XM[i][j].
type FreeSegment2D struct {
	Y  []float64
	XL [][]float64
	XU [][]float64
	XM [][]float64
}

// FreeSegment3D nests a FreeSegment2D (over y,z) at each of Nx outer sweep
// positions X[i].
type FreeSegment3D struct {
	X      []float64
	Layers []*FreeSegment2D
}
