package sweep

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Decompose3D nests the 2D decomposition: an outer raster of nx sweep
// planes on x, at each of which every body's samples near that plane are
// projected onto (y,z) and reduced with Decompose2D.
func Decompose3D(arena, obstacle []matrixLike, nx, nyPerLayer int) (*FreeSegment3D, error) {
	if len(arena) == 0 {
		return nil, errors.New("sweep: at least one arena body required")
	}
	if nx < 2 {
		return nil, errors.New("sweep: nx must be at least 2")
	}

	xmin, xmax := xBounds(arena[0])
	for _, m := range arena[1:] {
		lo, hi := xBounds(m)
		if lo < xmin {
			xmin = lo
		}
		if hi > xmax {
			xmax = hi
		}
	}

	fs3 := &FreeSegment3D{X: make([]float64, nx), Layers: make([]*FreeSegment2D, nx)}
	step := (xmax - xmin) / float64(nx-1)
	window := step / 2

	for i := 0; i < nx; i++ {
		x := xmin + float64(i)*step
		fs3.X[i] = x

		arenaSlice := sliceNearX(arena, x, window)
		obstacleSlice := sliceNearX(obstacle, x, window)

		layer, err := Decompose2D(arenaSlice, obstacleSlice, nyPerLayer)
		if err != nil {
			return nil, errors.Wrapf(err, "plane x=%.6f", x)
		}
		fs3.Layers[i] = layer
	}

	return fs3, nil
}

func xBounds(m matrixLike) (xmin, xmax float64) {
	_, cols := m.Dims()
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for j := 0; j < cols; j++ {
		x := m.At(0, j)
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
	}
	return xmin, xmax
}

// sliceNearX projects each body's (y,z) samples near the plane x onto a
// 2-row matrix, widening the window until enough points survive to form a
// half-curve split. This approximates the exact mesh/plane intersection the
// original implementation performs on a triangulated surface; here bodies
// are raw surface samples rather than meshes, so the nearest-window
// projection plays the equivalent role.
func sliceNearX(bodies []matrixLike, x, window float64) []matrixLike {
	out := make([]matrixLike, len(bodies))
	for i, m := range bodies {
		out[i] = projectNearX(m, x, window)
	}
	return out
}

func projectNearX(m matrixLike, x, window float64) matrixLike {
	_, cols := m.Dims()
	type sample struct {
		dist, y, z float64
	}
	samples := make([]sample, cols)
	for j := 0; j < cols; j++ {
		samples[j] = sample{math.Abs(m.At(0, j) - x), m.At(1, j), m.At(2, j)}
	}
	sort.Slice(samples, func(a, b int) bool { return samples[a].dist < samples[b].dist })

	const minPoints = 8
	count := 0
	for _, s := range samples {
		if s.dist <= window {
			count++
		}
	}
	if count < minPoints {
		count = minPoints
	}
	if count > len(samples) {
		count = len(samples)
	}

	// Decompose2D's half-curve split needs a closed boundary in order around
	// the curve, so order the kept samples by angle about their centroid.
	kept := samples[:count]
	var cy, cz float64
	for _, s := range kept {
		cy += s.y / float64(count)
		cz += s.z / float64(count)
	}
	sort.Slice(kept, func(a, b int) bool {
		return math.Atan2(kept[a].z-cz, kept[a].y-cy) < math.Atan2(kept[b].z-cz, kept[b].y-cy)
	})

	ys := make([]float64, count)
	zs := make([]float64, count)
	for j := 0; j < count; j++ {
		ys[j], zs[j] = samples[j].y, samples[j].z
	}
	return &denseYZ{y: ys, z: zs}
}

// denseYZ is a minimal matrixLike backing a projected (y,z) point set.
type denseYZ struct {
	y, z []float64
}

func (d *denseYZ) Dims() (int, int) { return 2, len(d.y) }

func (d *denseYZ) At(i, j int) float64 {
	if i == 0 {
		return d.y[j]
	}
	return d.z[j]
}
