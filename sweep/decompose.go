package sweep

import (
	"github.com/pkg/errors"

	"github.com/viam-labs/highwayroadmap/interval"
)

// Decompose2D rasters ny equally spaced sweep lines across the arena's
// y-range and reduces each to a set of disjoint free intervals: the
// intersection of every arena body's span at that line, minus the union of
// every obstacle body's span.
func Decompose2D(arena, obstacle []matrixLike, ny int) (*FreeSegment2D, error) {
	if len(arena) == 0 {
		return nil, errors.New("sweep: at least one arena body required")
	}
	if ny < 2 {
		return nil, errors.New("sweep: ny must be at least 2")
	}

	arenaPts := make([][][2]float64, len(arena))
	ymin, ymax := yBounds(points2D(arena[0]))
	arenaPts[0] = points2D(arena[0])
	for i, m := range arena[1:] {
		pts := points2D(m)
		arenaPts[i+1] = pts
		lo, hi := yBounds(pts)
		if lo < ymin {
			ymin = lo
		}
		if hi > ymax {
			ymax = hi
		}
	}

	obstaclePts := make([][][2]float64, len(obstacle))
	for i, m := range obstacle {
		obstaclePts[i] = points2D(m)
	}

	fs := &FreeSegment2D{Y: make([]float64, ny)}
	step := (ymax - ymin) / float64(ny-1)

	for i := 0; i < ny; i++ {
		y := ymin + float64(i)*step
		fs.Y[i] = y

		arenaIntervals := make([]interval.Interval, len(arenaPts))
		for j, pts := range arenaPts {
			xl, xu := bodyIntervalAtY(pts, y)
			arenaIntervals[j] = interval.Interval{S: xl, E: xu}
		}
		freeDomain := interval.Intersect(arenaIntervals)

		var obstacleIntervals []interval.Interval
		for _, pts := range obstaclePts {
			xl, xu := bodyIntervalAtY(pts, y)
			obstacleIntervals = append(obstacleIntervals, interval.Interval{S: xl, E: xu})
		}
		obstacleUnion := interval.Union(obstacleIntervals)

		free := interval.Complement(freeDomain, obstacleUnion)

		xl := make([]float64, len(free))
		xu := make([]float64, len(free))
		xm := make([]float64, len(free))
		for k, f := range free {
			xl[k], xu[k], xm[k] = f.S, f.E, (f.S+f.E)/2
		}
		fs.XL = append(fs.XL, xl)
		fs.XU = append(fs.XU, xu)
		fs.XM = append(fs.XM, xm)
	}

	return fs, nil
}
