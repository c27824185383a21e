package sweep

import "math"

// points2D converts a body's 2xN surface point matrix into a plain slice,
// the representation the half-curve split and nearest-y lookup work on.
func points2D(pts matrixLike) [][2]float64 {
	_, cols := pts.Dims()
	out := make([][2]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = [2]float64{pts.At(0, j), pts.At(1, j)}
	}
	return out
}

// matrixLike is the subset of gonum/mat.Matrix this package needs; kept
// narrow so the sweep package doesn't have to import mat just to read
// surface samples.
type matrixLike interface {
	Dims() (r, c int)
	At(i, j int) float64
}

// splitHalfCurves separates a closed, surface-parameter-ordered boundary
// into a left (smaller mean x) and right (larger mean x) half-curve, split
// at the polygon's y_max and y_min vertices.
func splitHalfCurves(pts [][2]float64) (left, right [][2]float64) {
	if len(pts) == 0 {
		return nil, nil
	}
	maxIdx, minIdx := 0, 0
	for i, p := range pts {
		if p[1] > pts[maxIdx][1] {
			maxIdx = i
		}
		if p[1] < pts[minIdx][1] {
			minIdx = i
		}
	}

	n := len(pts)
	var a, b [][2]float64
	for i := minIdx; ; i = (i + 1) % n {
		a = append(a, pts[i])
		if i == maxIdx {
			break
		}
	}
	for i := maxIdx; ; i = (i + 1) % n {
		b = append(b, pts[i])
		if i == minIdx {
			break
		}
	}

	if meanX(a) <= meanX(b) {
		return a, b
	}
	return b, a
}

func meanX(pts [][2]float64) float64 {
	if len(pts) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range pts {
		sum += p[0]
	}
	return sum / float64(len(pts))
}

// xAtY returns the x of the curve point whose y is closest to the sweep
// line's y (argmin |y_curve - y|), the nearest-sample lookup the
// decomposition uses instead of interpolating along the curve.
func xAtY(curve [][2]float64, y float64) float64 {
	best := 0
	bestDiff := math.Abs(curve[0][1] - y)
	for i, p := range curve {
		d := math.Abs(p[1] - y)
		if d < bestDiff {
			bestDiff = d
			best = i
		}
	}
	return curve[best][0]
}

// bodyIntervalAtY reduces one body's boundary to its [xL, xU] span at sweep
// line y.
func bodyIntervalAtY(pts [][2]float64, y float64) (xl, xu float64) {
	left, right := splitHalfCurves(pts)
	xl, xu = xAtY(left, y), xAtY(right, y)
	if xl > xu {
		xl, xu = xu, xl
	}
	return xl, xu
}

func yBounds(pts [][2]float64) (ymin, ymax float64) {
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		if p[1] < ymin {
			ymin = p[1]
		}
		if p[1] > ymax {
			ymax = p[1]
		}
	}
	return ymin, ymax
}
