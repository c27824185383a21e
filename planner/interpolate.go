package planner

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/viam-labs/highwayroadmap/spatial"
)

// coordDims7D is the vertex layout Plan3D emits: x, y, z, qw, qx, qy, qz.
const coordDims7D = 7

// interpolateConfigPath expands a solved path (one coordinate per graph
// vertex) into `steps` equally spaced configurations per edge. 7-D vertices
// (the x, y, z, qw, qx, qy, qz layout Plan3D emits) are linear in translation
// and slerp in orientation; every other dimensionality (2D's x, y, theta, and
// articulated joint-angle vectors) is linear in every component.
func interpolateConfigPath(coords [][]float64, steps int) [][]float64 {
	if len(coords) < 2 || steps < 1 {
		return coords
	}

	interp := lerpVec
	if len(coords[0]) == coordDims7D {
		interp = interpolateVec7D
	}

	var out [][]float64
	for i := 0; i+1 < len(coords); i++ {
		a, b := coords[i], coords[i+1]
		for k := 0; k < steps; k++ {
			by := float64(k) / float64(steps)
			out = append(out, interp(a, b, by))
		}
	}
	out = append(out, coords[len(coords)-1])
	return out
}

func lerpVec(a, b []float64, by float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + (b[i]-a[i])*by
	}
	return out
}

// interpolateVec7D treats a and b as (x, y, z, qw, qx, qy, qz) and calls
// spatial.Interpolate so the orientation block slerps instead of lerping
// component-wise, which would not land back on the unit sphere.
func interpolateVec7D(a, b []float64, by float64) []float64 {
	poseA, err := spatial.NewPose(r3.Vector{X: a[0], Y: a[1], Z: a[2]}, mgl64.Quat{W: a[3], V: mgl64.Vec3{a[4], a[5], a[6]}})
	if err != nil {
		return lerpVec(a, b, by)
	}
	poseB, err := spatial.NewPose(r3.Vector{X: b[0], Y: b[1], Z: b[2]}, mgl64.Quat{W: b[3], V: mgl64.Vec3{b[4], b[5], b[6]}})
	if err != nil {
		return lerpVec(a, b, by)
	}

	mid := spatial.Interpolate(poseA, poseB, by)
	point := mid.Point()
	quat := mid.Orientation()
	return []float64{point.X, point.Y, point.Z, quat.W, quat.V[0], quat.V[1], quat.V[2]}
}
