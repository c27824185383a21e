package geometry

import "math"

const intersectTol = 1e-9

// IntersectLineTriangle is the line/triangle test of the reference planner's
// intersectLineTriangle3d: it intersects the parametric line p0+t*d with the
// plane of triangle (t0,u,v), then checks the hit point's barycentric
// coordinates, returning the point and true if the line crosses the
// triangle (barycentric s,t within [-tol, 1+tol]).
func IntersectLineTriangle(p0, d, t0, u, v [3]float64) (pt [3]float64, ok bool) {
	uVec := sub3(u, t0)
	vVec := sub3(v, t0)
	n := cross3(uVec, vVec)

	nDotD := dot3(n, d)
	if math.Abs(nDotD) < intersectTol {
		return pt, false
	}

	w := sub3(t0, p0)
	tParam := dot3(n, w) / nDotD
	pt = add3(p0, scale3(d, tParam))

	// Barycentric test using the standard u/v parameterization.
	uu, uv, vv := dot3(uVec, uVec), dot3(uVec, vVec), dot3(vVec, vVec)
	wVec := sub3(pt, t0)
	wu, wv := dot3(wVec, uVec), dot3(wVec, vVec)
	denom := uv*uv - uu*vv
	if math.Abs(denom) < intersectTol {
		return pt, false
	}
	s := (uv*wv - vv*wu) / denom
	tBary := (uv*wu - uu*wv) / denom

	if s < -intersectTol || tBary < -intersectTol || s+tBary > 1+intersectTol {
		return pt, false
	}
	return pt, true
}

// IntersectLineMesh iterates every triangle in shape and returns up to two
// intersection points with the parametric line p0+t*d (a 3D mesh boundary
// is assumed to be a closed, simple surface so at most two crossings are
// kept).
func IntersectLineMesh(p0, d [3]float64, shape *MeshMatrix) [][3]float64 {
	var hits [][3]float64
	for i := range shape.Faces {
		t0, u, v := shape.Triangle(i)
		if pt, ok := IntersectLineTriangle(p0, d, t0, u, v); ok {
			hits = append(hits, pt)
			if len(hits) == 2 {
				break
			}
		}
	}
	return hits
}

// IntersectVerticalLineMesh is IntersectLineMesh specialised for a sweep
// line vertical in z (direction (0,0,1)), pruning triangles whose (x,y)
// bounding range does not contain the line's (x,y) first, matching the
// reference planner's intersectVerticalLineMesh3d.
func IntersectVerticalLineMesh(x, y float64, shape *MeshMatrix) [][3]float64 {
	var hits [][3]float64
	p0 := [3]float64{x, y, 0}
	d := [3]float64{0, 0, 1}
	for i := range shape.Faces {
		t0, u, v := shape.Triangle(i)
		minX := math.Min(t0[0], math.Min(u[0], v[0]))
		maxX := math.Max(t0[0], math.Max(u[0], v[0]))
		minY := math.Min(t0[1], math.Min(u[1], v[1]))
		maxY := math.Max(t0[1], math.Max(u[1], v[1]))
		if x < minX || x > maxX || y < minY || y > maxY {
			continue
		}
		if pt, ok := IntersectLineTriangle(p0, d, t0, u, v); ok {
			hits = append(hits, pt)
			if len(hits) == 2 {
				break
			}
		}
	}
	return hits
}

// IntersectHorizontalLinePolygon returns the x-intercepts of a horizontal
// sweep line at height ty against a closed 2D polygon given as a slice of
// (x, y) vertices, checking each edge in turn (intersectHorizontalLinePolygon2d in
// the reference planner).
func IntersectHorizontalLinePolygon(ty float64, polygon [][2]float64) []float64 {
	var xs []float64
	n := len(polygon)
	for i := 0; i < n; i++ {
		p1 := polygon[i]
		p2 := polygon[(i+1)%n]
		yMin, yMax := math.Min(p1[1], p2[1]), math.Max(p1[1], p2[1])
		if ty < yMin || ty > yMax || p1[1] == p2[1] {
			continue
		}
		frac := (ty - p1[1]) / (p2[1] - p1[1])
		xs = append(xs, p1[0]+frac*(p2[0]-p1[0]))
	}
	return xs
}

func sub3(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func add3(a, b [3]float64) [3]float64 { return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func scale3(a [3]float64, s float64) [3]float64 { return [3]float64{a[0] * s, a[1] * s, a[2] * s} }
func dot3(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }
func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
