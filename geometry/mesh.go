package geometry

import "gonum.org/v1/gonum/mat"

// MeshMatrix is a triangle mesh: a 3×V vertex matrix and an F×3 face-index
// matrix (0-indexed), the shape a 3D obstacle's surface takes when it is
// represented by triangles rather than a superquadric closed form.
type MeshMatrix struct {
	Vertices *mat.Dense // 3 x V
	Faces    [][3]int   // F x 3
}

// Triangle returns the three vertices of face i as points.
func (m *MeshMatrix) Triangle(i int) (t0, u, v [3]float64) {
	f := m.Faces[i]
	get := func(col int) [3]float64 {
		return [3]float64{m.Vertices.At(0, col), m.Vertices.At(1, col), m.Vertices.At(2, col)}
	}
	return get(f[0]), get(f[1]), get(f[2])
}
