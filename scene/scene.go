// Package scene defines the external collaborator interfaces a planner run
// needs: a scene loader and an optional artefact writer. No concrete
// CSV/URDF parser lives here, that kind of parsing is out of scope for this
// system, but a minimal in-memory loader is provided so the planner's own
// test suite has something concrete to exercise.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// SuperellipseRecord is the numeric record form of a 2D body: semi-axes,
// shape exponent, position, and heading.
type SuperellipseRecord struct {
	A0, A1, Eps float64
	X, Y        float64
	Theta       float64
}

// SuperquadricRecord is the numeric record form of a 3D body: semi-axes,
// two shape exponents, position, and orientation quaternion (w,x,y,z).
type SuperquadricRecord struct {
	A0, A1, A2   float64
	Eps1, Eps2   float64
	X, Y, Z      float64
	Qw, Qx, Qy, Qz float64
}

// Point2D converts the record's position into golang/geo's r2.Point.
func (s SuperellipseRecord) Point2D() r2.Point { return r2.Point{X: s.X, Y: s.Y} }

// Point3D converts the record's position into golang/geo's r3.Vector.
func (s SuperquadricRecord) Point3D() r3.Vector { return r3.Vector{X: s.X, Y: s.Y, Z: s.Z} }

// Quat converts the record's orientation into an mgl64 quaternion.
func (s SuperquadricRecord) Quat() mgl64.Quat {
	return mgl64.Quat{W: s.Qw, V: mgl64.Vec3{s.Qx, s.Qy, s.Qz}}
}

// JointLimit is one joint's angle range, uniform sampling bound [-pi/2, pi/2]
// unless overridden.
type JointLimit struct {
	Name     string
	Min, Max float64
}

// Scene2D bundles every numeric record a 2D planning run needs.
type Scene2D struct {
	Arenas    []SuperellipseRecord
	Obstacles []SuperellipseRecord
	Body      []SuperellipseRecord
	Start     [3]float64 // x, y, theta
	Goal      [3]float64
}

// Scene3D bundles every numeric record a 3D planning run needs.
type Scene3D struct {
	Arenas    []SuperquadricRecord
	Obstacles []SuperquadricRecord
	Body      []SuperquadricRecord
	Start     [7]float64 // x, y, z, qw, qx, qy, qz
	Goal      [7]float64
	Joints    []JointLimit
}

// Loader is the scene-loading collaborator: CSV/URDF parsing lives outside
// this system, behind this interface.
type Loader interface {
	LoadScene2D(name string) (Scene2D, error)
	LoadScene3D(name string) (Scene3D, error)
}

// ArtifactWriter persists the optional per-run CSV artefacts: vertices,
// edges, path and interpolated path. It has no methods for Minkowski
// boundaries or free segments.
type ArtifactWriter interface {
	WriteVertices(rows [][]float64) error
	WriteEdges(rows [][3]float64) error
	WritePath(ids []int64) error
	WriteInterpolatedPath(rows [][]float64) error
}

// StaticLoader is an in-memory Loader backed by scenes registered with
// Register; the default implementation used by tests and by callers that
// already have scene data in memory.
type StaticLoader struct {
	scenes2D map[string]Scene2D
	scenes3D map[string]Scene3D
}

// NewStaticLoader returns an empty StaticLoader.
func NewStaticLoader() *StaticLoader {
	return &StaticLoader{scenes2D: map[string]Scene2D{}, scenes3D: map[string]Scene3D{}}
}

// Register2D adds a named 2D scene.
func (s *StaticLoader) Register2D(name string, scene Scene2D) { s.scenes2D[name] = scene }

// Register3D adds a named 3D scene.
func (s *StaticLoader) Register3D(name string, scene Scene3D) { s.scenes3D[name] = scene }

// LoadScene2D returns a previously registered 2D scene.
func (s *StaticLoader) LoadScene2D(name string) (Scene2D, error) {
	scene, ok := s.scenes2D[name]
	if !ok {
		return Scene2D{}, errUnknownScene(name)
	}
	return scene, nil
}

// LoadScene3D returns a previously registered 3D scene.
func (s *StaticLoader) LoadScene3D(name string) (Scene3D, error) {
	scene, ok := s.scenes3D[name]
	if !ok {
		return Scene3D{}, errUnknownScene(name)
	}
	return scene, nil
}
