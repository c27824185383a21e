package bridge

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/viam-labs/highwayroadmap/bodytree"
	"github.com/viam-labs/highwayroadmap/geometry"
	"github.com/viam-labs/highwayroadmap/layergraph"
	"github.com/viam-labs/highwayroadmap/spatial"
	"github.com/viam-labs/highwayroadmap/sweep"
)

func TestBuildTFEs2DOnePerBody(t *testing.T) {
	base, err := geometry.NewSuperellipse(1, 1, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldBeNil)
	link, err := geometry.NewSuperellipse(0.5, 0.5, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldBeNil)

	tree := bodytree.New(base, []bodytree.Link{{Body: link, Relative: spatial.NewZeroPose()}})
	poseA := spatial.NewZeroPose()
	poseB, err := spatial.NewPose(r3.Vector{}, mgl64.AnglesToQuat(0, 0, 0.4, mgl64.XYZ))
	test.That(t, err, test.ShouldBeNil)

	tfes, err := BuildTFEs2D(tree, poseA, poseB, 5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(tfes), test.ShouldEqual, 2)
}

func TestValidateTransitionsRejectsThroughObstacle(t *testing.T) {
	fs := &sweep.FreeSegment2D{
		Y:  []float64{-1, 1},
		XL: [][]float64{{-5}, {-5}},
		XU: [][]float64{{-1}, {-1}},
		XM: [][]float64{{-3}, {-3}},
	}
	a := layergraph.Vertex{Coord: []float64{-3, -1}}
	b := layergraph.Vertex{Coord: []float64{3, 1}}
	test.That(t, ValidateTransitions(fs, a, b, 4), test.ShouldBeFalse)
}

func TestBuildBridgeEdgesMonotoneSweep(t *testing.T) {
	fs := &sweep.FreeSegment2D{
		Y:  []float64{0},
		XL: [][]float64{{-10}},
		XU: [][]float64{{10}},
		XM: [][]float64{{0}},
	}
	sliceA := []layergraph.Vertex{{Coord: []float64{-1, 0}}, {Coord: []float64{1, 0}}}
	sliceB := []layergraph.Vertex{{Coord: []float64{-1.1, 0}}, {Coord: []float64{1.1, 0}}}

	conns := BuildBridgeEdges(TFEStrategy, fs, sliceA, sliceB, 1.0, 2)
	test.That(t, len(conns), test.ShouldEqual, 2)
	test.That(t, conns[0].IndexA, test.ShouldEqual, 0)
	test.That(t, conns[0].IndexB, test.ShouldEqual, 0)
	test.That(t, conns[1].IndexA, test.ShouldEqual, 1)
	test.That(t, conns[1].IndexB, test.ShouldEqual, 1)
}

func TestBuildBridgeEdgesKCStrategyEmitsMidVertex(t *testing.T) {
	fs := &sweep.FreeSegment2D{
		Y:  []float64{0},
		XL: [][]float64{{-10}},
		XU: [][]float64{{10}},
		XM: [][]float64{{0}},
	}
	sliceA := []layergraph.Vertex{{Coord: []float64{-1, 0}}}
	sliceB := []layergraph.Vertex{{Coord: []float64{1, 0}}}

	conns := BuildBridgeEdges(KCStrategy, fs, sliceA, sliceB, 5.0, 2)
	test.That(t, len(conns), test.ShouldEqual, 1)
	test.That(t, conns[0].Mid, test.ShouldNotBeNil)
	test.That(t, conns[0].Mid.Coord[0], test.ShouldAlmostEqual, 0.0)
}
