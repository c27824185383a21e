package layergraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"

	"github.com/viam-labs/highwayroadmap/sweep"
)

func twoLineFreeSegment() *sweep.FreeSegment2D {
	return &sweep.FreeSegment2D{
		Y:  []float64{0, 1},
		XL: [][]float64{{-5, 2}, {-5, 2.1}},
		XU: [][]float64{{-2, 5}, {-2.1, 5}},
		XM: [][]float64{{-3.5, 3.5}, {-3.55, 3.55}},
	}
}

func TestGenerateVerticesOneFreeIntervalPerSegment(t *testing.T) {
	fs := twoLineFreeSegment()
	vertices := GenerateVertices(fs, []float64{0.2})
	test.That(t, len(vertices), test.ShouldEqual, 4)
	test.That(t, len(vertices[0].Coord), test.ShouldEqual, 3)
	test.That(t, vertices[0].Coord[2], test.ShouldAlmostEqual, 0.2)
}

func TestConnectIntraLayerLinksAdjacentLines(t *testing.T) {
	fs := twoLineFreeSegment()
	vertices := GenerateVertices(fs, nil)
	edges := ConnectIntraLayer(fs, vertices, 1e-6)
	test.That(t, len(edges), test.ShouldBeGreaterThanOrEqualTo, 2)
}

func TestGenerateVerticesIsDeterministic(t *testing.T) {
	fs := twoLineFreeSegment()
	a := GenerateVertices(fs, []float64{0.2})
	b := GenerateVertices(fs, []float64{0.2})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("GenerateVertices is not deterministic across identical inputs (-first +second):\n%s", diff)
	}
}
