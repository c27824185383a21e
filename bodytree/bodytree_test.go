package bodytree

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/viam-labs/highwayroadmap/geometry"
	"github.com/viam-labs/highwayroadmap/spatial"
)

func mustSuperellipse(t *testing.T, a0, a1 float64) *geometry.Superellipse {
	t.Helper()
	s, err := geometry.NewSuperellipse(a0, a1, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldBeNil)
	return s
}

func TestNumLinksAndTransforms(t *testing.T) {
	base := mustSuperellipse(t, 1, 1)
	link := mustSuperellipse(t, 0.5, 0.5)

	tree := New(base, []Link{{Body: link, Relative: spatial.NewPoseFromPoint(r3.Vector{X: 1})}})
	test.That(t, tree.NumLinks(), test.ShouldEqual, 2)

	tree.SetTransform(spatial.NewPoseFromPoint(r3.Vector{X: 2}))
	transforms := tree.LinkTransforms()
	test.That(t, len(transforms), test.ShouldEqual, 2)
	test.That(t, transforms[0].Point().X, test.ShouldAlmostEqual, 2.0)
	test.That(t, transforms[1].Point().X, test.ShouldAlmostEqual, 3.0)
}

func TestMinkowskiSumProducesOnePerBody(t *testing.T) {
	base := mustSuperellipse(t, 1, 1)
	link := mustSuperellipse(t, 0.5, 0.5)
	tree := New(base, []Link{{Body: link, Relative: spatial.NewPoseFromPoint(r3.Vector{X: 1})}})

	target := mustSuperellipse(t, 3, 3)
	out, err := tree.MinkowskiSum(target, 1, 8)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(out), test.ShouldEqual, tree.NumLinks())

	for _, m := range out {
		rows, cols := m.Dims()
		test.That(t, rows, test.ShouldEqual, 2)
		test.That(t, cols, test.ShouldEqual, 8)
	}
}

func TestMinkowskiSumRejectsBadDirection(t *testing.T) {
	base := mustSuperellipse(t, 1, 1)
	tree := New(base, nil)
	target := mustSuperellipse(t, 2, 2)
	_, err := tree.MinkowskiSum(target, 0, 8)
	test.That(t, err, test.ShouldNotBeNil)
}
