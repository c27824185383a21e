package boundary

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/viam-labs/highwayroadmap/bodytree"
	"github.com/viam-labs/highwayroadmap/geometry"
)

func TestBuildOrdersArenasThenObstacles(t *testing.T) {
	base, err := geometry.NewSuperellipse(1, 1, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldBeNil)
	tree := bodytree.New(base, nil)

	arena, err := geometry.NewSuperellipse(10, 10, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldBeNil)
	obstacleA, err := geometry.NewSuperellipse(2, 2, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldBeNil)
	obstacleB, err := geometry.NewSuperellipse(1, 1, 1, r2.Point{X: 1, Y: 1}, 0)
	test.That(t, err, test.ShouldBeNil)

	b, err := Build(tree, []bodytree.Shape{arena}, []bodytree.Shape{obstacleA, obstacleB}, 12)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(b.Arena), test.ShouldEqual, 1)
	test.That(t, len(b.Obstacle), test.ShouldEqual, 2)
}
