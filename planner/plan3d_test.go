package planner

import (
	"context"
	"testing"

	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/viam-labs/highwayroadmap/bodytree"
	"github.com/viam-labs/highwayroadmap/geometry"
	"github.com/viam-labs/highwayroadmap/scene"
)

func smallPlanner3D(t *testing.T) *Planner {
	t.Helper()
	base, err := geometry.NewSuperquadric(1, 1, 1, 1, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldBeNil)
	tree := bodytree.New(base, nil)
	return New(golog.NewTestLogger(t), tree)
}

func TestPlan3DSolvesEmptyArena(t *testing.T) {
	p := smallPlanner3D(t)
	params := NewDefaultPlannerParameters()
	params.NumLayer = 2
	params.NumLineX = 6
	params.NumLineY = 6

	sc := scene.Scene3D{
		Arenas: []scene.SuperquadricRecord{{A0: 10, A1: 10, A2: 10, Eps1: 1, Eps2: 1, Qw: 1}},
		Start:  [7]float64{-5, -5, 0, 1, 0, 0, 0},
		Goal:   [7]float64{5, 5, 0, 1, 0, 0, 0},
	}

	result, err := p.Plan3D(context.Background(), NewPlanningRequest(params), sc)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Solved, test.ShouldBeTrue)
}

func TestPlan3DRejectsMissingArena(t *testing.T) {
	p := smallPlanner3D(t)
	params := NewDefaultPlannerParameters()

	sc := scene.Scene3D{Start: [7]float64{0, 0, 0, 1, 0, 0, 0}, Goal: [7]float64{1, 1, 0, 1, 0, 0, 0}}
	_, err := p.Plan3D(context.Background(), NewPlanningRequest(params), sc)
	test.That(t, err, test.ShouldNotBeNil)
}
