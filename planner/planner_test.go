package planner

import (
	"context"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/viam-labs/highwayroadmap/bodytree"
	"github.com/viam-labs/highwayroadmap/geometry"
	"github.com/viam-labs/highwayroadmap/scene"
)

func smallPlanner(t *testing.T) *Planner {
	t.Helper()
	base, err := geometry.NewSuperellipse(1, 0.5, 1, r2.Point{}, 0)
	test.That(t, err, test.ShouldBeNil)
	tree := bodytree.New(base, nil)
	return New(golog.NewTestLogger(t), tree)
}

func TestPlan2DSolvesEmptyArena(t *testing.T) {
	p := smallPlanner(t)
	params := NewDefaultPlannerParameters()
	params.NumLayer = 4
	params.NumLineY = 20

	sc := scene.Scene2D{
		Arenas: []scene.SuperellipseRecord{{A0: 10, A1: 10, Eps: 1}},
		Start:  [3]float64{-5, -5, 0},
		Goal:   [3]float64{5, 5, 0},
	}

	result, err := p.Plan2D(context.Background(), NewPlanningRequest(params), sc)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Solved, test.ShouldBeTrue)
	test.That(t, len(result.PathIDs), test.ShouldBeGreaterThanOrEqualTo, 2)
}

func TestPlan2DRejectsMissingArena(t *testing.T) {
	p := smallPlanner(t)
	params := NewDefaultPlannerParameters()

	sc := scene.Scene2D{Start: [3]float64{0, 0, 0}, Goal: [3]float64{1, 1, 0}}
	_, err := p.Plan2D(context.Background(), NewPlanningRequest(params), sc)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestDecodeParametersOverridesDefaults(t *testing.T) {
	params := NewDefaultPlannerParameters()
	err := params.DecodeParameters(map[string]interface{}{
		"NUM_LAYER": "12",
		"NUM_POINT": 7.0,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, params.NumLayer, test.ShouldEqual, 12)
	test.That(t, params.NumPoint, test.ShouldEqual, 7)
}
