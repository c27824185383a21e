package planner

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/viam-labs/highwayroadmap/articulated"
	"github.com/viam-labs/highwayroadmap/bodytree"
	"github.com/viam-labs/highwayroadmap/geometry"
	"github.com/viam-labs/highwayroadmap/spatial"
)

func TestPlanArticulatedSolvesOneJointChain(t *testing.T) {
	base, err := geometry.NewSuperquadric(1, 1, 1, 1, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldBeNil)
	tree := bodytree.New(base, nil)
	p := New(golog.NewTestLogger(t), tree)

	chain := &articulated.Chain{Joints: []articulated.JointSpec{
		{Origin: spatial.NewZeroPose(), Axis: r3.Vector{Z: 1}, Min: -math.Pi, Max: math.Pi},
	}}
	linkShape, err := geometry.NewSuperquadric(0.2, 0.2, 0.2, 1, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldBeNil)
	arena, err := geometry.NewSuperquadric(10, 10, 10, 1, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldBeNil)

	sc := ArticulatedScene{
		LinkShapes: []*geometry.Superquadric{linkShape},
		Arenas:     []*geometry.Superquadric{arena},
		Start:      []float64{0},
		Goal:       []float64{0.5},
	}

	params := NewDefaultPlannerParameters()
	params.NumLayer = 3
	params.NumPoint = 4

	result, err := p.PlanArticulated(context.Background(), NewPlanningRequest(params), chain, sc, time.Now().Add(time.Second))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Solved, test.ShouldBeTrue)
}

func TestPlanArticulatedRejectsMissingArena(t *testing.T) {
	base, err := geometry.NewSuperquadric(1, 1, 1, 1, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldBeNil)
	tree := bodytree.New(base, nil)
	p := New(golog.NewTestLogger(t), tree)

	chain := &articulated.Chain{Joints: []articulated.JointSpec{
		{Origin: spatial.NewZeroPose(), Axis: r3.Vector{Z: 1}, Min: -math.Pi, Max: math.Pi},
	}}
	linkShape, err := geometry.NewSuperquadric(0.2, 0.2, 0.2, 1, 1, r3.Vector{}, mgl64.QuatIdent())
	test.That(t, err, test.ShouldBeNil)

	sc := ArticulatedScene{
		LinkShapes: []*geometry.Superquadric{linkShape},
		Arenas:     nil,
		Start:      []float64{0},
		Goal:       []float64{0.5},
	}

	_, err = p.PlanArticulated(context.Background(), NewPlanningRequest(NewDefaultPlannerParameters()), chain, sc, time.Now().Add(time.Second))
	test.That(t, err, test.ShouldNotBeNil)
}
