package articulated

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/viam-labs/highwayroadmap/spatial"
)

func TestSamplerStaysWithinRange(t *testing.T) {
	joints := []JointSpec{{Axis: r3.Vector{Z: 1}}, {Axis: r3.Vector{Z: 1}, Min: -1, Max: 1}}
	sampler := NewSampler(rand.New(rand.NewSource(1)), joints)

	for i := 0; i < 50; i++ {
		config := sampler.Sample()
		test.That(t, config[0], test.ShouldBeBetweenOrEqual, -math.Pi/2, math.Pi/2)
		test.That(t, config[1], test.ShouldBeBetweenOrEqual, -1.0, 1.0)
	}
}

func TestChainTransformsOneWorldPosePerJoint(t *testing.T) {
	chain := &Chain{Joints: []JointSpec{
		{Origin: spatial.NewPoseFromPoint(r3.Vector{X: 1}), Axis: r3.Vector{Z: 1}},
		{Origin: spatial.NewPoseFromPoint(r3.Vector{X: 1}), Axis: r3.Vector{Z: 1}},
	}}
	transforms := chain.Transforms([]float64{0, 0})
	test.That(t, len(transforms), test.ShouldEqual, 2)
	test.That(t, transforms[1].Point().X, test.ShouldAlmostEqual, 2.0)
}

func TestGrowUntilStopsWhenSolved(t *testing.T) {
	joints := []JointSpec{{Axis: r3.Vector{Z: 1}}}
	sampler := NewSampler(rand.New(rand.NewSource(2)), joints)

	calls := 0
	layers, solved, err := GrowUntil(context.Background(), time.Time{}, sampler, 10, func(config []float64) (bool, error) {
		calls++
		return calls == 3, nil
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, solved, test.ShouldBeTrue)
	test.That(t, len(layers), test.ShouldEqual, 3)
}

func TestGrowUntilRespectsDeadline(t *testing.T) {
	joints := []JointSpec{{Axis: r3.Vector{Z: 1}}}
	sampler := NewSampler(rand.New(rand.NewSource(3)), joints)

	deadline := time.Now().Add(-time.Second) // already passed
	layers, solved, err := GrowUntil(context.Background(), deadline, sampler, 100, func(config []float64) (bool, error) {
		return false, nil
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, solved, test.ShouldBeFalse)
	test.That(t, len(layers), test.ShouldEqual, 0)
}
