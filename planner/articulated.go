package planner

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/viam-labs/highwayroadmap/articulated"
	"github.com/viam-labs/highwayroadmap/geometry"
	"github.com/viam-labs/highwayroadmap/roadmap"
)

// ArticulatedScene bundles what PlanArticulated needs beyond the joint
// chain itself: per-joint bounding shapes (one superquadric per link,
// indexed the same as chain.Joints) and the obstacle/arena shapes every
// link's origin is checked against.
type ArticulatedScene struct {
	LinkShapes []*geometry.Superquadric
	Arenas     []*geometry.Superquadric
	Obstacles  []*geometry.Superquadric
	Start      []float64
	Goal       []float64
}

// PlanArticulated grows an incremental roadmap one sampled joint
// configuration at a time, the articulated counterpart to Plan2D/Plan3D's
// per-orientation layering. Each accepted configuration becomes one vertex,
// connected to every previously accepted vertex within SearchRadius whose
// straight-line interpolation stays collision-free; this trades the full
// sweep/bridge machinery for a PRM-style connection test, appropriate since
// an articulated chain's configuration space has no natural sweep-line
// axis the way a single rigid body's translation does. Collision checks
// test each link's origin and the tip of its bounding shape's longest
// semi-axis against the scene shapes, a coarse stand-in for the link's
// full swept volume rather than an exact containment test.
func (p *Planner) PlanArticulated(ctx context.Context, req PlanningRequest, chain *articulated.Chain, sc ArticulatedScene, deadline time.Time) (PlanningResult, error) {
	start := time.Now()
	params := req.Params

	if len(sc.Arenas) == 0 {
		return PlanningResult{}, newWrappedError(ErrDegenerateShape, "at least one arena required")
	}
	if len(sc.LinkShapes) != len(chain.Joints) {
		return PlanningResult{}, newWrappedError(ErrInfeasibleQuery, "one link shape required per joint")
	}

	// pointFree checks one world point against the arena/obstacle set: it
	// must lie inside at least one arena and outside every obstacle.
	pointFree := func(pt r3.Vector) bool {
		inArena := false
		for _, arena := range sc.Arenas {
			if arena.Contains(pt) {
				inArena = true
				break
			}
		}
		if !inArena {
			return false
		}
		for _, obstacle := range sc.Obstacles {
			if obstacle.Contains(pt) {
				return false
			}
		}
		return true
	}

	// collisionFree checks every link's origin and the tip of its bounding
	// shape's longest semi-axis (a coarse stand-in for the link's full
	// swept volume), the same kind of representative-point simplification
	// bridge.ValidateTransitions makes for rigid-body transitions.
	collisionFree := func(config []float64) bool {
		for i, pose := range chain.Transforms(config) {
			if !pointFree(pose.Point()) {
				return false
			}
			tipLocal := longestSemiAxis(sc.LinkShapes[i])
			tipWorld := pose.Orientation().Rotate(tipLocal)
			tip := pose.Point().Add(r3.Vector{X: tipWorld[0], Y: tipWorld[1], Z: tipWorld[2]})
			if !pointFree(tip) {
				return false
			}
		}
		return true
	}

	g := roadmap.New()
	vertexConfigs := make(map[int64][]float64)

	addIfFree := func(config []float64) (int64, bool) {
		if !collisionFree(config) {
			return 0, false
		}
		id := g.AddVertex(config)
		vertexConfigs[id] = config
		for other, oc := range vertexConfigs {
			if other == id {
				continue
			}
			if configDistance(config, oc) > params.SearchRadius {
				continue
			}
			if !segmentCollisionFree(config, oc, collisionFree, params.NumPoint) {
				continue
			}
			g.AddEdge(id, other, configDistance(config, oc))
		}
		return id, true
	}

	startID, ok := addIfFree(sc.Start)
	if !ok {
		return unsolvedResult(), newWrappedError(ErrInfeasibleQuery, "start configuration is in collision")
	}
	goalID, ok := addIfFree(sc.Goal)
	if !ok {
		return unsolvedResult(), newWrappedError(ErrInfeasibleQuery, "goal configuration is in collision")
	}

	sampler := articulated.NewSampler(rand.New(rand.NewSource(1)), chain.Joints)
	solved := false

	build := func(config []float64) (bool, error) {
		if _, ok := addIfFree(config); !ok {
			return false, nil
		}
		res := roadmap.Search(g, startID, goalID)
		if _, isFound := res.(roadmap.Found); isFound {
			solved = true
		}
		return solved, nil
	}

	maxLayers := params.NumLayer * params.NumLayer
	if maxLayers < 1 {
		maxLayers = 1
	}
	layers, _, err := articulated.GrowUntil(ctx, deadline, sampler, maxLayers, build)
	if err != nil && len(layers) == 0 {
		return PlanningResult{}, errors.Wrap(err, "articulated growth")
	}
	p.logger.Debugf("articulated growth: %d layers, solved=%v", len(layers), solved)

	buildTime := time.Since(start)
	searchStart := time.Now()

	res := roadmap.Search(g, startID, goalID)
	found, ok := res.(roadmap.Found)
	searchTime := time.Since(searchStart)
	if !ok {
		return PlanningResult{
			RequestID:   req.ID,
			Solved:      false,
			Cost:        unsolvedResult().Cost,
			NumVertices: g.NumVertices(),
			BuildTime:   buildTime,
			SearchTime:  searchTime,
			TotalTime:   time.Since(start),
		}, nil
	}

	path := roadmap.ReconstructPath(found, startID, goalID)
	coords := make([][]float64, len(path))
	for i, id := range path {
		coords[i] = g.Coord(id)
	}

	return PlanningResult{
		RequestID:        req.ID,
		Solved:           true,
		Cost:             found.DistanceToGoal,
		PathIDs:          path,
		PathCoordinates:  coords,
		InterpolatedPath: interpolateConfigPath(coords, params.NumPoint),
		NumVertices:      g.NumVertices(),
		NumEdges:         len(path) - 1,
		BuildTime:        buildTime,
		SearchTime:       searchTime,
		TotalTime:        time.Since(start),
	}, nil
}

func configDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func segmentCollisionFree(a, b []float64, collisionFree func([]float64) bool, steps int) bool {
	if steps < 1 {
		steps = 1
	}
	for k := 0; k <= steps; k++ {
		by := float64(k) / float64(steps)
		config := lerpVec(a, b, by)
		if !collisionFree(config) {
			return false
		}
	}
	return true
}

// longestSemiAxis returns the tip of shape's longest semi-axis in the link's
// local frame.
func longestSemiAxis(shape *geometry.Superquadric) mgl64.Vec3 {
	axes := shape.SemiAxes()
	best := 0
	for i, a := range axes {
		if a > axes[best] {
			best = i
		}
	}
	var tip mgl64.Vec3
	tip[best] = axes[best]
	return tip
}
