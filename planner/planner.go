package planner

import (
	"context"
	"math"
	"time"

	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/viam-labs/highwayroadmap/bodytree"
	"github.com/viam-labs/highwayroadmap/boundary"
	"github.com/viam-labs/highwayroadmap/bridge"
	"github.com/viam-labs/highwayroadmap/geometry"
	"github.com/viam-labs/highwayroadmap/layergraph"
	"github.com/viam-labs/highwayroadmap/roadmap"
	"github.com/viam-labs/highwayroadmap/scene"
	"github.com/viam-labs/highwayroadmap/spatial"
	"github.com/viam-labs/highwayroadmap/sweep"
)

const intraLayerEps = 1e-6
const samplesPerBody = 48

// Planner ties the Highway Roadmap pipeline (A-I) together for one robot
// body tree: build the per-orientation intra-layer graphs, bridge adjacent
// layers, attach start/goal, and search. Logger is always injected, never
// global.
type Planner struct {
	logger golog.Logger
	tree   *bodytree.BodyTree
}

// New returns a Planner for the given body tree.
func New(logger golog.Logger, tree *bodytree.BodyTree) *Planner {
	return &Planner{logger: logger, tree: tree}
}

// Plan2D runs the full 2D pipeline (§4.A-H): per-orientation intra-layer
// graphs, TFE-bounded bridge edges between adjacent orientations, and A*
// search between the nearest start/goal graph vertices.
func (p *Planner) Plan2D(ctx context.Context, req PlanningRequest, sc scene.Scene2D) (PlanningResult, error) {
	start := time.Now()
	params := req.Params

	arenas, err := toShapes2D(sc.Arenas)
	if err != nil {
		return PlanningResult{}, errors.Wrap(err, "arenas")
	}
	obstacles, err := toShapes2D(sc.Obstacles)
	if err != nil {
		return PlanningResult{}, errors.Wrap(err, "obstacles")
	}
	if len(arenas) == 0 {
		return PlanningResult{}, newWrappedError(ErrDegenerateShape, "at least one arena required")
	}

	tree := p.tree
	if len(sc.Body) > 0 {
		tree, err = bodyTreeFrom2D(sc.Body)
		if err != nil {
			return PlanningResult{}, errors.Wrap(err, "body")
		}
	}

	orientations := uniformAngles(params.NumLayer)
	g := roadmap.New()

	layerOffsets := make([]int, len(orientations))
	layerVertices := make([][]layergraph.Vertex, len(orientations))
	layerWeights := make([]float64, 0)

	for li, theta := range orientations {
		tree.SetTransform(headingPose2D(theta))
		b, err := boundary.Build(tree, arenas, obstacles, samplesPerBody)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "layer %d boundary", li)
		}

		fs, err := sweep.Decompose2D(sweep.Wrap(b.Arena), sweep.Wrap(b.Obstacle), params.NumLineY)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "layer %d decomposition", li)
		}
		sweep.Enhance(fs)

		vertices := layergraph.GenerateVertices(fs, []float64{theta})
		edges := layergraph.ConnectIntraLayer(fs, vertices, intraLayerEps)

		offset := g.NumVertices()
		for _, v := range vertices {
			g.AddVertex(v.Coord)
		}
		for _, e := range edges {
			g.AddEdge(int64(offset+e.From), int64(offset+e.To), e.Weight)
			layerWeights = append(layerWeights, e.Weight)
		}

		layerOffsets[li] = offset
		layerVertices[li] = vertices

		p.logger.Debugf("layer %d (theta=%.4f): %d vertices, %d edges", li, theta, len(vertices), len(edges))
	}

	strategy := bridgeStrategyFrom(params.BridgeStrategyName)
	limit := params.BoundLimit[1] / float64(params.NumLineY)

	for li := 0; li+1 < len(orientations); li++ {
		poseA := headingPose2D(orientations[li])
		poseB := headingPose2D(orientations[li+1])

		tfes, err := bridge.BuildTFEs2D(tree, poseA, poseB, params.NumPoint)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "bridge %d-%d TFE", li, li+1)
		}
		middleTree := tfeTree2D(tfes, tree)
		middleTree.SetTransform(spatial.NewZeroPose())

		midBoundary, err := boundary.Build(middleTree, arenas, obstacles, samplesPerBody)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "bridge %d-%d boundary", li, li+1)
		}
		midFS, err := sweep.Decompose2D(sweep.Wrap(midBoundary.Arena), sweep.Wrap(midBoundary.Obstacle), params.NumLineY)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "bridge %d-%d decomposition", li, li+1)
		}

		conns := bridge.BuildBridgeEdges(strategy, midFS, layerVertices[li], layerVertices[li+1], limit, params.NumPoint)
		for _, c := range conns {
			a := int64(layerOffsets[li] + c.IndexA)
			b := int64(layerOffsets[li+1] + c.IndexB)
			if c.Mid != nil {
				midID := g.AddVertex(c.Mid.Coord)
				g.AddEdge(a, midID, c.Weight/2)
				g.AddEdge(midID, b, c.Weight/2)
			} else {
				g.AddEdge(a, b, c.Weight)
			}
			layerWeights = append(layerWeights, c.Weight)
		}
	}

	logWeightDiagnostics(p.logger, layerWeights)
	buildTime := time.Since(start)

	searchStart := time.Now()
	result, err := p.attachAndSearch(ctx, g, sc.Start[:], sc.Goal[:], params)
	searchTime := time.Since(searchStart)

	if err != nil {
		return PlanningResult{}, err
	}

	result.RequestID = req.ID
	result.NumVertices = g.NumVertices()
	result.BuildTime = buildTime
	result.SearchTime = searchTime
	result.TotalTime = time.Since(start)
	return result, nil
}

// attachAndSearch finds the k nearest graph vertices to start and goal,
// tries every (start-neighbour, goal-neighbour) pair in order, and returns
// the first solved path, or an unsolved result with cost +Inf if every
// pair is disconnected or no neighbours exist within radius.
func (p *Planner) attachAndSearch(ctx context.Context, g *roadmap.Graph, start, goal []float64, params PlannerParameters) (PlanningResult, error) {
	startCandidates, err := roadmap.NearestNeighbors(ctx, g, start, params.NumSearchNeighbor, params.SearchRadius)
	if err != nil {
		return PlanningResult{}, errors.Wrap(err, "start attachment")
	}
	goalCandidates, err := roadmap.NearestNeighbors(ctx, g, goal, params.NumSearchNeighbor, params.SearchRadius)
	if err != nil {
		return PlanningResult{}, errors.Wrap(err, "goal attachment")
	}

	if len(startCandidates) == 0 || len(goalCandidates) == 0 {
		return unsolvedResult(), nil
	}

	for _, s := range startCandidates {
		for _, gl := range goalCandidates {
			res := roadmap.Search(g, s, gl)
			found, ok := res.(roadmap.Found)
			if !ok {
				continue
			}
			path := roadmap.ReconstructPath(found, s, gl)
			if path == nil {
				continue
			}
			coords := make([][]float64, len(path))
			for i, id := range path {
				coords[i] = g.Coord(id)
			}
			return PlanningResult{
				Solved:           true,
				Cost:             found.DistanceToGoal,
				PathIDs:          path,
				PathCoordinates:  coords,
				InterpolatedPath: interpolateConfigPath(coords, params.NumPoint),
				NumEdges:         len(path) - 1,
			}, nil
		}
	}

	return unsolvedResult(), nil
}

func unsolvedResult() PlanningResult {
	return PlanningResult{Solved: false, Cost: math.Inf(1)}
}

func toShapes2D(records []scene.SuperellipseRecord) ([]bodytree.Shape, error) {
	out := make([]bodytree.Shape, 0, len(records))
	for _, r := range records {
		s, err := geometry.NewSuperellipse(r.A0, r.A1, r.Eps, r.Point2D(), r.Theta)
		if err != nil {
			return nil, newWrappedError(ErrDegenerateShape, err.Error())
		}
		out = append(out, s)
	}
	return out, nil
}

// bodyTreeFrom2D builds a BodyTree from scene-supplied body records: the
// first record is the base, every later record becomes a link whose
// Relative pose is that record's own (X, Y, Theta) offset from the base,
// since the flat record list carries no explicit parent/child transforms.
// Each shape itself is constructed at the origin; position comes entirely
// from the link's Relative pose (or, for the base, from the tree's own
// SetTransform).
func bodyTreeFrom2D(records []scene.SuperellipseRecord) (*bodytree.BodyTree, error) {
	base, err := geometry.NewSuperellipse(records[0].A0, records[0].A1, records[0].Eps, r2.Point{}, 0)
	if err != nil {
		return nil, newWrappedError(ErrDegenerateShape, err.Error())
	}

	links := make([]bodytree.Link, 0, len(records)-1)
	for _, r := range records[1:] {
		shape, err := geometry.NewSuperellipse(r.A0, r.A1, r.Eps, r2.Point{}, 0)
		if err != nil {
			return nil, newWrappedError(ErrDegenerateShape, err.Error())
		}
		relative, err := spatial.NewPose(r3.Vector{X: r.X, Y: r.Y}, headingQuat(r.Theta))
		if err != nil {
			return nil, newWrappedError(ErrDegenerateShape, err.Error())
		}
		links = append(links, bodytree.Link{Body: shape, Relative: relative})
	}
	return bodytree.New(base, links), nil
}

func headingPose2D(theta float64) spatial.Pose {
	pose, err := spatial.NewPose(r3.Vector{}, headingQuat(theta))
	if err != nil {
		return spatial.NewZeroPose()
	}
	return pose
}

func uniformAngles(n int) []float64 {
	if n <= 1 {
		return []float64{0}
	}
	out := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for i := range out {
		out[i] = -math.Pi + float64(i)*step
	}
	return out
}

func tfeTree2D(tfes []*geometry.Superellipse, orig *bodytree.BodyTree) *bodytree.BodyTree {
	relatives := orig.RelativeTransforms()
	links := make([]bodytree.Link, 0, len(tfes)-1)
	for i := 1; i < len(tfes); i++ {
		links = append(links, bodytree.Link{Body: tfes[i], Relative: relatives[i]})
	}
	return bodytree.New(tfes[0], links)
}

func bridgeStrategyFrom(name string) bridge.Strategy {
	if name == "KC" {
		return bridge.KCStrategy
	}
	return bridge.TFEStrategy
}

// logWeightDiagnostics logs mean/stddev of accumulated edge weights at
// Debug level, a post-hoc signal for tuning sweep-line density.
func logWeightDiagnostics(logger golog.Logger, weights []float64) {
	if len(weights) == 0 {
		return
	}
	mean, err := stats.Mean(weights)
	if err != nil {
		return
	}
	stdev, err := stats.StandardDeviation(weights)
	if err != nil {
		return
	}
	logger.Debugf("edge weights: n=%d mean=%.4f stddev=%.4f", len(weights), mean, stdev)
}

func headingQuat(theta float64) mgl64.Quat {
	return mgl64.AnglesToQuat(0, 0, theta, mgl64.XYZ)
}
