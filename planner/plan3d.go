package planner

import (
	"context"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
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

// Plan3D is the 3D analogue of Plan2D: per-orientation nested x/y/z
// decomposition, TFE-bounded bridge edges between adjacent orientations, and
// A* search. It trades some of Plan2D's fidelity for tractable scope: the
// inner (y, z) layers at adjacent x-planes connect by proximity rather than
// a full generalized half-curve overlap test, and bridge validation checks
// translation only, not every link's centre (matching bridge.ValidateTransitions'
// own documented simplification).
func (p *Planner) Plan3D(ctx context.Context, req PlanningRequest, sc scene.Scene3D) (PlanningResult, error) {
	start := time.Now()
	params := req.Params

	arenas, err := toShapes3D(sc.Arenas)
	if err != nil {
		return PlanningResult{}, errors.Wrap(err, "arenas")
	}
	obstacles, err := toShapes3D(sc.Obstacles)
	if err != nil {
		return PlanningResult{}, errors.Wrap(err, "obstacles")
	}
	if len(arenas) == 0 {
		return PlanningResult{}, newWrappedError(ErrDegenerateShape, "at least one arena required")
	}

	tree := p.tree
	if len(sc.Body) > 0 {
		tree, err = bodyTreeFrom3D(sc.Body)
		if err != nil {
			return PlanningResult{}, errors.Wrap(err, "body")
		}
	}

	orientations := uniformQuaternions(params.NumLayer)
	g := roadmap.New()

	layerOffsets := make([]int, len(orientations))
	layerVertices := make([][]layergraph.Vertex, len(orientations))
	layerWeights := make([]float64, 0)
	xAdjTol := params.BoundLimit[1] / float64(params.NumLineX)

	for li, quat := range orientations {
		tree.SetTransform(headingPose3D(quat))
		b, err := boundary.Build(tree, arenas, obstacles, samplesPerBody)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "layer %d boundary", li)
		}

		fs3, err := sweep.Decompose3D(sweep.Wrap(b.Arena), sweep.Wrap(b.Obstacle), params.NumLineX, params.NumLineY)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "layer %d decomposition", li)
		}

		var vertices []layergraph.Vertex
		var edges []layergraph.Edge
		var prevVerts []layergraph.Vertex
		prevBase := 0

		for xi, layer := range fs3.Layers {
			sweep.Enhance(layer)
			localVerts := vertices3D(layer, fs3.X[xi], quat)
			base := len(vertices)

			localEdges := layergraph.ConnectIntraLayer(layer, localVerts, intraLayerEps)
			for _, e := range localEdges {
				edges = append(edges, layergraph.Edge{From: base + e.From, To: base + e.To, Weight: e.Weight})
			}
			if xi > 0 {
				edges = append(edges, connectAdjacentXLayers(prevVerts, localVerts, prevBase, base, xAdjTol)...)
			}

			vertices = append(vertices, localVerts...)
			prevVerts, prevBase = localVerts, base
		}

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

		p.logger.Debugf("3D layer %d: %d vertices, %d edges", li, len(vertices), len(edges))
	}

	strategy := bridgeStrategyFrom(params.BridgeStrategyName)
	limit := params.BoundLimit[1] / float64(params.NumLineY)

	for li := 0; li+1 < len(orientations); li++ {
		poseA := headingPose3D(orientations[li])
		poseB := headingPose3D(orientations[li+1])

		tfes, err := bridge.BuildTFEs3D(tree, poseA, poseB, params.NumPoint)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "bridge %d-%d TFE", li, li+1)
		}
		middleTree := tfeTree3D(tfes, tree)
		middleTree.SetTransform(spatial.NewZeroPose())

		midBoundary, err := boundary.Build(middleTree, arenas, obstacles, samplesPerBody)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "bridge %d-%d boundary", li, li+1)
		}
		midFS3, err := sweep.Decompose3D(sweep.Wrap(midBoundary.Arena), sweep.Wrap(midBoundary.Obstacle), params.NumLineX, params.NumLineY)
		if err != nil {
			return PlanningResult{}, errors.Wrapf(err, "bridge %d-%d decomposition", li, li+1)
		}

		conns := bridge.BuildBridgeEdges3D(strategy, midFS3, layerVertices[li], layerVertices[li+1], limit, params.NumPoint)
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

// vertices3D emits one vertex per free interval in layer, at outer position
// x and orientation quat, with coordinate (x, y, z, qw, qx, qy, qz) matching
// Scene3D's Start/Goal layout.
func vertices3D(layer *sweep.FreeSegment2D, x float64, quat mgl64.Quat) []layergraph.Vertex {
	var out []layergraph.Vertex
	for i := range layer.Y {
		for j := range layer.XM[i] {
			coord := []float64{x, layer.XM[i][j], layer.Y[i], quat.W, quat.V[0], quat.V[1], quat.V[2]}
			out = append(out, layergraph.Vertex{Coord: coord, Line: i, Seg: j})
		}
	}
	return out
}

// connectAdjacentXLayers links vertices across two neighbouring outer
// x-planes whenever their (y, z) positions lie within tol of each other.
// This is a proximity approximation of the half-curve overlap test
// ConnectIntraLayer runs within a single plane; a generalized 3D overlap
// test would need the full sweep boundary rather than its windowed-
// projection approximation (see sweep.Decompose3D), so proximity is what
// the available decomposition can support.
func connectAdjacentXLayers(prev, cur []layergraph.Vertex, prevBase, curBase int, tol float64) []layergraph.Edge {
	var out []layergraph.Edge
	for i, pv := range prev {
		for j, cv := range cur {
			dy := pv.Coord[1] - cv.Coord[1]
			dz := pv.Coord[2] - cv.Coord[2]
			if math.Hypot(dy, dz) > tol {
				continue
			}
			out = append(out, layergraph.Edge{From: prevBase + i, To: curBase + j, Weight: euclidean7(pv.Coord, cv.Coord)})
		}
	}
	return out
}

func euclidean7(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func toShapes3D(records []scene.SuperquadricRecord) ([]bodytree.Shape, error) {
	out := make([]bodytree.Shape, 0, len(records))
	for _, r := range records {
		s, err := geometry.NewSuperquadric(r.A0, r.A1, r.A2, r.Eps1, r.Eps2, r.Point3D(), r.Quat())
		if err != nil {
			return nil, newWrappedError(ErrDegenerateShape, err.Error())
		}
		out = append(out, s)
	}
	return out, nil
}

// bodyTreeFrom3D is the 3D analogue of bodyTreeFrom2D: the first record is
// the base, every later record a link whose Relative pose is that record's
// own (X, Y, Z, quaternion) offset from the base.
func bodyTreeFrom3D(records []scene.SuperquadricRecord) (*bodytree.BodyTree, error) {
	base, err := geometry.NewSuperquadric(records[0].A0, records[0].A1, records[0].A2, records[0].Eps1, records[0].Eps2, r3.Vector{}, mgl64.QuatIdent())
	if err != nil {
		return nil, newWrappedError(ErrDegenerateShape, err.Error())
	}

	links := make([]bodytree.Link, 0, len(records)-1)
	for _, r := range records[1:] {
		shape, err := geometry.NewSuperquadric(r.A0, r.A1, r.A2, r.Eps1, r.Eps2, r3.Vector{}, mgl64.QuatIdent())
		if err != nil {
			return nil, newWrappedError(ErrDegenerateShape, err.Error())
		}
		relative, err := spatial.NewPose(r.Point3D(), r.Quat())
		if err != nil {
			return nil, newWrappedError(ErrDegenerateShape, err.Error())
		}
		links = append(links, bodytree.Link{Body: shape, Relative: relative})
	}
	return bodytree.New(base, links), nil
}

func headingPose3D(quat mgl64.Quat) spatial.Pose {
	pose, err := spatial.NewPose(r3.Vector{}, quat)
	if err != nil {
		return spatial.NewZeroPose()
	}
	return pose
}

// uniformQuaternions spaces NumLayer orientations evenly about the z axis,
// reusing the 2D layer's even-angle convention instead of sampling uniform
// random points on SO(3): deterministic layer counts make bridging and
// testing predictable, at the cost of only exploring rotation about one axis.
func uniformQuaternions(n int) []mgl64.Quat {
	angles := uniformAngles(n)
	out := make([]mgl64.Quat, len(angles))
	for i, a := range angles {
		out[i] = headingQuat(a)
	}
	return out
}

func tfeTree3D(tfes []*geometry.Superquadric, orig *bodytree.BodyTree) *bodytree.BodyTree {
	relatives := orig.RelativeTransforms()
	links := make([]bodytree.Link, 0, len(tfes)-1)
	for i := 1; i < len(tfes); i++ {
		links = append(links, bodytree.Link{Body: tfes[i], Relative: relatives[i]})
	}
	return bodytree.New(tfes[0], links)
}
