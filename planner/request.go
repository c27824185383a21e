package planner

import (
	"time"

	"github.com/google/uuid"
)

// PlanningRequest carries a planning run's ID and parameter set. It does
// not hold the scene, start or goal: Plan2D, Plan3D and PlanArticulated
// take those as separate arguments. ID lets a caller that tracks many runs
// tell them apart.
type PlanningRequest struct {
	ID     uuid.UUID
	Params PlannerParameters
}

// NewPlanningRequest returns a request with a freshly generated ID.
func NewPlanningRequest(params PlannerParameters) PlanningRequest {
	return PlanningRequest{ID: uuid.New(), Params: params}
}

// PlanningResult is the outcome of a planning run: whether it solved,
// the discovered path (vertex IDs, configuration coordinates, and an
// interpolated path at NumPoint steps per edge), and timing breakdown.
type PlanningResult struct {
	RequestID uuid.UUID
	Solved    bool
	Cost      float64

	PathIDs          []int64
	PathCoordinates  [][]float64
	InterpolatedPath [][]float64

	NumVertices int
	NumEdges    int

	BuildTime  time.Duration
	SearchTime time.Duration
	TotalTime  time.Duration
}
