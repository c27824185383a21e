package planner

import "github.com/pkg/errors"

// ErrDegenerateShape is returned when a scene or body definition collapses
// to a zero-volume or non-finite shape: fatal for the planner instance that
// hit it.
var ErrDegenerateShape = errors.New("planner: degenerate shape parameters")

// ErrInfeasibleQuery is returned when the start or goal pose lies outside
// every arena or inside an obstacle. Not fatal: the result reports
// solved=false with an infinite cost rather than aborting the caller.
var ErrInfeasibleQuery = errors.New("planner: start or goal pose is infeasible")

// newWrappedError attaches per-call context to one of this package's
// sentinel errors, giving every call site a single place to do so instead
// of calling errors.Wrap directly against the sentinel.
func newWrappedError(sentinel error, context string) error {
	return errors.Wrap(sentinel, context)
}
