package articulated

import (
	"context"
	"time"

	"go.uber.org/multierr"
)

// BuildFunc constructs one layer from a sampled configuration and reports
// whether that layer completed the roadmap (a start-goal path now exists).
type BuildFunc func(config []float64) (solved bool, err error)

// GrowUntil samples one joint configuration at a time and calls build for
// each, accumulating layers, until: ctx is cancelled, deadline passes,
// build reports solved, or maxLayers is reached. Per-configuration build
// failures are aggregated with multierr rather than aborting the run, so a
// single degenerate sample doesn't sink the whole incremental search.
func GrowUntil(ctx context.Context, deadline time.Time, sampler *Sampler, maxLayers int, build BuildFunc) (layers [][]float64, solved bool, err error) {
	for len(layers) < maxLayers {
		select {
		case <-ctx.Done():
			return layers, solved, multierr.Append(err, ctx.Err())
		default:
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return layers, solved, err
		}

		config := sampler.Sample()
		ok, buildErr := build(config)
		if buildErr != nil {
			err = multierr.Append(err, buildErr)
			continue
		}

		layers = append(layers, config)
		if ok {
			return layers, true, err
		}
	}
	return layers, solved, err
}
