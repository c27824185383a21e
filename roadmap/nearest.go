package roadmap

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// defaultParallelNeighbors is the candidate-count threshold above which
// NearestNeighbors fans out across goroutines.
const defaultParallelNeighbors = 1000

// NearestNeighbors finds the k nearest graph vertices to target within
// radius, sizing its worker pool the way the teacher's nearest-neighbor
// search does (nCPU = max(1, NumCPU/4)).
func NearestNeighbors(ctx context.Context, g *Graph, target []float64, k int, radius float64) ([]int64, error) {
	nm := newNeighborManager(intMax(1, runtime.NumCPU()/4), defaultParallelNeighbors)
	return nm.NearestNeighbors(ctx, g, target, k, radius)
}

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// neighborManager finds the k nearest graph vertices to a query coordinate
// within radius r, splitting the candidate set across nCPU goroutines once
// it exceeds parallelNeighbors; below that threshold the scan runs serially
// to avoid paying goroutine overhead on small graphs.
type neighborManager struct {
	nCPU              int
	parallelNeighbors int
}

// newNeighborManager returns a manager sized for the host's available
// parallelism, following the nearest-neighbor search's own sizing
// convention of nCPU = max(1, NumCPU/4).
func newNeighborManager(nCPU, parallelNeighbors int) *neighborManager {
	if nCPU < 1 {
		nCPU = 1
	}
	return &neighborManager{nCPU: nCPU, parallelNeighbors: parallelNeighbors}
}

type scored struct {
	id   int64
	dist float64
}

// NearestNeighbors returns up to k vertex IDs within radius of target,
// sorted nearest-first.
func (nm *neighborManager) NearestNeighbors(ctx context.Context, g *Graph, target []float64, k int, radius float64) ([]int64, error) {
	ids := g.VertexIDs()
	if len(ids) == 0 {
		return nil, nil
	}

	var candidates []scored
	if len(ids) <= nm.parallelNeighbors {
		candidates = scoreChunk(g, target, ids, radius)
	} else {
		var err error
		candidates, err = nm.scoreParallel(ctx, g, target, ids, radius)
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	out := make([]int64, len(candidates))
	for i, c := range candidates {
		out[i] = c.id
	}
	return out, nil
}

func (nm *neighborManager) scoreParallel(ctx context.Context, g *Graph, target []float64, ids []int64, radius float64) ([]scored, error) {
	chunks := splitChunks(ids, nm.nCPU)
	results := make([][]scored, len(chunks))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}
			results[i] = scoreChunk(g, target, chunk, radius)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var merged []scored
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}

func scoreChunk(g *Graph, target []float64, ids []int64, radius float64) []scored {
	var out []scored
	for _, id := range ids {
		d := euclidean(target, g.Coord(id))
		if d <= radius {
			out = append(out, scored{id: id, dist: d})
		}
	}
	return out
}

func splitChunks(ids []int64, n int) [][]int64 {
	if n < 1 {
		n = 1
	}
	if n > len(ids) {
		n = len(ids)
	}
	if n == 0 {
		return nil
	}
	size := (len(ids) + n - 1) / n
	chunks := make([][]int64, 0, n)
	for i := 0; i < len(ids); i += size {
		end := i + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[i:end])
	}
	return chunks
}
