package roadmap

import "container/heap"

// Result is the outcome of a Search: either Found, carrying the
// predecessor map and cost to reconstruct the path, or Exhausted, meaning
// the open set emptied before the goal was reached.
type Result interface {
	isResult()
}

// Found reports a successful search. Predecessors maps each visited vertex
// to the vertex A* reached it from; reconstructing the path means walking
// Predecessors from the goal back to the start and reversing.
type Found struct {
	Predecessors   map[int64]int64
	DistanceToGoal float64
}

// Exhausted reports that no path exists between start and goal in the
// searched component.
type Exhausted struct{}

func (Found) isResult()     {}
func (Exhausted) isResult() {}

// Search runs A* from start to goal with heuristic h(v) = Euclidean(coord(v),
// coord(goal)), aborting as soon as goal is popped from the open set.
func Search(g *Graph, start, goal int64) Result {
	if start == goal {
		return Found{Predecessors: map[int64]int64{}, DistanceToGoal: 0}
	}

	goalCoord := g.Coord(goal)
	heuristic := func(id int64) float64 { return euclidean(g.Coord(id), goalCoord) }

	open := &priorityQueue{}
	heap.Init(open)
	heap.Push(open, &searchItem{id: start, f: heuristic(start)})

	gScore := map[int64]float64{start: 0}
	predecessors := map[int64]int64{}
	visited := map[int64]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchItem)
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true

		if cur.id == goal {
			return Found{Predecessors: predecessors, DistanceToGoal: gScore[goal]}
		}

		neighbors := g.g.From(cur.id)
		for neighbors.Next() {
			next := neighbors.Node().ID()
			if visited[next] {
				continue
			}
			edge := g.g.WeightedEdge(cur.id, next)
			tentative := gScore[cur.id] + edge.Weight()
			if old, ok := gScore[next]; !ok || tentative < old {
				gScore[next] = tentative
				predecessors[next] = cur.id
				heap.Push(open, &searchItem{id: next, f: tentative + heuristic(next)})
			}
		}
	}

	return Exhausted{}
}

// ReconstructPath walks Predecessors from goal back to start and returns
// the vertex sequence start-to-goal.
func ReconstructPath(found Found, start, goal int64) []int64 {
	path := []int64{goal}
	cur := goal
	for cur != start {
		prev, ok := found.Predecessors[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type searchItem struct {
	id    int64
	f     float64
	index int
}

type priorityQueue []*searchItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i]; pq[i].index = i; pq[j].index = j }
func (pq *priorityQueue) Push(x interface{}) {
	it := x.(*searchItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}
