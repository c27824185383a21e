// Package interval implements set algebra over closed real intervals:
// union, intersection, and complement, the primitive the sweep-line
// decomposition builds its free-space computation on.
package interval

import "sort"

// Interval is a closed range [S,E] with S<=E.
type Interval struct {
	S, E float64
}

// byStart sorts a slice of intervals by start coordinate.
type byStart []Interval

func (b byStart) Len() int           { return len(b) }
func (b byStart) Less(i, j int) bool { return b[i].S < b[j].S }
func (b byStart) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

// Union merges overlapping or touching intervals into a sorted, disjoint
// set. The result is idempotent: Union(Union(a)) == Union(a).
func Union(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}
	sorted := append([]Interval(nil), in...)
	sort.Sort(byStart(sorted))

	out := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &out[len(out)-1]
		if cur.S <= last.E {
			if cur.E > last.E {
				last.E = cur.E
			}
			continue
		}
		out = append(out, cur)
	}
	return out
}

// Intersect folds the list pairwise: result = in[0] ∩ in[1] ∩ ... Each
// input is assumed already a single interval (e.g. the output of Union on
// a single obstacle's boundary samples at one sweep line); intervals that
// become empty are dropped.
func Intersect(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}
	cur := in[0]
	for _, next := range in[1:] {
		s := max(cur.S, next.S)
		e := min(cur.E, next.E)
		if s > e {
			return nil
		}
		cur = Interval{S: s, E: e}
	}
	return []Interval{cur}
}

// Complement returns domain \ holes, i.e. the portions of domain (itself a
// disjoint union, usually a single interval) not covered by the
// (already-unioned) holes, as a sorted disjoint union.
func Complement(domain []Interval, holes []Interval) []Interval {
	merged := Union(holes)
	var out []Interval
	for _, d := range domain {
		cursor := d.S
		for _, h := range merged {
			if h.E < cursor || h.S > d.E {
				continue
			}
			if h.S > cursor {
				out = append(out, Interval{S: cursor, E: h.S})
			}
			if h.E > cursor {
				cursor = h.E
			}
		}
		if cursor < d.E {
			out = append(out, Interval{S: cursor, E: d.E})
		}
	}
	return out
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
