package interval

import (
	"testing"

	"go.viam.com/test"
)

func TestUnionMergesOverlapping(t *testing.T) {
	result := Union([]Interval{{1, 3}, {2, 4}, {6, 7}})
	test.That(t, result, test.ShouldResemble, []Interval{{1, 4}, {6, 7}})
}

func TestUnionIdempotent(t *testing.T) {
	in := []Interval{{1, 3}, {2, 4}, {6, 7}}
	once := Union(in)
	twice := Union(once)
	test.That(t, twice, test.ShouldResemble, once)
}

func TestComplement(t *testing.T) {
	result := Complement([]Interval{{0, 10}}, []Interval{{2, 3}, {5, 7}})
	test.That(t, result, test.ShouldResemble, []Interval{{0, 2}, {3, 5}, {7, 10}})
}

func TestIntersect(t *testing.T) {
	result := Intersect([]Interval{{0, 5}, {2, 8}, {-1, 4}})
	test.That(t, result, test.ShouldResemble, []Interval{{2, 4}})
}

func TestIntersectEmpty(t *testing.T) {
	result := Intersect([]Interval{{0, 1}, {2, 3}})
	test.That(t, result, test.ShouldBeNil)
}

func TestComplementCoversDomain(t *testing.T) {
	// complement(D, holes) U holes should cover D, up to interval
	// boundaries (spec idempotence property).
	domain := []Interval{{0, 10}}
	holes := []Interval{{2, 3}, {5, 7}}
	free := Complement(domain, holes)

	covered := append(append([]Interval{}, free...), holes...)
	merged := Union(covered)
	test.That(t, len(merged), test.ShouldEqual, 1)
	test.That(t, merged[0].S, test.ShouldAlmostEqual, 0.0)
	test.That(t, merged[0].E, test.ShouldAlmostEqual, 10.0)
}
