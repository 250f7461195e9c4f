package dac

import (
	"sort"

	"github.com/pkg/errors"
)

// Solve computes the convex hull of the given points. The input slice is not
// modified; sorting and deduplication happen on a private copy of the slice
// header, and the recursion then runs over half-open index ranges of that
// immutable order. Point values are shared, never copied or mutated.
//
// Zero points is an input error. Internal invariant violations (which can
// only mean a geometry bug) panic with a HullError; callers that want them
// as errors should go through the public convexhull package.
func Solve(points []*Point) (*Hull, error) {
	if len(points) == 0 {
		return nil, errors.New("no points to hull")
	}
	sorted := sortAndDedup(points)
	return solveRange(sorted, 0, len(sorted)), nil
}

// sortAndDedup orders points by (x, y) and removes exact coordinate
// duplicates. Ties on coordinates are broken by original index, so the
// surviving duplicate is always the one that appeared first in the input and
// the output index sequence is deterministic.
func sortAndDedup(points []*Point) []*Point {
	sorted := make([]*Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Index < b.Index
	})

	unique := sorted[:0]
	var last *Point
	for _, p := range sorted {
		if last == nil || !sameCoords(p, last) {
			unique = append(unique, p)
			last = p
		}
	}
	return unique
}

// solveRange is the divide-and-conquer driver over pts[lo:hi). Ranges of at
// most three points are terminal; larger ranges split at the midpoint and
// merge the two sub-hulls by tangents. Depth is O(log n) and each level does
// O(hull size) merge work, for O(n log n) overall.
func solveRange(pts []*Point, lo, hi int) *Hull {
	if hi-lo <= 3 {
		return baseCaseHull(pts, lo, hi)
	}
	mid := lo + (hi-lo)/2
	left := solveRange(pts, lo, mid)
	right := solveRange(pts, mid, hi)
	return mergeHulls(left, right)
}

// Indices returns the hull's vertices as original input indices, CCW, with
// no repeated final vertex. This is the output contract consumed by the
// index writer.
func (h *Hull) Indices() []int {
	indices := make([]int, len(h.Points))
	for i, p := range h.Points {
		indices[i] = p.Index
	}
	return indices
}
