// A divide-and-conquer convex hull package for Go.
//
// This package computes the convex hull of a finite set of 2D points in
// O(n log n): the point set is sorted once by x (ties by y), split
// recursively into halves, and the half hulls are merged by finding the
// upper and lower tangent lines between them and splicing the outer arcs.
// Collinear, duplicate, and degenerate (1- and 2-point) inputs are all
// handled exactly, with no floating point tolerance.
package convexhull

import "github.com/xwalton/convexhull/dac"

type Point = dac.Point
type Hull = dac.Hull

// Compute the convex hull of a set of points, returned as indices into the
// input slice, one per hull vertex, in counterclockwise order with no
// repeated final vertex. Exact duplicate points are allowed (the earliest
// occurrence is reported). An empty input is an error.
//
// Internal invariant violations in the geometry are surfaced as errors here
// rather than panics; any other panic propagates.
func ConvexHull(points []Point) (indices []int, err error) {
	defer func() {
		recoveredErr := dac.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			indices = nil
			err = recoveredErr
		}
	}()

	pts := make([]*Point, len(points))
	for i := range points {
		pts[i] = &Point{X: points[i].X, Y: points[i].Y, Index: i}
	}
	hull, err := dac.Solve(pts)
	if err != nil {
		return nil, err
	}
	return hull.Indices(), nil
}
