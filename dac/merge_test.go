package dac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertConvexCCW(t *testing.T, h *Hull) {
	t.Helper()
	n := h.Len()
	for i := 0; i < n; i++ {
		assert.GreaterOrEqual(t, Orientation(h.At(i), h.At(i+1), h.At(i+2)), 0,
			"right turn at vertex %d of %v", i, h)
	}
}

func assertContainsAll(t *testing.T, h *Hull, points []*Point) {
	t.Helper()
	if h.Len() < 2 {
		return
	}
	for i := 0; i < h.Len(); i++ {
		a, b := h.At(i), h.At(i+1)
		for _, p := range points {
			assert.GreaterOrEqual(t, Orientation(a, b, p), 0,
				"point %v outside hull edge %v-%v", p, a, b)
		}
	}
}

func TestMergeSquareHalves(t *testing.T) {
	l := ccwHull([2]float64{0, 0}, [2]float64{0, 1})
	r := ccwHull([2]float64{1, 0}, [2]float64{1, 1})

	merged := mergeHulls(l, r)
	assert.Equal(t, [][2]float64{{0, 1}, {0, 0}, {1, 0}, {1, 1}}, hullCoords(merged))
	assertConvexCCW(t, merged)
}

func TestMergeDisjointTriangles(t *testing.T) {
	l := ccwHull([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1})
	r := ccwHull([2]float64{2, 0}, [2]float64{3, 0}, [2]float64{2, 1})

	merged := mergeHulls(l, r)
	assertConvexCCW(t, merged)
	assertContainsAll(t, merged, append(append([]*Point{}, l.Points...), r.Points...))

	// No vertex may be redundant: removing any one must lose a corner, so
	// every surviving vertex is a strict extreme (no collinear triples).
	n := merged.Len()
	for i := 0; i < n; i++ {
		assert.Equal(t, 1, Orientation(merged.At(i), merged.At(i+1), merged.At(i+2)),
			"redundant vertex %v in merged hull", merged.At(i+1))
	}
}

func TestMergeCollinearSegments(t *testing.T) {
	l := ccwHull([2]float64{0, 0}, [2]float64{1, 0})
	r := ccwHull([2]float64{2, 0}, [2]float64{3, 0})

	merged := mergeHulls(l, r)
	assert.Equal(t, [][2]float64{{0, 0}, {3, 0}}, hullCoords(merged))
}

func TestMergeSinglePoints(t *testing.T) {
	l := ccwHull([2]float64{0, 0})
	r := ccwHull([2]float64{5, 5})

	merged := mergeHulls(l, r)
	assert.Equal(t, [][2]float64{{0, 0}, {5, 5}}, hullCoords(merged))
}

func TestMergePointIntoTriangle(t *testing.T) {
	l := ccwHull([2]float64{0, 0})
	r := ccwHull([2]float64{1, -1}, [2]float64{2, 0}, [2]float64{1, 1})

	merged := mergeHulls(l, r)
	assertConvexCCW(t, merged)
	assertContainsAll(t, merged, append([]*Point{l.Points[0]}, r.Points...))
	assert.Equal(t, 4, merged.Len())
}

func TestValidateHullRejectsRightTurn(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = HandleHullPanicRecover(recover())
		}()
		validateHull(ccwHull(
			[2]float64{0, 0},
			[2]float64{2, 0},
			[2]float64{1, 1},
			[2]float64{2, 2},
			[2]float64{0, 2},
		))
		return nil
	}()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-convex")
}
