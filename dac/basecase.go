package dac

// baseCaseHull builds the CCW hull for the 1-3 points in pts[lo:hi]. The
// range must come from the lexicographically sorted, deduplicated point set,
// so pts[lo] and pts[hi-1] are the extreme points of the range.
func baseCaseHull(pts []*Point, lo, hi int) *Hull {
	switch hi - lo {
	case 1:
		return &Hull{Points: []*Point{pts[lo]}}
	case 2:
		return &Hull{Points: []*Point{pts[lo], pts[lo+1]}}
	case 3:
		a, b, c := pts[lo], pts[lo+1], pts[lo+2]
		switch Orientation(a, b, c) {
		case 1:
			return &Hull{Points: []*Point{a, b, c}}
		case -1:
			// Clockwise; flip to CCW.
			return &Hull{Points: []*Point{a, c, b}}
		default:
			// Collinear. The middle point lies on the segment a-c, so the
			// hull degenerates to the two extremes.
			return &Hull{Points: []*Point{a, c}}
		}
	}
	fatalf("base case called on range of size %d", hi-lo)
	return nil
}
