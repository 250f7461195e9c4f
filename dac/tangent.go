package dac

// Tangent search between two CCW hulls whose vertex sets are separated (or
// adjacent) on the x axis: every x in l is <= every x in r. Both searches
// start from the facing extreme vertices and advance each candidate index
// around its hull, one vertex at a time, in a fixed direction, while the next
// vertex lies on the wrong side of the current candidate line.
//
// Exactly collinear candidates need a policy, because a tangent may touch
// more than two points (and a 1- or 2-vertex hull may lie entirely on the
// line). We advance onto a collinear vertex only when it is strictly farther
// from the anchor vertex on the opposite hull. Distance along a fixed line
// strictly increases, so these moves cannot cycle, and the resulting tangent
// always touches the extreme vertex of any collinear run. That keeps the
// merge deterministic and drops mid-edge vertices: merging two collinear
// segments yields just the two outer endpoints.
//
// Each index moves in one direction only and can traverse its hull at most
// once, so a correct search makes fewer than len(l)+len(r) moves. That bound
// is enforced as a hard cap rather than iterating to convergence: blowing it
// means the side tests are buggy, and it is reported as a fatal internal
// error instead of hanging.

// advanceBudget returns the shared move allowance for one tangent search.
func advanceBudget(l, r *Hull) int {
	return l.Len() + r.Len() + 2
}

func spend(budget *int, which string) {
	*budget--
	if *budget < 0 {
		fatalf("%s tangent search did not stabilize within its step cap", which)
	}
}

// collinearAdvance reports whether cand, exactly on the line through anchor
// and cur, is a strict improvement under the farthest-vertex policy.
func collinearAdvance(anchor, cur, cand *Point) bool {
	return distSq(anchor, cand) > distSq(anchor, cur)
}

// upperTangent finds (i, j) such that the line through l.At(i) and r.At(j)
// has every vertex of both hulls on or below it.
func upperTangent(l, r *Hull) (i, j int) {
	i = rightmostIndex(l)
	j = leftmostIndex(r)
	budget := advanceBudget(l, r)

	for moved := true; moved; {
		moved = false
		// Climb l counterclockwise while its next vertex is right of the
		// line r.At(j) -> l.At(i), or collinear but farther out.
		for {
			next := l.At(i + 1)
			o := Orientation(r.At(j), l.At(i), next)
			if o < 0 || (o == 0 && collinearAdvance(r.At(j), l.At(i), next)) {
				spend(&budget, "upper")
				i = CircularIndex(i+1, l.Len())
				moved = true
				continue
			}
			break
		}
		// Climb r clockwise while its previous vertex is left of the line
		// l.At(i) -> r.At(j), or collinear but farther out.
		for {
			prev := r.At(j - 1)
			o := Orientation(l.At(i), r.At(j), prev)
			if o > 0 || (o == 0 && collinearAdvance(l.At(i), r.At(j), prev)) {
				spend(&budget, "upper")
				j = CircularIndex(j-1, r.Len())
				moved = true
				continue
			}
			break
		}
	}
	return i, j
}

// lowerTangent is the mirror image: every vertex of both hulls ends up on or
// above the line through l.At(i) and r.At(j).
func lowerTangent(l, r *Hull) (i, j int) {
	i = rightmostIndex(l)
	j = leftmostIndex(r)
	budget := advanceBudget(l, r)

	for moved := true; moved; {
		moved = false
		for {
			prev := l.At(i - 1)
			o := Orientation(r.At(j), l.At(i), prev)
			if o > 0 || (o == 0 && collinearAdvance(r.At(j), l.At(i), prev)) {
				spend(&budget, "lower")
				i = CircularIndex(i-1, l.Len())
				moved = true
				continue
			}
			break
		}
		for {
			next := r.At(j + 1)
			o := Orientation(l.At(i), r.At(j), next)
			if o < 0 || (o == 0 && collinearAdvance(l.At(i), r.At(j), next)) {
				spend(&budget, "lower")
				j = CircularIndex(j+1, r.Len())
				moved = true
				continue
			}
			break
		}
	}
	return i, j
}
