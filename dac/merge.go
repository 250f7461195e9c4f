package dac

// mergeHulls splices two x-separated CCW hulls into one using their tangent
// endpoints. Only the outer arcs survive: l contributes its chain from the
// upper tangent vertex counterclockwise down to the lower tangent vertex
// (over the top and down the left side), and r its chain from the lower
// tangent vertex counterclockwise up to the upper (under the bottom and up
// the right side). The facing arcs are interior to the merged polygon and
// are dropped. When a hull's two tangent indices coincide it contributes
// exactly one vertex.
func mergeHulls(l, r *Hull) *Hull {
	if l.Len() == 0 || r.Len() == 0 {
		fatalf("merge called with an empty hull")
	}

	iu, ju := upperTangent(l, r)
	il, jl := lowerTangent(l, r)

	merged := &Hull{Points: make([]*Point, 0, l.Len()+r.Len())}

	k := iu
	merged.Points = append(merged.Points, l.At(k))
	for k != il {
		k = CircularIndex(k+1, l.Len())
		merged.Points = append(merged.Points, l.At(k))
	}

	k = jl
	merged.Points = append(merged.Points, r.At(k))
	for k != ju {
		k = CircularIndex(k+1, r.Len())
		merged.Points = append(merged.Points, r.At(k))
	}

	validateHull(merged)
	return merged
}

// validateHull checks the CCW invariant on a merge result: no cyclic vertex
// triple may turn right, and adjacent vertices must be distinct. A violation
// here means the tangent search returned a wrong answer, so it is fatal.
func validateHull(h *Hull) {
	n := h.Len()
	if n < 2 {
		fatalf("merge produced a hull with %d vertices", n)
	}
	for i := 0; i < n; i++ {
		if sameCoords(h.At(i), h.At(i+1)) && n > 1 {
			fatalf("merge produced duplicate adjacent vertices at %d", i)
		}
	}
	if n < 3 {
		return
	}
	for i := 0; i < n; i++ {
		if Orientation(h.At(i), h.At(i+1), h.At(i+2)) < 0 {
			fatalf("merge produced a non-convex boundary at vertex %d", i)
		}
	}
}
