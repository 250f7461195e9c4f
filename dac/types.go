package dac

// Note that all points in the algorithm are pointers. We never modify a point
// value after parsing, because the algorithm relies on exact coordinate
// equality and cannot tolerate loss of precision; pointers also let the debug
// tooling name individual points.
type Point struct {
	X float64
	Y float64
	// Position of the point in the original input sequence, before sorting
	// and deduplication. Carried through so hull output can be reported as
	// input indices.
	Index int
}

// A convex polygon boundary in counterclockwise order, starting at an
// arbitrary vertex. One or two vertices describe a degenerate hull (a single
// point or a segment); those participate in tangent finding under the same
// contract as larger hulls.
type Hull struct {
	Points []*Point
}

func (h *Hull) Len() int {
	return len(h.Points)
}

// At returns the vertex at index i, treating the boundary as a circular
// buffer.
func (h *Hull) At(i int) *Point {
	return h.Points[CircularIndex(i, len(h.Points))]
}
