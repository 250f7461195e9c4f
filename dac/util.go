package dac

// Orientation is the single source of truth for every geometric decision in
// the package: it returns the sign of the cross product (b-a) × (c-a).
// +1 means a→b→c is a counterclockwise (left) turn, -1 clockwise (right),
// 0 exactly collinear. Comparisons are exact; there is no tolerance, so every
// caller inherits the same tie-breaking.
func Orientation(a, b, c *Point) int {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > 0 {
		return 1
	}
	if cross < 0 {
		return -1
	}
	return 0
}

func leftOf(a, b, p *Point) bool {
	return Orientation(a, b, p) > 0
}

func rightOf(a, b, p *Point) bool {
	return Orientation(a, b, p) < 0
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Lexicographic (x, then y) comparison, the sort key for the point set.
func lexLess(a, b *Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func sameCoords(a, b *Point) bool {
	return a.X == b.X && a.Y == b.Y
}

// Index of the rightmost vertex (max x, ties broken by max y). Tangent
// searches on the left hull start here.
func rightmostIndex(h *Hull) int {
	k := 0
	for i := 1; i < len(h.Points); i++ {
		p, best := h.Points[i], h.Points[k]
		if p.X > best.X || (p.X == best.X && p.Y > best.Y) {
			k = i
		}
	}
	return k
}

// Index of the leftmost vertex (min x, ties broken by min y).
func leftmostIndex(h *Hull) int {
	k := 0
	for i := 1; i < len(h.Points); i++ {
		p, best := h.Points[i], h.Points[k]
		if p.X < best.X || (p.X == best.X && p.Y < best.Y) {
			k = i
		}
	}
	return k
}

func distSq(a, b *Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
