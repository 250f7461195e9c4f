// Package plot renders a point set and its convex hull to a PNG, replacing
// eyeballing index lists with an actual picture.
package plot

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/xwalton/convexhull/dac"
)

const (
	padding     = 24
	pointRadius = 3
)

// Options control the rendered image. The viewport is always fitted to the
// point set; Size is the long edge of the drawable area in pixels.
type Options struct {
	Size int
}

func (o Options) sizeOrDefault() int {
	if o.Size <= 0 {
		return 640
	}
	return o.Size
}

// Render draws points as dots and the hull (given as indices into points) as
// a closed outline, with the origin at the bottom left.
func Render(path string, points []*dac.Point, indices []int, opts Options) error {
	if len(points) == 0 {
		return errors.New("nothing to plot")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	// A single point or a collinear set has a zero span on some axis; pin it
	// so the scale stays finite.
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	size := float64(opts.sizeOrDefault())
	scale := size / math.Max(spanX, spanY)
	width := int(scale*spanX) + padding*2
	height := int(scale*spanY) + padding*2

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	byIndex := make(map[int]*dac.Point, len(points))
	for _, p := range points {
		byIndex[p.Index] = p
	}

	if len(indices) > 0 {
		c.SetLineWidth(2)
		for k, idx := range indices {
			p, ok := byIndex[idx]
			if !ok {
				return errors.Errorf("hull index %d is not in the point set", idx)
			}
			if k == 0 {
				c.MoveTo(p.X, p.Y)
			} else {
				c.LineTo(p.X, p.Y)
			}
		}
		c.ClosePath()
		c.SetRGB(1, 0.55, 0)
		c.Stroke()
	}

	c.SetRGB(0.12, 0.29, 0.69)
	for _, p := range points {
		c.DrawPoint(p.X, p.Y, pointRadius/scale)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "could not write plot %q", path)
}
