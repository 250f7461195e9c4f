package dac

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/xwalton/convexhull/dbg"
)

// This file is for debugging purposes only.

const dbgDrawPadding = 20

func (p *Point) String() string {
	return fmt.Sprintf("(%v, %v)#%d", p.X, p.Y, p.Index)
}

func (h *Hull) String() string {
	parts := make([]string, len(h.Points))
	for i, p := range h.Points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Hull %s [%s]", h.DbgName(), strings.Join(parts, ", "))
}

func (h *Hull) DbgName() string {
	name := dbg.Name(h)
	switch h.Len() {
	case 1: // degenerate single point
		name = aurora.Cyan(name).String()
	case 2: // degenerate segment
		name = aurora.Red(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

// Helper to draw a hull over its point set and print it in the terminal
// (iTerm only) while debugging a merge.
func (h *Hull) dbgDraw(points []*Point, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetRGB(0.4, 0.4, 1)
	for _, p := range points {
		c.DrawPoint(p.X, p.Y, 3/scale)
		c.Fill()
	}

	if h.Len() > 0 {
		c.SetLineWidth(2)
		c.MoveTo(h.Points[0].X, h.Points[0].Y)
		for _, p := range h.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SavePNG("/tmp/hull.png")
	imgcat.CatFile("/tmp/hull.png", os.Stdout)
}
