package dac

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file turns the svg fixtures into point clouds. It is not a full (or
// even correct) svg parser: it finds the first polygon in the file and uses
// its vertices as the input point set, with indices in document order. If
// anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []*Point
	for _, pointString := range strings.Split(polygons[0].Attributes["points"], " ") {
		if pointString == "" {
			continue
		}
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{X: x, Y: y, Index: len(points)})
	}
	return points
}

// Some ad hoc generated clouds

func ringPoints(n int, radius float64) []*Point {
	points := make([]*Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = &Point{
			X:     radius * math.Cos(angle),
			Y:     radius * math.Sin(angle),
			Index: i,
		}
	}
	return points
}

func gridPoints(w, h int) []*Point {
	points := make([]*Point, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			points = append(points, &Point{X: float64(x), Y: float64(y), Index: len(points)})
		}
	}
	return points
}

func collinearRun(n int, dx, dy float64) []*Point {
	points := make([]*Point, n)
	for i := 0; i < n; i++ {
		points[i] = &Point{X: dx * float64(i), Y: dy * float64(i), Index: i}
	}
	return points
}
