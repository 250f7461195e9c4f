// Command genpoints writes a random point cloud in the CSV format the hull
// command reads, for generating test inputs of arbitrary size.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/rs/zerolog"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	count   = kingpin.Flag("count", "Number of points to generate.").Short('n').Default("50").Int()
	seed    = kingpin.Flag("seed", "Random seed, for reproducible sets.").Default("42").Int64()
	minCoor = kingpin.Flag("min", "Lower bound for both coordinates.").Default("0").Float64()
	maxCoor = kingpin.Flag("max", "Upper bound for both coordinates.").Default("10").Float64()
	appendF = kingpin.Flag("append", "Append to the output file instead of truncating it.").Bool()
	outFile = kingpin.Arg("output", "Output CSV file.").Default("input.csv").String()
)

func main() {
	kingpin.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *count < 1 {
		log.Error().Int("count", *count).Msg("need at least one point")
		os.Exit(1)
	}
	if *maxCoor <= *minCoor {
		log.Error().Float64("min", *minCoor).Float64("max", *maxCoor).Msg("empty coordinate range")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	type point struct{ x, y float64 }
	points := make([]point, *count)
	for i := range points {
		points[i] = point{
			x: *minCoor + rng.Float64()*(*maxCoor-*minCoor),
			y: *minCoor + rng.Float64()*(*maxCoor-*minCoor),
		}
	}
	// Sorted by x to match the conventional input layout.
	sort.Slice(points, func(i, j int) bool { return points[i].x < points[j].x })

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if *appendF {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(*outFile, flags, 0o644)
	if err != nil {
		log.Error().Err(err).Msg("could not open output file")
		os.Exit(1)
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(f, "%v,%v\n", p.x, p.y); err != nil {
			log.Error().Err(err).Msg("could not write point")
			os.Exit(1)
		}
	}
	if err := f.Close(); err != nil {
		log.Error().Err(err).Msg("could not close output file")
		os.Exit(1)
	}
	log.Info().Int("points", *count).Str("file", *outFile).Msg("generated point set")
}
