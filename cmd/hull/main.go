// Command hull computes the convex hull of a CSV point set.
//
// The input file contains one "x,y" pair per line. The output file gets the
// hull vertices as zero-based input indices, one per line, in
// counterclockwise order. Exit status is nonzero both for bad input and for
// internal geometry failures; the log distinguishes the two.
package main

import (
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/rs/zerolog"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/xwalton/convexhull/dac"
	"github.com/xwalton/convexhull/plot"
	"github.com/xwalton/convexhull/pointio"
)

var (
	inputFile  = kingpin.Arg("input", "Input CSV file with x,y coordinates.").Required().String()
	outputFile = kingpin.Flag("output", "Output file for hull indices.").Short('o').Default("output.txt").String()
	plotFile   = kingpin.Flag("plot", "Also render the point set and hull to this PNG.").String()
	show       = kingpin.Flag("show", "Display the rendered plot inline (iTerm only; implies --plot).").Bool()
	verbose    = kingpin.Flag("verbose", "Enable debug logging.").Short('v').Bool()
)

func main() {
	kingpin.Parse()
	log := newLogger(*verbose)

	if *show && *plotFile == "" {
		*plotFile = "hull.png"
	}

	points, err := pointio.ReadPointsFile(*inputFile)
	if err != nil {
		log.Error().Err(err).Msg("invalid input")
		os.Exit(1)
	}
	log.Info().Int("points", len(points)).Str("file", *inputFile).Msg("parsed input")

	indices, err := solve(points)
	if err != nil {
		log.Error().Err(err).Msg("convex hull failed")
		os.Exit(1)
	}
	log.Info().Int("vertices", len(indices)).Msg("computed convex hull")

	if err := pointio.WriteIndicesFile(*outputFile, indices); err != nil {
		log.Error().Err(err).Msg("could not write output")
		os.Exit(1)
	}
	log.Info().Str("file", *outputFile).Msg("results written")

	if *plotFile != "" {
		if err := plot.Render(*plotFile, points, indices, plot.Options{}); err != nil {
			log.Error().Err(err).Msg("could not render plot")
			os.Exit(1)
		}
		log.Info().Str("file", *plotFile).Msg("plot written")
		if *show {
			imgcat.CatFile(*plotFile, os.Stdout)
		}
	}
}

// solve runs the core with its invariant panics converted to errors, so a
// geometry bug exits with a log line instead of a stack trace.
func solve(points []*dac.Point) (indices []int, err error) {
	defer func() {
		recoveredErr := dac.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			indices = nil
			err = recoveredErr
		}
	}()

	hull, err := dac.Solve(points)
	if err != nil {
		return nil, err
	}
	return hull.Indices(), nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
