// Package pointio reads point sets from CSV and writes hull indices, the two
// boundary formats the hull binary speaks. The core algorithm never sees a
// malformed row: everything here fails with an ordinary error before any
// geometry runs.
package pointio

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/xwalton/convexhull/dac"
)

// ReadPoints parses two-column "x,y" records. Blank lines are skipped. Each
// point is tagged with its position in the input sequence, counting from
// zero, which is the index space the output writer reports in.
func ReadPoints(r io.Reader) ([]*dac.Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var points []*dac.Point
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading points")
		}
		line, _ := reader.FieldPos(0)
		if len(record) == 1 && record[0] == "" {
			continue
		}
		if len(record) != 2 {
			return nil, errors.Errorf("line %d: expected format 'x,y', got %d columns", line, len(record))
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, errors.Errorf("line %d: invalid x coordinate %q", line, record[0])
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, errors.Errorf("line %d: invalid y coordinate %q", line, record[1])
		}
		points = append(points, &dac.Point{X: x, Y: y, Index: len(points)})
	}
	return points, nil
}

func ReadPointsFile(path string) ([]*dac.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read input file %q", path)
	}
	defer f.Close()
	return ReadPoints(f)
}

// WriteIndices writes one index per line with no trailing newline, the
// format the plotting scripts downstream expect.
func WriteIndices(w io.Writer, indices []int) error {
	for i, idx := range indices {
		s := strconv.Itoa(idx)
		if i > 0 {
			s = "\n" + s
		}
		if _, err := io.WriteString(w, s); err != nil {
			return errors.Wrap(err, "writing hull indices")
		}
	}
	return nil
}

func WriteIndicesFile(path string, indices []int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not write output file %q", path)
	}
	if err := WriteIndices(f, indices); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "could not write output file %q", path)
}
