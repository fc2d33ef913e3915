package grid

import (
	"bufio"
	"io"
	"strings"

	"github.com/kpfaulkner/asteroid-monitor/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultMarker = '#'
)

// Parse reads a grid from r. Every occurrence of marker becomes a point at
// (column, row). Any other character is empty space and rows may have
// differing lengths.
func Parse(r io.Reader, marker rune) (*util.PointSet, error) {
	points := util.NewPointSet()

	scanner := bufio.NewScanner(r)
	var row int32
	for scanner.Scan() {
		parseRow(points, strings.TrimSuffix(scanner.Text(), "\r"), row, marker)
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to scan grid")
	}

	log.Debugf("parsed %d rows into %d points", row, points.Len())
	return points, nil
}

// ParseString is Parse for in-memory grids. It cannot fail.
func ParseString(s string, marker rune) *util.PointSet {
	points := util.NewPointSet()
	if s == "" {
		return points
	}
	for row, line := range strings.Split(s, "\n") {
		parseRow(points, strings.TrimSuffix(line, "\r"), int32(row), marker)
	}
	return points
}

func parseRow(points *util.PointSet, line string, row int32, marker rune) {
	var col int32
	for _, c := range line {
		if c == marker {
			points.Add(util.NewPoint(col, row))
		}
		col++
	}
}
