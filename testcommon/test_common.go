package testcommon

import (
	"os"
	"testing"

	"github.com/kpfaulkner/asteroid-monitor/grid"
	"github.com/kpfaulkner/asteroid-monitor/util"
)

// LoadGrid parses a grid fixture, failing the test if it cannot be read.
func LoadGrid(t *testing.T, filepath string) *util.PointSet {
	t.Helper()
	f, err := os.Open(filepath)
	if err != nil {
		t.Fatalf("error reading test grid : %v", err)
	}
	defer f.Close()

	points, err := grid.Parse(f, grid.DefaultMarker)
	if err != nil {
		t.Fatalf("error parsing test grid : %v", err)
	}
	return points
}

// Points builds a point set from x,y pairs.
func Points(coords ...[2]int32) *util.PointSet {
	ps := util.NewPointSet()
	for _, c := range coords {
		ps.Add(util.NewPoint(c[0], c[1]))
	}
	return ps
}
