package monitor

import (
	"github.com/kpfaulkner/asteroid-monitor/geometry"
	"github.com/kpfaulkner/asteroid-monitor/util"
)

// VisibilityMap holds, for every asteroid, how many others it can detect.
// Empty cells are zero.
func VisibilityMap(points *util.PointSet) *util.Matrix[int32] {
	width, height := points.Bounds()
	m := util.New2DMatrix[int32](height, width)
	for _, p := range points.Points() {
		m.Set(p.Y, p.X, int32(len(geometry.DetectablePoints(p, points))))
	}
	return m
}
