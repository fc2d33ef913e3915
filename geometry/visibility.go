package geometry

import (
	"github.com/kpfaulkner/asteroid-monitor/util"
)

// Collinear reports whether a, b and c lie on one line, i.e. the triangle
// they form has zero area.
func Collinear(a util.Point, b util.Point, c util.Point) bool {
	return a.X*(b.Y-c.Y)+b.X*(c.Y-a.Y)+c.X*(a.Y-b.Y) == 0
}

// between reports whether p sits strictly between a and b in Point order.
// Only meaningful once p is known to be collinear with a and b.
func between(a util.Point, p util.Point, b util.Point) bool {
	return (a.Less(p) && p.Less(b)) || (a.Greater(p) && p.Greater(b))
}

// IsBlocked reports whether some point other than the endpoints lies on the
// line from src to dest and between them.
func IsBlocked(src util.Point, dest util.Point, points []util.Point) bool {
	for _, p := range points {
		if p == src || p == dest {
			continue
		}
		if between(src, p, dest) && Collinear(src, p, dest) {
			return true
		}
	}
	return false
}

// DetectablePoints returns every point of points, other than src itself, that
// src has an unobstructed line of sight to.
func DetectablePoints(src util.Point, points *util.PointSet) []util.Point {
	all := points.Points()
	detectable := make([]util.Point, 0, len(all))
	for _, dest := range all {
		if dest == src {
			continue
		}
		if !IsBlocked(src, dest, all) {
			detectable = append(detectable, dest)
		}
	}
	return detectable
}
