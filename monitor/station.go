package monitor

import (
	"errors"

	"github.com/kpfaulkner/asteroid-monitor/geometry"
	"github.com/kpfaulkner/asteroid-monitor/util"
)

var ErrNoPoints = errors.New("no asteroids in map")

// BestStation finds the point that can detect the most other points.
// Ties go to the greatest point in Point order.
func BestStation(points *util.PointSet) (util.Point, int, error) {
	if points.IsEmpty() {
		return util.Point{}, 0, ErrNoPoints
	}

	var station util.Point
	best := -1
	for _, p := range points.Points() {
		count := len(geometry.DetectablePoints(p, points))

		// Points are ascending so >= keeps the greatest of equal counts.
		if count >= best {
			best = count
			station = p
		}
	}
	return station, best, nil
}

// Solve1 returns the number of points visible from the best station.
func Solve1(points *util.PointSet) (int, error) {
	_, count, err := BestStation(points)
	if err != nil {
		return 0, err
	}
	return count, nil
}
