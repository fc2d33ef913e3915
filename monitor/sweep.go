package monitor

import (
	"github.com/kpfaulkner/asteroid-monitor/geometry"
	"github.com/kpfaulkner/asteroid-monitor/util"
	log "github.com/sirupsen/logrus"
)

// Vaporization records one asteroid destroyed by the laser.
type Vaporization struct {
	Point util.Point

	// Angle clockwise from straight up, in radians.
	Angle float64

	// Revolution is zero based.
	Revolution int

	// Iteration of the sweep loop that vaporized the point.
	Iteration int
}

type SweepResult struct {
	Station       util.Point
	Vaporizations []Vaporization

	// Revolutions counts completed full turns of the laser.
	Revolutions int

	// Iterations is the number of loop steps taken, resets included.
	Iterations int

	// Last is the most recently vaporized point, (0,0) if nothing was hit.
	Last util.Point
}

// Encoded returns the last vaporized point as x*100+y.
func (sr *SweepResult) Encoded() int {
	return sr.Last.Encode()
}

// Sweep rotates a laser clockwise around station starting straight up. Each
// iteration either vaporizes the next visible point past the previous angle
// or, when nothing is left in the current revolution, resets the angle for a
// new turn. At most maxIterations iterations run and points is not modified.
func Sweep(station util.Point, points *util.PointSet, maxIterations int) *SweepResult {
	remaining := points.Clone()
	remaining.Remove(station)

	reference := util.NewPoint(station.X, station.Y-1)
	lastAngle := -1.0

	res := &SweepResult{Station: station}
	for res.Iterations < maxIterations && !remaining.IsEmpty() {
		target, angle, ok := nextTarget(station, reference, remaining, lastAngle)
		if !ok {
			log.Debugf("revolution %d complete after %d vaporizations", res.Revolutions, len(res.Vaporizations))
			lastAngle = -1
			res.Revolutions++
			res.Iterations++
			continue
		}

		lastAngle = angle
		res.Last = target
		remaining.Remove(target)
		res.Vaporizations = append(res.Vaporizations, Vaporization{
			Point:      target,
			Angle:      angle,
			Revolution: res.Revolutions,
			Iteration:  res.Iterations,
		})
		log.Debugf("vaporized %s at angle %f", target, angle)
		res.Iterations++
	}
	return res
}

// nextTarget picks the visible point with the smallest angle greater than
// lastAngle. Equal angles go to the smaller point.
func nextTarget(station util.Point, reference util.Point, remaining *util.PointSet, lastAngle float64) (util.Point, float64, bool) {
	var target util.Point
	best := 0.0
	found := false
	for _, p := range geometry.DetectablePoints(station, remaining) {
		angle := geometry.Angle(station, reference, p)
		if angle <= lastAngle {
			continue
		}
		if !found || angle < best || (angle == best && p.Less(target)) {
			target = p
			best = angle
			found = true
		}
	}
	return target, best, found
}

// Solve2 runs the sweep from the best station and returns the encoded last
// vaporized point.
func Solve2(points *util.PointSet, maxIterations int) (int, error) {
	station, _, err := BestStation(points)
	if err != nil {
		return 0, err
	}
	return Sweep(station, points, maxIterations).Encoded(), nil
}
