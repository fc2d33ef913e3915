package util

import (
	"golang.org/x/exp/slices"
)

// PointSet is an unordered collection of unique points.
// Enumeration through Points is always in Point order so that callers get a
// reproducible iteration order.
type PointSet struct {
	points map[Point]struct{}
}

func NewPointSet(points ...Point) *PointSet {
	ps := &PointSet{points: make(map[Point]struct{}, len(points))}
	for _, p := range points {
		ps.Add(p)
	}
	return ps
}

// Add inserts p. Adding an existing point is a no-op.
func (ps *PointSet) Add(p Point) {
	ps.points[p] = struct{}{}
}

func (ps *PointSet) Remove(p Point) {
	delete(ps.points, p)
}

func (ps *PointSet) Contains(p Point) bool {
	_, ok := ps.points[p]
	return ok
}

func (ps *PointSet) Len() int {
	return len(ps.points)
}

func (ps *PointSet) IsEmpty() bool {
	return len(ps.points) == 0
}

// Points returns the members sorted by Point.Compare.
func (ps *PointSet) Points() []Point {
	res := make([]Point, 0, len(ps.points))
	for p := range ps.points {
		res = append(res, p)
	}
	slices.SortFunc(res, func(a Point, b Point) int {
		return a.Compare(b)
	})
	return res
}

// Clone returns an independent copy that can be mutated without affecting ps.
func (ps *PointSet) Clone() *PointSet {
	c := &PointSet{points: make(map[Point]struct{}, len(ps.points))}
	for p := range ps.points {
		c.points[p] = struct{}{}
	}
	return c
}

// Bounds returns the width and height of the smallest grid anchored at the
// origin that holds every point.
func (ps *PointSet) Bounds() (int32, int32) {
	var width, height int32
	for p := range ps.points {
		width = Max(width, p.X+1)
		height = Max(height, p.Y+1)
	}
	return width, height
}
