package util

import (
	"fmt"
)

// Point is a grid coordinate. X is the column and Y the row, with Y growing
// downwards from the top left corner of the grid.
type Point struct {
	X int32
	Y int32
}

func NewPoint(x int32, y int32) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Compare orders points by X then Y.
func (p Point) Compare(o Point) int {
	if p.X != o.X {
		return IfThenElse(p.X < o.X, -1, 1)
	}
	if p.Y != o.Y {
		return IfThenElse(p.Y < o.Y, -1, 1)
	}
	return 0
}

func (p Point) Less(o Point) bool {
	return p.Compare(o) < 0
}

func (p Point) Greater(o Point) bool {
	return p.Compare(o) > 0
}

func (p Point) Minus(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Dot(o Point) int32 {
	return p.X*o.X + p.Y*o.Y
}

// Cross is the z component of the 3D cross product of p and o.
func (p Point) Cross(o Point) int32 {
	return p.X*o.Y - p.Y*o.X
}

// Encode packs the point as x*100+y.
func (p Point) Encode() int {
	return int(p.X)*100 + int(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
