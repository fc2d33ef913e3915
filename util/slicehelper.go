package util

import (
	"golang.org/x/exp/constraints"
)

// Matrix makes a 1D slice appear as a 2D grid, row major.
type Matrix[T constraints.Integer | constraints.Float] struct {
	Width  int32
	Height int32
	Data   []T
}

// New2DMatrix creates a new 2D matrix with the given dimensions
// Note height is the first dimension, width is the second
func New2DMatrix[T constraints.Integer | constraints.Float](height int32, width int32) *Matrix[T] {
	matrix := make([]T, width*height)
	return &Matrix[T]{Width: width, Height: height, Data: matrix}
}

// Note y is first param...  just for compatibility
func (s *Matrix[T]) Get(y int32, x int32) T {
	return s.Data[y*s.Width+x]
}

func (s *Matrix[T]) Set(y int32, x int32, value T) {
	s.Data[y*s.Width+x] = value
}

func (s *Matrix[T]) GetRow(y int32) []T {
	return s.Data[y*s.Width : (y+1)*s.Width]
}

// Max returns the largest value held, zero for an empty matrix.
func (s *Matrix[T]) Max() T {
	return Max(s.Data...)
}
