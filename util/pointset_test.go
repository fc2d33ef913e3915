package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointSetDuplicatesAreNoop(t *testing.T) {
	ps := NewPointSet(NewPoint(1, 1), NewPoint(1, 1))
	ps.Add(NewPoint(1, 1))
	assert.Equal(t, 1, ps.Len())
	assert.True(t, ps.Contains(NewPoint(1, 1)))
}

func TestPointSetPointsAreOrdered(t *testing.T) {
	ps := NewPointSet(NewPoint(3, 0), NewPoint(0, 5), NewPoint(0, 1), NewPoint(2, 2))
	assert.Equal(t, []Point{{0, 1}, {0, 5}, {2, 2}, {3, 0}}, ps.Points())
}

func TestPointSetCloneIsIndependent(t *testing.T) {
	ps := NewPointSet(NewPoint(0, 0), NewPoint(1, 0))
	c := ps.Clone()
	c.Remove(NewPoint(0, 0))

	assert.Equal(t, 2, ps.Len())
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Contains(NewPoint(0, 0)))
	assert.True(t, ps.Contains(NewPoint(0, 0)))
}

func TestPointSetEmpty(t *testing.T) {
	ps := NewPointSet()
	assert.True(t, ps.IsEmpty())
	assert.Empty(t, ps.Points())

	w, h := ps.Bounds()
	assert.Equal(t, int32(0), w)
	assert.Equal(t, int32(0), h)
}

func TestPointSetBounds(t *testing.T) {
	ps := NewPointSet(NewPoint(4, 0), NewPoint(0, 2))
	w, h := ps.Bounds()
	assert.Equal(t, int32(5), w)
	assert.Equal(t, int32(3), h)
}
