package util

import (
	"math"
	"testing"
)

func TestAbs(t *testing.T) {
	if Abs(-3) != 3 {
		t.Error("Abs(-3) should be 3")
	}
	if Abs(int32(4)) != 4 {
		t.Error("Abs(4) should be 4")
	}
	if Abs(-1.5) != 1.5 {
		t.Error("Abs(-1.5) should be 1.5")
	}
}

func TestMaxMin(t *testing.T) {
	tests := []struct {
		args        []int
		expectedMax int
		expectedMin int
	}{
		{[]int{1, 5, 3}, 5, 1},
		{[]int{-2}, -2, -2},
		{[]int{}, 0, 0},
	}

	for _, tt := range tests {
		if got := Max(tt.args...); got != tt.expectedMax {
			t.Errorf("Max(%v) = %d; want %d", tt.args, got, tt.expectedMax)
		}
		if got := Min(tt.args...); got != tt.expectedMin {
			t.Errorf("Min(%v) = %d; want %d", tt.args, got, tt.expectedMin)
		}
	}
}

func TestMaxNaN(t *testing.T) {
	if !math.IsNaN(Max(1.0, math.NaN(), 3.0)) {
		t.Error("Max with NaN should return NaN")
	}
}

func TestNormaliseAngle(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{-math.Pi, math.Pi},
		{2 * math.Pi, 0},
	}

	for _, tt := range tests {
		result := NormaliseAngle(tt.input)
		if math.Abs(result-tt.expected) > 1e-12 {
			t.Errorf("NormaliseAngle(%f) = %f; want %f", tt.input, result, tt.expected)
		}
	}
}

func TestIfThenElse(t *testing.T) {
	if IfThenElse(true, 1, 2) != 1 {
		t.Error("IfThenElse(true, 1, 2) should be 1")
	}
	if IfThenElse(false, "a", "b") != "b" {
		t.Error("IfThenElse(false, 'a', 'b') should be 'b'")
	}
}
