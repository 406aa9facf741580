package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name             string
		screenW, screenH int
		w, h             int
		expected         Rect
	}{
		{"even fit", 80, 24, 20, 4, NewRect(30, 10, 20, 4)},
		{"odd remainder", 81, 25, 20, 4, NewRect(30, 10, 20, 4)},
		{"larger than screen", 10, 5, 20, 9, NewRect(-5, -2, 20, 9)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredRect(tc.screenW, tc.screenH, tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("CenteredRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.1, 0.0, 1.0, 0.0},
		{1.7, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
