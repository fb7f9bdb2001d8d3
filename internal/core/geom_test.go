package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent edges do not overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tt.expected)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("reverse Intersects() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRectIntersectsCircle(t *testing.T) {
	rect := NewRect(10, 10, 20, 10)

	tests := []struct {
		name     string
		cx, cy   float64
		radius   float64
		expected bool
	}{
		{"center inside", 20, 15, 1, true},
		{"touching from left", 5, 15, 6, true},
		{"just outside left edge", 5, 15, 5, false},
		{"far away", 100, 100, 10, false},
		{"corner miss", 5, 5, 7, false},
		{"corner hit", 7, 7, 5, true},
		{"overlap from above", 20, 5, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.IntersectsCircle(tt.cx, tt.cy, tt.radius); got != tt.expected {
				t.Errorf("IntersectsCircle(%v, %v, %v) = %v, expected %v",
					tt.cx, tt.cy, tt.radius, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, expected 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %v, expected 0", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("Clamp(12, 0, 10) = %v, expected 10", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionMoveRight) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionMoveRight)
	if !f.Has(ActionMoveRight) {
		t.Error("Set action should be held")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionMoveRight) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionMoveRight) {
		t.Error("Clone should be independent of the original")
	}
}
