package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		want  Color
		found bool
	}{
		{"orange", ColorOrange, true},
		{"  Bright_Cyan ", ColorBrightCyan, true},
		{"", ColorDefault, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.want || ok != tc.found {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.found)
		}
	}

	for c := ColorDefault; c <= ColorBrown; c++ {
		back, ok := ParseColor(c.String())
		if !ok || back != c {
			t.Errorf("ParseColor(%q) did not round-trip to %d", c.String(), c)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionDig)
	if !f.Has(ActionDig) || f.Has(ActionUp) {
		t.Errorf("Has() mismatch after Set(ActionDig): %v", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}

	var zero InputFrame
	if zero.Has(ActionDig) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set() on zero frame should allocate")
	}
}
