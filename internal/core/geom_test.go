package core

import "testing"

func TestCenteredAt(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy int
		w, h   int
		want   Rect
	}{
		{"card", 40, 12, 6, 3, Rect{X: 37, Y: 11, W: 6, H: 3}},
		{"odd width", 10, 5, 5, 3, Rect{X: 8, Y: 4, W: 5, H: 3}},
		{"near origin", 1, 1, 6, 3, Rect{X: -2, Y: 0, W: 6, H: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredAt(tc.cx, tc.cy, tc.w, tc.h)
			if got != tc.want {
				t.Errorf("CenteredAt(%d, %d, %d, %d) = %+v, want %+v", tc.cx, tc.cy, tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestRectInner(t *testing.T) {
	card := NewRect(10, 4, 6, 3)
	if got, want := card.Inner(), NewRect(11, 5, 4, 1); got != want {
		t.Errorf("Inner() = %+v, want %+v", got, want)
	}

	thin := NewRect(0, 0, 2, 5)
	if got := thin.Inner(); got.W != 0 || got.H != 0 {
		t.Errorf("thin box Inner() = %+v, want empty", got)
	}
}

func TestRectWithin(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"whole screen", NewRect(0, 0, 80, 24), true},
		{"card in corner", NewRect(74, 21, 6, 3), true},
		{"past right edge", NewRect(75, 0, 6, 3), false},
		{"past bottom edge", NewRect(0, 22, 6, 3), false},
		{"negative origin", NewRect(-1, 0, 6, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Within(80, 24); got != tc.want {
				t.Errorf("Within(80, 24) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{-1, 0, 3, 0},
		{2, 0, 3, 2},
		{7, 0, 3, 3},
		{0, 0, 0, 0},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
