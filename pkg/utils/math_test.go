package utils

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance(0,0,3,4) = %v, want 5", d)
	}
	if d := Distance(1, 1, 1, 1); d != 0 {
		t.Errorf("Distance of identical points = %v, want 0", d)
	}
}

func TestIsFinite(t *testing.T) {
	cases := []struct {
		v    float64
		want bool
	}{
		{0, true},
		{-12.5, true},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, c := range cases {
		if got := IsFinite(c.v); got != c.want {
			t.Errorf("IsFinite(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp above = %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp below = %v", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp inside = %v", got)
	}
}
