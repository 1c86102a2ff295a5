package geom

import (
	"math"
	"testing"
)

func TestRectClamp(t *testing.T) {
	r := Sz(400, 300).Rect().Inflate(14, 0)
	tests := []struct {
		in, want Point
	}{
		{Pt(10, 10), Pt(10, 10)},
		{Pt(-100, 500), Pt(-14, 300)},
		{Pt(414, 0), Pt(414, 0)},
		{Pt(1e9, -1e9), Pt(414, 0)},
	}
	for _, tt := range tests {
		diff(t, tt.want, r.Clamp(tt.in))
	}
}

func TestSizeValidity(t *testing.T) {
	for sz, want := range map[Size]bool{
		Sz(1, 1):            true,
		Sz(0, 1):            false,
		Sz(-1, 1):           false,
		Sz(math.Inf(1), 1):  false,
		Sz(1, math.Inf(-1)): false,
	} {
		if got := sz.IsValid(); got != want {
			t.Errorf("%s.IsValid() = %t, want %t", sz, got, want)
		}
	}
	if !Sz(0, 5).IsZero() || Sz(5, 5).IsZero() {
		t.Error("IsZero reports wrong result")
	}
	sx, sy := Sz(400, 300).Ratio(Sz(800, 150))
	diff(t, [2]float64{2, 0.5}, [2]float64{sx, sy})
	diff(t, Pt(20, 5), Pt(10, 10).Scale(sx, sy))
}
