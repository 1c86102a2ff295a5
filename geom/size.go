package geom

import (
	"fmt"
	"math"
)

// Size is the width and height of a drawing surface, in device pixels.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// IsValid reports whether both sides are finite and strictly positive.
func (sz Size) IsValid() bool {
	return sz.Width > 0 && sz.Height > 0 &&
		!math.IsInf(sz.Width, 0) && !math.IsInf(sz.Height, 0)
}

// IsZero reports whether either side is zero. A zero size has no
// meaningful ratio to any other size.
func (sz Size) IsZero() bool {
	return sz.Width == 0 || sz.Height == 0
}

// Ratio returns the per-axis factors that map sz onto o.
func (sz Size) Ratio(o Size) (sx, sy float64) {
	return o.Width / sz.Width, o.Height / sz.Height
}

// Rect returns the rectangle spanning from the origin to (w, h).
func (sz Size) Rect() Rect {
	return Rect{X1: sz.Width, Y1: sz.Height}
}
