package geom

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane. Point and Vec2 share a layout and
// convert freely; arithmetic lives on Vec2.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Div(f float64) Vec2 { return Vec2{v.X / f, v.Y / f} }
func (v Vec2) Negate() Vec2       { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Hypot() float64     { return math.Hypot(v.X, v.Y) }
func (v Vec2) Hypot2() float64    { return v.Dot(v) }

// Lerp moves from v towards o by the fraction t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return v.Add(o.Sub(v).Mul(t)) }

