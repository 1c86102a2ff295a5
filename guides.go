package huecurve

import (
	"fmt"
	"math"
	"slices"

	"github.com/fogleman/ease"
)

// DefaultGuideCount is the number of guides a curve gets unless configured
// otherwise.
const DefaultGuideCount = 10

// Guides are fractions of a curve's arc length at which the curve is sampled.
// Each value lies in [0, 1]; order is preserved and duplicates are allowed.
type Guides []float64

// EvenGuides returns n fractions evenly spaced over [0, 1], including both
// ends. A single guide sits at the start of the curve.
func EvenGuides(n int) Guides {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return Guides{0}
	}
	g := make(Guides, n)
	for i := range g {
		g[i] = float64(i) / float64(n-1)
	}
	return g
}

// EasedGuides returns n evenly spaced fractions mapped through the easing
// function fn. Results outside [0, 1], as produced by overshooting easings,
// are clamped.
func EasedGuides(n int, fn func(float64) float64) Guides {
	g := EvenGuides(n)
	for i, f := range g {
		g[i] = clamp01(fn(f))
	}
	return g
}

// Easings maps the names accepted by [EasingByName] to easing functions.
var easings = map[string]func(float64) float64{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
}

// EasingByName returns the easing function with the given name, such as
// "linear" or "in-out-quad".
func EasingByName(name string) (func(float64) float64, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// EasingNames returns the names accepted by [EasingByName], sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// normalize returns a copy of g with values clamped to [0, 1].
func (g Guides) normalize() (Guides, error) {
	out := make(Guides, len(g))
	for i, f := range g {
		if math.IsNaN(f) {
			return nil, fmt.Errorf("guide %d: %w", i, ErrInvalidGuide)
		}
		out[i] = clamp01(f)
	}
	return out, nil
}

func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}
