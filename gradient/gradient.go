// Package gradient samples colors from a hue/lightness field along a curve.
package gradient

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/huecurve"
	"honnef.co/go/huecurve/geom"
)

// Event identifies the events emitted by a [Gradient].
type Event int

const (
	// EventUpdate carries the colors under the curve's guides, in guide
	// order.
	EventUpdate Event = iota + 1
)

// Gradient is a raster of colors, hue varying from 0° to 360° left to right
// and lightness from 1 to 0 top to bottom, at full saturation. It follows a
// curve and samples the raster at the curve's guides whenever the curve
// changes.
//
// The raster and the curve share a coordinate space: the pixel at (x, y)
// lies under the curve-local point (x, y).
//
// A Gradient is not safe for concurrent use.
type Gradient struct {
	curve    *huecurve.Curve
	pix      *gg.Pixmap
	colors   []Color
	events   huecurve.Emitter[Event, []Color]
	listener *huecurve.Listener[struct{}]
}

// New returns a gradient of the given size that follows c. It resizes c to
// match.
func New(c *huecurve.Curve, width, height int) (*Gradient, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new gradient of size %dx%d: %w", width, height, huecurve.ErrInvalidDimension)
	}
	g := &Gradient{curve: c}
	g.render(width, height)
	g.listener = c.OnUpdate(g.sample)
	if err := c.UpdateSize(float64(width), float64(height)); err != nil {
		c.OffUpdate(g.listener)
		return nil, err
	}
	return g, nil
}

// At returns the raster's color at pixel (x, y), before quantization.
func At(x, y, width, height int) colorful.Color {
	hue := 360 * float64(x) / float64(width)
	lightness := 1 - float64(y)/float64(height)
	return colorful.Hsl(hue, 1, lightness)
}

func (g *Gradient) render(width, height int) {
	g.pix = gg.NewPixmap(width, height)
	for y := range height {
		for x := range width {
			c := At(x, y, width, height).Clamped()
			g.pix.SetPixel(x, y, gg.RGB(c.R, c.G, c.B))
		}
	}
	huecurve.Logger().Debug("rendered gradient", "width", width, "height", height)
}

// Resize re-renders the raster at the new size and resizes the curve, which
// resamples the colors.
func (g *Gradient) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize gradient to %dx%d: %w", width, height, huecurve.ErrInvalidDimension)
	}
	g.render(width, height)
	return g.curve.UpdateSize(float64(width), float64(height))
}

func (g *Gradient) sample() {
	w, h := g.pix.Width(), g.pix.Height()
	// The raster covers the curve's local space, not the viewport.
	origin := geom.Vec2(g.curve.Origin())
	positions := g.curve.HandlePositions()
	colors := make([]Color, len(positions))
	for i, pt := range positions {
		pt = pt.Translate(origin.Negate())
		x := min(max(int(pt.X), 0), w-1)
		y := min(max(int(pt.Y), 0), h-1)
		px := g.pix.GetPixel(x, y)
		colors[i] = Color{colorful.Color{R: px.R, G: px.G, B: px.B}}
	}
	g.colors = colors
	g.events.Emit(EventUpdate, slices.Clone(colors))
}

// Colors returns the most recently sampled colors.
func (g *Gradient) Colors() []Color { return slices.Clone(g.colors) }

// Image returns the raster.
func (g *Gradient) Image() image.Image { return g.pix }

// Size returns the size of the raster.
func (g *Gradient) Size() (width, height int) { return g.pix.Width(), g.pix.Height() }

// OnUpdate registers fn to be called with the sampled colors every time the
// curve changes.
func (g *Gradient) OnUpdate(fn func([]Color)) *huecurve.Listener[[]Color] {
	return g.events.On(EventUpdate, fn)
}

// OffUpdate removes a listener registered with [Gradient.OnUpdate].
func (g *Gradient) OffUpdate(l *huecurve.Listener[[]Color]) {
	g.events.Off(EventUpdate, l)
}

// Close stops following the curve and removes all listeners.
func (g *Gradient) Close() {
	g.curve.OffUpdate(g.listener)
	g.events.Clear()
}
