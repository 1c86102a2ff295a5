// Package palette lays out sampled colors as a row of swatches.
package palette

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/huecurve"
	"honnef.co/go/huecurve/gradient"
)

// Swatch geometry, in pixels. Each swatch is a square of SwatchSize pixels
// surrounded by a Border and spaced by Margin on every side.
const (
	SwatchSize = 50
	Border     = 1
	Margin     = 5
)

// pitch is the distance between the origins of neighboring swatches.
const pitch = SwatchSize + 2*Border + 2*Margin

// Event identifies the events emitted by a [Palette].
type Event int

const (
	// EventColorSelected is emitted when a swatch is clicked.
	EventColorSelected Event = iota + 1
)

// Selection is the payload of [EventColorSelected].
type Selection struct {
	Color gradient.Color
	Index int
}

// Palette shows a list of colors as swatches, laid out left to right and
// wrapping onto new rows at the configured width.
//
// A Palette is not safe for concurrent use.
type Palette struct {
	colors []gradient.Color
	wrap   int
	labels bool
	events huecurve.Emitter[Event, Selection]
}

// Option configures a [Palette].
type Option func(*Palette)

// WithWrapWidth wraps swatches onto a new row once a row would be wider than
// width pixels. By default, all swatches are in a single row.
func WithWrapWidth(width int) Option {
	return func(p *Palette) { p.wrap = width }
}

// WithLabels controls whether [Palette.Render] labels each swatch with its
// hex value.
func WithLabels(labels bool) Option {
	return func(p *Palette) { p.labels = labels }
}

func New(colors []gradient.Color, opts ...Option) *Palette {
	p := &Palette{colors: slices.Clone(colors)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Update replaces the palette's colors.
func (p *Palette) Update(colors []gradient.Color) {
	p.colors = slices.Clone(colors)
}

// Colors returns the palette's colors.
func (p *Palette) Colors() []gradient.Color { return slices.Clone(p.colors) }

// Follow keeps the palette in sync with g.
func (p *Palette) Follow(g *gradient.Gradient) *huecurve.Listener[[]gradient.Color] {
	p.Update(g.Colors())
	return g.OnUpdate(p.Update)
}

func (p *Palette) perRow() int {
	if p.wrap <= 0 {
		return max(len(p.colors), 1)
	}
	return max(p.wrap/pitch, 1)
}

// Swatch returns the bounds of swatch i, including its border.
func (p *Palette) Swatch(i int) image.Rectangle {
	n := p.perRow()
	x := Margin + (i%n)*pitch
	y := Margin + (i/n)*pitch
	return image.Rect(x, y, x+SwatchSize+2*Border, y+SwatchSize+2*Border)
}

// Size returns the size of the rendered palette.
func (p *Palette) Size() (width, height int) {
	if len(p.colors) == 0 {
		return 0, 0
	}
	n := p.perRow()
	rows := (len(p.colors) + n - 1) / n
	return min(n, len(p.colors)) * pitch, rows * pitch
}

// SwatchAt returns the index of the swatch containing pt.
func (p *Palette) SwatchAt(pt image.Point) (int, bool) {
	for i := range p.colors {
		if pt.In(p.Swatch(i)) {
			return i, true
		}
	}
	return -1, false
}

// Click emits [EventColorSelected] if pt lies on a swatch.
func (p *Palette) Click(pt image.Point) (Selection, bool) {
	i, ok := p.SwatchAt(pt)
	if !ok {
		return Selection{}, false
	}
	sel := Selection{Color: p.colors[i], Index: i}
	huecurve.Logger().Debug("selected color", "index", i, "color", sel.Color.Hex())
	p.events.Emit(EventColorSelected, sel)
	return sel, true
}

// OnColorSelected registers fn to be called when a swatch is clicked.
func (p *Palette) OnColorSelected(fn func(Selection)) *huecurve.Listener[Selection] {
	return p.events.On(EventColorSelected, fn)
}

// OffColorSelected removes a listener registered with
// [Palette.OnColorSelected].
func (p *Palette) OffColorSelected(l *huecurve.Listener[Selection]) {
	p.events.Off(EventColorSelected, l)
}

// Render draws the palette on a white background.
func (p *Palette) Render() (*image.RGBA, error) {
	w, h := p.Size()
	if w == 0 {
		return image.NewRGBA(image.Rectangle{}), nil
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	for i, c := range p.colors {
		r := p.Swatch(i)
		dc.SetRGB(0, 0, 0)
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("render swatch %d: %w", i, err)
		}
		dc.SetColor(c.Clamped())
		dc.DrawRectangle(float64(r.Min.X+Border), float64(r.Min.Y+Border), SwatchSize, SwatchSize)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("render swatch %d: %w", i, err)
		}
	}

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("render palette: unexpected image type %T", dc.Image())
	}
	if p.labels {
		p.drawLabels(img)
	}
	return img, nil
}

func (p *Palette) drawLabels(img *image.RGBA) {
	face := basicfont.Face7x13
	for i, c := range p.colors {
		r := p.Swatch(i)
		label := c.Hex()
		ink := image.Black
		if _, _, l := c.Clamped().Hsl(); l < 0.5 {
			ink = image.White
		}
		d := font.Drawer{Dst: img, Src: ink, Face: face}
		adv := d.MeasureString(label)
		x := fixed.I(r.Min.X+Border) + (fixed.I(SwatchSize)-adv)/2
		d.Dot = fixed.Point26_6{X: x, Y: fixed.I(r.Max.Y - Border - face.Descent - 2)}
		d.DrawString(label)
	}
}
