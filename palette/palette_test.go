package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/huecurve"
	"honnef.co/go/huecurve/geom"
	"honnef.co/go/huecurve/gradient"
)

var (
	red   = gradient.Color{Color: colorful.Color{R: 1}}
	green = gradient.Color{Color: colorful.Color{G: 1}}
	blue  = gradient.Color{Color: colorful.Color{B: 1}}
	black = gradient.Color{}
)

func TestLayout(t *testing.T) {
	p := New([]gradient.Color{red, green, blue})
	diff(t, image.Rect(5, 5, 57, 57), p.Swatch(0))
	diff(t, image.Rect(67, 5, 119, 57), p.Swatch(1))
	w, h := p.Size()
	diff(t, [2]int{186, 62}, [2]int{w, h})

	p = New([]gradient.Color{red, green, blue}, WithWrapWidth(130))
	diff(t, image.Rect(5, 67, 57, 119), p.Swatch(2))
	w, h = p.Size()
	diff(t, [2]int{124, 124}, [2]int{w, h})

	// Narrower than a single swatch still fits one per row.
	p = New([]gradient.Color{red, green}, WithWrapWidth(10))
	diff(t, image.Rect(5, 67, 57, 119), p.Swatch(1))
}

func TestEmptyPalette(t *testing.T) {
	p := New(nil)
	w, h := p.Size()
	diff(t, [2]int{0, 0}, [2]int{w, h})
	if _, ok := p.Click(image.Pt(10, 10)); ok {
		t.Error("click on empty palette selected a color")
	}
	img, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if !img.Bounds().Empty() {
		t.Errorf("got bounds %v, want empty", img.Bounds())
	}
}

func TestClick(t *testing.T) {
	p := New([]gradient.Color{red, green, blue})
	var got []Selection
	p.OnColorSelected(func(sel Selection) { got = append(got, sel) })

	for _, pt := range []image.Point{
		image.Pt(5, 5),
		image.Pt(60, 30), // between swatches
		image.Pt(118, 56),
		image.Pt(130, 2), // above the row
	} {
		p.Click(pt)
	}
	diff(t, []Selection{{Color: red, Index: 0}, {Color: green, Index: 1}}, got)

	p.Update([]gradient.Color{blue})
	sel, ok := p.Click(image.Pt(30, 30))
	if !ok {
		t.Fatal("click on swatch didn't select")
	}
	diff(t, Selection{Color: blue, Index: 0}, sel)
}

func TestOffColorSelected(t *testing.T) {
	p := New([]gradient.Color{red})
	calls := 0
	l := p.OnColorSelected(func(Selection) { calls++ })
	p.OffColorSelected(l)
	p.Click(image.Pt(30, 30))
	if calls != 0 {
		t.Errorf("got %d calls, want 0", calls)
	}
}

func TestRender(t *testing.T) {
	p := New([]gradient.Color{red, green}, WithLabels(false))
	img, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, image.Rect(0, 0, 124, 62), img.Bounds())
	diff(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 1))
	diff(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(5, 31))
	diff(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(31, 31))
	diff(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(93, 31))
}

func TestRenderLabels(t *testing.T) {
	p := New([]gradient.Color{black}, WithLabels(true))
	img, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	r := p.Swatch(0)
	for y := r.Min.Y + 30; y < r.Max.Y-Border; y++ {
		for x := r.Min.X + Border; x < r.Max.X-Border; x++ {
			if img.RGBAAt(x, y) == (color.RGBA{255, 255, 255, 255}) {
				found = true
			}
		}
	}
	if !found {
		t.Error("no label drawn on dark swatch")
	}
}

func TestFollow(t *testing.T) {
	c, err := huecurve.New(400, 300,
		huecurve.WithGuides(huecurve.EvenGuides(4)),
		huecurve.WithHandles([]geom.Point{geom.Pt(0, 150), geom.Pt(399, 150)}))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	g, err := gradient.New(c, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	p := New(nil)
	p.Follow(g)
	diff(t, g.Colors(), p.Colors())

	c.DragStart(geom.Pt(0, 150))
	c.Drag(geom.Pt(0, 10))
	diff(t, g.Colors(), p.Colors())
	if len(p.Colors()) != 4 {
		t.Errorf("got %d colors, want 4", len(p.Colors()))
	}
}
