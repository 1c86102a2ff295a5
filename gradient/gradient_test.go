package gradient

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/huecurve"
	"honnef.co/go/huecurve/geom"
)

// Colors are stored with 8 bits per channel.
var quantized = cmpopts.EquateApprox(0, 1.0/255+1e-9)

func newCurve(t *testing.T, guides huecurve.Guides, handles ...geom.Point) *huecurve.Curve {
	t.Helper()
	c, err := huecurve.New(400, 300, huecurve.WithGuides(guides), huecurve.WithHandles(handles))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	return c
}

func newGradient(t *testing.T, c *huecurve.Curve, w, h int) *Gradient {
	t.Helper()
	g, err := New(c, w, h)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(g.Close)
	return g
}

func TestAt(t *testing.T) {
	diff(t, colorful.Color{R: 1, G: 1, B: 1}, At(0, 0, 360, 100), cmpopts.EquateApprox(0, 1e-9))
	diff(t, colorful.Color{R: 1, G: 0, B: 0}, At(0, 50, 360, 100), cmpopts.EquateApprox(0, 1e-9))
	diff(t, colorful.Color{R: 0, G: 1, B: 0}, At(120, 50, 360, 100), cmpopts.EquateApprox(0, 1e-9))
	diff(t, colorful.Color{R: 0, G: 0, B: 1}, At(240, 50, 360, 100), cmpopts.EquateApprox(0, 1e-9))
}

func TestColorsFollowGuides(t *testing.T) {
	c := newCurve(t, huecurve.Guides{0, 0.5, 1}, geom.Pt(100, 100), geom.Pt(300, 200))
	g := newGradient(t, c, 400, 300)

	positions := c.LocalGuidePositions()
	got := g.Colors()
	if len(got) != len(positions) {
		t.Fatalf("got %d colors, want %d", len(got), len(positions))
	}
	for i, pt := range positions {
		want := Color{At(int(pt.X), int(pt.Y), 400, 300)}
		diff(t, want, got[i], quantized)
	}
}

func TestColorsIgnoreOrigin(t *testing.T) {
	c := newCurve(t, huecurve.EvenGuides(4), geom.Pt(100, 100), geom.Pt(300, 200))
	g := newGradient(t, c, 400, 300)
	want := g.Colors()

	var got []Color
	g.OnUpdate(func(colors []Color) { got = colors })
	if err := c.SetOrigin(geom.Pt(-40, -30)); err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("moving the origin didn't resample")
	}
	diff(t, want, got)
}

func TestColorsClampToRaster(t *testing.T) {
	c := newCurve(t, huecurve.Guides{0, 1}, geom.Pt(-50, -50), geom.Pt(1000, 1000))
	g := newGradient(t, c, 400, 300)
	want := []Color{{At(0, 0, 400, 300)}, {At(399, 299, 400, 300)}}
	diff(t, want, g.Colors(), quantized)
}

func TestUpdateEvent(t *testing.T) {
	c := newCurve(t, huecurve.EvenGuides(5), geom.Pt(100, 100), geom.Pt(300, 200))
	g := newGradient(t, c, 400, 300)

	var got [][]Color
	g.OnUpdate(func(colors []Color) { got = append(got, colors) })
	c.DragStart(geom.Pt(100, 100))
	c.Drag(geom.Pt(20, 280))
	c.DragEnd(geom.Pt(20, 280))

	// One update for selecting the handle, one for moving it.
	if len(got) != 2 {
		t.Fatalf("got %d updates, want 2", len(got))
	}
	for _, colors := range got {
		if len(colors) != 5 {
			t.Errorf("got %d colors, want 5", len(colors))
		}
	}
	diff(t, got[1], g.Colors())
	diff(t, Color{At(20, 280, 400, 300)}, got[1][0], quantized)
}

func TestResize(t *testing.T) {
	c := newCurve(t, huecurve.Guides{0}, geom.Pt(100, 100), geom.Pt(300, 200))
	g := newGradient(t, c, 400, 300)
	updates := 0
	g.OnUpdate(func([]Color) { updates++ })
	if err := g.Resize(800, 600); err != nil {
		t.Fatal(err)
	}
	if updates != 1 {
		t.Errorf("got %d updates, want 1", updates)
	}
	w, h := g.Size()
	diff(t, [2]int{800, 600}, [2]int{w, h})
	diff(t, geom.Sz(800, 600), c.Size())
	diff(t, []Color{{At(200, 200, 800, 600)}}, g.Colors(), quantized)

	if err := g.Resize(0, 10); !errors.Is(err, huecurve.ErrInvalidDimension) {
		t.Errorf("got error %v, want ErrInvalidDimension", err)
	}
}

func TestNewInvalidSize(t *testing.T) {
	c := newCurve(t, huecurve.Guides{0})
	if _, err := New(c, -1, 10); !errors.Is(err, huecurve.ErrInvalidDimension) {
		t.Errorf("got error %v, want ErrInvalidDimension", err)
	}
}

func TestClose(t *testing.T) {
	c := newCurve(t, huecurve.Guides{0}, geom.Pt(100, 100))
	g, err := New(c, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	updates := 0
	g.OnUpdate(func([]Color) { updates++ })
	g.Close()
	c.Select(0)
	if updates != 0 {
		t.Errorf("closed gradient emitted %d updates", updates)
	}
}

func TestColorFormatting(t *testing.T) {
	c := Color{colorful.Color{R: 1, G: 0.5, B: 0}}
	diff(t, "rgb(255, 128, 0)", c.RGBString())
	diff(t, "#ff8000", c.Hex())
	diff(t, "rgb(0, 0, 0)", Color{colorful.Color{R: -0.2}}.RGBString())
}
