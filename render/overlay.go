// Package render draws a curve's path, guides and handles.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"honnef.co/go/huecurve"
	"honnef.co/go/huecurve/geom"
)

// Style describes how an [Overlay] draws a curve. Colors are hex strings as
// accepted by [gg.Hex].
type Style struct {
	CurveColor    string
	CurveWidth    float64
	HandleColor   string
	SelectedColor string
	HandleRadius  float64
	GuideColor    string
	GuideRadius   float64
}

// DefaultStyle is a wide translucent stroke with white handles and black
// guides.
var DefaultStyle = Style{
	CurveColor:    "#ffffff55",
	CurveWidth:    20,
	HandleColor:   "#ffffff",
	SelectedColor: "#add8e6",
	HandleRadius:  huecurve.DefaultHandleRadius,
	GuideColor:    "#000000",
	GuideRadius:   5,
}

// Overlay draws a curve. It also acts as the curve's [huecurve.HitTester],
// so that gestures hit handles exactly where they are drawn.
type Overlay struct {
	curve *huecurve.Curve
	style Style
}

// New returns an overlay for c and installs it as c's hit tester.
func New(c *huecurve.Curve, style Style) *Overlay {
	o := &Overlay{curve: c, style: style}
	c.SetHitTester(o)
	return o
}

// HitTest implements [huecurve.HitTester]. Handles are drawn in order, so
// the last handle under p is the one on top.
func (o *Overlay) HitTest(p geom.Point) (int, bool) {
	return huecurve.HandleAt(o.curve.Handles(), p, o.style.HandleRadius)
}

// Draw draws the curve onto dc in curve-local coordinates: first the path,
// then the handles, then the guides on top. A curve without handles draws
// nothing.
func (o *Overlay) Draw(dc *gg.Context) error {
	path := o.curve.Path()
	if len(path) > 1 {
		appendPath(dc, path)
		dc.SetHexColor(o.style.CurveColor)
		dc.SetLineWidth(o.style.CurveWidth)
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("draw curve: %w", err)
		}
	}

	handles := o.curve.Handles()
	if len(handles) == 0 {
		return nil
	}
	selected, _ := o.curve.Selected()
	for i, h := range handles {
		color := o.style.HandleColor
		if i == selected {
			color = o.style.SelectedColor
		}
		if err := fillCircle(dc, h, o.style.HandleRadius, color); err != nil {
			return fmt.Errorf("draw handle %d: %w", i, err)
		}
	}

	for i, g := range o.curve.LocalGuidePositions() {
		if err := fillCircle(dc, g, o.style.GuideRadius, o.style.GuideColor); err != nil {
			return fmt.Errorf("draw guide %d: %w", i, err)
		}
	}
	return nil
}

// Render draws the curve on top of background, or on a transparent image the
// size of the curve if background is nil.
func (o *Overlay) Render(background image.Image) (*image.RGBA, error) {
	var dc *gg.Context
	if background != nil {
		dc = gg.NewContextForImage(background)
	} else {
		w, h := o.curve.Size().Splat()
		dc = gg.NewContext(int(math.Ceil(w)), int(math.Ceil(h)))
	}
	defer dc.Close()
	if err := o.Draw(dc); err != nil {
		return nil, err
	}
	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("render overlay: unexpected image type %T", dc.Image())
	}
	return img, nil
}

func fillCircle(dc *gg.Context, center geom.Point, r float64, color string) error {
	dc.DrawCircle(center.X, center.Y, r)
	dc.SetHexColor(color)
	return dc.Fill()
}

func appendPath(dc *gg.Context, p geom.BezPath) {
	for _, el := range p {
		switch el.Kind {
		case geom.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case geom.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case geom.CubicToKind:
			dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		default:
			panic("unreachable")
		}
	}
}
