package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBasisDegenerate(t *testing.T) {
	if p := Basis(nil); len(p) != 0 {
		t.Errorf("got %v for no points, want empty path", p)
	}
	diff(t, BezPath{MoveTo(Pt(1, 2))}, Basis([]Point{Pt(1, 2)}))
	diff(t, BezPath{MoveTo(Pt(1, 2)), LineTo(Pt(3, 4))}, Basis([]Point{Pt(1, 2), Pt(3, 4)}))
}

func TestBasisMatchesD3(t *testing.T) {
	// d3.line().curve(d3.curveBasis)([[0,0],[60,60],[120,0]]) yields
	// M0,0L10,10C20,20,40,40,60,40C80,40,100,20,110,10L120,0
	got := Basis([]Point{Pt(0, 0), Pt(60, 60), Pt(120, 0)})
	want := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 10)),
		CubicTo(Pt(20, 20), Pt(40, 40), Pt(60, 40)),
		CubicTo(Pt(80, 40), Pt(100, 20), Pt(110, 10)),
		LineTo(Pt(120, 0)),
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestBasisEndpoints(t *testing.T) {
	pts := []Point{Pt(10, 10), Pt(200, 40), Pt(20, 300), Pt(380, 280), Pt(150, 150)}
	p := NewPath(Basis(pts), DefaultAccuracy)
	start, err := p.Start()
	if err != nil {
		t.Fatal(err)
	}
	end, err := p.End()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pts[0], start)
	diff(t, pts[len(pts)-1], end)
}

func TestPathPointAtLengthLine(t *testing.T) {
	p := Interpolate([]Point{Pt(100, 100), Pt(300, 200)}, DefaultAccuracy)
	want := math.Hypot(200, 100)
	diff(t, want, p.Length(), cmpopts.EquateApprox(0, 1e-9))

	for _, tt := range []struct {
		f    float64
		want Point
	}{
		{0, Pt(100, 100)},
		{0.5, Pt(200, 150)},
		{1, Pt(300, 200)},
		// clamped, like SVG
		{-1, Pt(100, 100)},
		{2, Pt(300, 200)},
	} {
		got, err := p.PointAtFraction(tt.f)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-6))
	}
}

func TestPathPointAtLengthIsArcLength(t *testing.T) {
	p := Interpolate([]Point{Pt(0, 0), Pt(100, 300), Pt(250, -50), Pt(400, 200)}, 1e-9)
	total := p.Length()
	const n = 64
	prev, _ := p.Start()
	var walked float64
	// Walking the samples in small steps must cover roughly the distances
	// requested; chords are never longer than the arc they span.
	for i := 1; i <= n; i++ {
		pt, err := p.PointAtLength(total * float64(i) / n)
		if err != nil {
			t.Fatal(err)
		}
		chord := pt.Sub(prev).Hypot()
		if chord > total/n+1e-6 {
			t.Errorf("step %d: chord %g longer than arc %g", i, chord, total/n)
		}
		walked += chord
		prev = pt
	}
	if walked < total*0.99 {
		t.Errorf("chords sum to %g, expected close to %g", walked, total)
	}
}

func TestPathEmpty(t *testing.T) {
	p := Interpolate(nil, DefaultAccuracy)
	if len(p.Elements()) != 0 {
		t.Error("path of no points isn't empty")
	}
	if l := p.Length(); l != 0 {
		t.Errorf("got length %g, want 0", l)
	}
	if _, err := p.PointAtLength(0); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got error %v, want %v", err, ErrEmptyPath)
	}
}

func TestPathSinglePoint(t *testing.T) {
	p := Interpolate([]Point{Pt(7, 9)}, DefaultAccuracy)
	for _, f := range []float64{0, 0.5, 1} {
		got, err := p.PointAtFraction(f)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, Pt(7, 9), got)
	}
}

func TestBezPathSVG(t *testing.T) {
	p := Basis([]Point{Pt(0, 0), Pt(60, 60), Pt(120, 0)})
	want := "M0,0 L10,10 C20,20 40,40 60,40 C80,40 100,20 110,10 L120,0"
	if got := p.SVG(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
