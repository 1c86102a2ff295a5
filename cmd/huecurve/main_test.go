package main

import (
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/huecurve"
	"honnef.co/go/huecurve/config"
	"honnef.co/go/huecurve/geom"
	"honnef.co/go/huecurve/gradient"
)

func TestReplay(t *testing.T) {
	kb := huecurve.NewKeyboard(nil)
	defer kb.Close()
	curve, err := huecurve.New(400, 300, huecurve.WithKeyboard(kb))
	if err != nil {
		t.Fatal(err)
	}
	defer curve.Close()
	grad, err := gradient.New(curve, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	defer grad.Close()

	script := []config.Step{
		{Action: config.KeyDown, Key: "Shift"},
		{Action: config.DragStart, X: 50, Y: 50},
		{Action: config.Drag, X: 60, Y: 40},
		{Action: config.DragEnd, X: 60, Y: 40},
		{Action: config.KeyUp, Key: "Shift"},
		{Action: config.Click, X: 200, Y: 75},
		{Action: config.KeyUp, Key: "Delete"},
		{Action: config.Resize, Width: 800, Height: 600},
	}
	if err := replay(script, curve, kb, grad); err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{geom.Pt(400, 400), geom.Pt(120, 80)}
	if d := cmp.Diff(want, curve.Handles()); d != "" {
		t.Error(d)
	}

	if err := replay([]config.Step{{Action: "jump"}}, curve, kb, grad); err == nil {
		t.Error("unknown action accepted")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Width, cfg.Height = 120, 80
	cfg.Guides.Count = 4
	cfg.Output.Gradient = filepath.Join(dir, "out", "gradient.png")
	cfg.Output.Palette = filepath.Join(dir, "out", "palette.png")
	cfg.Output.Path = filepath.Join(dir, "out", "curve.svg")
	cfg.Origin = []float64{15, 25}
	cfg.Script = []config.Step{{Action: config.Resize, Width: 160, Height: 90}}

	if err := run(cfg, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatal(err)
	}

	for path, size := range map[string][2]int{
		cfg.Output.Gradient: {160, 90},
		cfg.Output.Palette:  {62, 248},
	} {
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		b := img.Bounds()
		if got := [2]int{b.Dx(), b.Dy()}; got != size {
			t.Errorf("%s: got size %v, want %v", filepath.Base(path), got, size)
		}
	}

	svg, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(svg), "M") || !strings.HasSuffix(string(svg), "\n") {
		t.Errorf("unexpected path data %q", svg)
	}
}
