// Command huecurve replays a scripted editing session on a color curve and
// renders the result.
//
// Usage:
//
//	huecurve [-config config.yaml] [-v]
//
// The curve, its guides and the script of pointer and key events are read
// from the config file. After replaying the script, huecurve writes the
// gradient with the curve drawn on top, and the palette of sampled colors, as
// PNG files. If an MQTT broker is configured, every color update is
// published to it as it happens.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"honnef.co/go/huecurve"
	"honnef.co/go/huecurve/config"
	"honnef.co/go/huecurve/geom"
	"honnef.co/go/huecurve/gradient"
	"honnef.co/go/huecurve/palette"
	"honnef.co/go/huecurve/publish"
	"honnef.co/go/huecurve/render"
)

func main() {
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	verbose := flag.Bool("v", false, "Log debug output.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	huecurve.SetLogger(logger)
	gg.SetLogger(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("couldn't load config", "err", err)
		os.Exit(1)
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	kb := huecurve.NewKeyboard(nil)
	defer kb.Close()

	opts := append(cfg.CurveOptions(), huecurve.WithKeyboard(kb))
	curve, err := huecurve.New(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return err
	}
	defer curve.Close()
	overlay := render.New(curve, render.DefaultStyle)

	grad, err := gradient.New(curve, pixels(cfg.Width), pixels(cfg.Height))
	if err != nil {
		return err
	}
	defer grad.Close()
	grad.OnUpdate(func(colors []gradient.Color) {
		hex := make([]string, len(colors))
		for i, c := range colors {
			hex[i] = c.Hex()
		}
		logger.Info("colors", "colors", hex)
	})

	pal := palette.New(nil, palette.WithWrapWidth(pixels(cfg.Width)), palette.WithLabels(true))
	pal.Follow(grad)

	if cfg.Mqtt.URL != "" {
		client, err := publish.Connect(cfg.Mqtt.URL, "huecurve", cfg.Mqtt.Username, cfg.Mqtt.Password)
		if err != nil {
			return err
		}
		defer client.Disconnect(250)
		pub := publish.New(client, cfg.Mqtt.Topic)
		pub.Attach(grad)
		defer pub.Detach()
		// Send the initial colors; the script may not change anything.
		if err := pub.Publish(grad.Colors()); err != nil {
			logger.Warn("couldn't publish colors", "err", err)
		}
	}

	if err := replay(cfg.Script, curve, kb, grad); err != nil {
		return err
	}

	composite, err := overlay.Render(grad.Image())
	if err != nil {
		return err
	}
	if err := savePNG(cfg.Output.Gradient, composite); err != nil {
		return err
	}
	logger.Info("wrote gradient", "path", cfg.Output.Gradient)

	swatches, err := pal.Render()
	if err != nil {
		return err
	}
	if err := savePNG(cfg.Output.Palette, swatches); err != nil {
		return err
	}
	logger.Info("wrote palette", "path", cfg.Output.Palette, "colors", len(pal.Colors()))

	if cfg.Output.Path != "" {
		if err := writeFile(cfg.Output.Path, []byte(curve.Path().SVG()+"\n")); err != nil {
			return err
		}
		logger.Info("wrote path", "path", cfg.Output.Path, "length", curve.Length())
	}
	return nil
}

func pixels(f float64) int { return int(math.Round(f)) }

func replay(script []config.Step, curve *huecurve.Curve, kb *huecurve.Keyboard, grad *gradient.Gradient) error {
	for i, step := range script {
		p := geom.Pt(step.X, step.Y)
		switch step.Action {
		case config.DragStart:
			curve.DragStart(p)
		case config.Drag:
			curve.Drag(p)
		case config.DragEnd:
			curve.DragEnd(p)
		case config.Click:
			curve.Click(p)
		case config.KeyDown:
			kb.Handle(huecurve.KeyEvent{Kind: huecurve.KeyDown, Key: step.Key})
		case config.KeyUp:
			kb.Handle(huecurve.KeyEvent{Kind: huecurve.KeyUp, Key: step.Key})
		case config.Resize:
			if err := grad.Resize(pixels(step.Width), pixels(step.Height)); err != nil {
				return fmt.Errorf("script step %d: %w", i, err)
			}
		default:
			return fmt.Errorf("script step %d: unknown action %q", i, step.Action)
		}
	}
	return nil
}

func savePNG(path string, img *image.RGBA) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return gg.FromImage(img).SavePNG(path)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
