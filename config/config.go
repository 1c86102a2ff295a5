// Package config loads huecurve's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v2"
	"honnef.co/go/huecurve"
	"honnef.co/go/huecurve/geom"
)

// Action names a scripted input event.
type Action string

const (
	DragStart Action = "dragstart"
	Drag      Action = "drag"
	DragEnd   Action = "dragend"
	Click     Action = "click"
	KeyDown   Action = "keydown"
	KeyUp     Action = "keyup"
	Resize    Action = "resize"
)

// Step is one scripted input event. Pointer actions use X and Y, key
// actions use Key and Resize uses Width and Height.
type Step struct {
	Action Action  `yaml:"action"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Key    string  `yaml:"key"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Guides struct {
		Count  int    `yaml:"count"`
		Easing string `yaml:"easing"`
	} `yaml:"guides"`
	// Handles are [x, y] pairs. Without handles, the curve gets its
	// default pair.
	Handles    [][]float64 `yaml:"handles"`
	// Origin is the [x, y] offset of the curve inside the viewport.
	Origin     []float64   `yaml:"origin"`
	DragMargin float64     `yaml:"dragMargin"`
	Script     []Step      `yaml:"script"`
	Output     struct {
		Gradient string `yaml:"gradient"`
		Palette  string `yaml:"palette"`
		// Path, if set, receives the curve's path as SVG path data.
		Path     string `yaml:"path"`
	} `yaml:"output"`
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topic    string `yaml:"topic"`
	} `yaml:"mqtt"`
}

// Default returns the configuration used for fields missing from a config
// file.
func Default() Config {
	var c Config
	c.Width = 400
	c.Height = 300
	c.Guides.Count = huecurve.DefaultGuideCount
	c.Guides.Easing = "linear"
	c.DragMargin = huecurve.DefaultDragMargin
	c.Output.Gradient = "gradient.png"
	c.Output.Palette = "palette.png"
	return c
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Parse reads and validates a config from r, starting from [Default].
func Parse(r io.Reader) (Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func finite(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Validate checks the config for values the curve would reject.
func (c Config) Validate() error {
	if !finite(c.Width, c.Height) || c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("size %gx%g: %w", c.Width, c.Height, huecurve.ErrInvalidDimension)
	}
	if c.Guides.Count < 1 {
		return fmt.Errorf("guides.count must be at least 1, got %d", c.Guides.Count)
	}
	if _, ok := huecurve.EasingByName(c.Guides.Easing); !ok {
		return fmt.Errorf("unknown easing %q, must be one of %v", c.Guides.Easing, huecurve.EasingNames())
	}
	for i, h := range c.Handles {
		if len(h) != 2 {
			return fmt.Errorf("handle %d: want [x, y], got %d values", i, len(h))
		}
		if !finite(h...) {
			return fmt.Errorf("handle %d: %w", i, huecurve.ErrNonFinitePoint)
		}
	}
	if c.Origin != nil {
		if len(c.Origin) != 2 {
			return fmt.Errorf("origin: want [x, y], got %d values", len(c.Origin))
		}
		if !finite(c.Origin...) {
			return fmt.Errorf("origin: %w", huecurve.ErrNonFinitePoint)
		}
	}
	if !finite(c.DragMargin) || c.DragMargin < 0 {
		return fmt.Errorf("dragMargin must not be negative, got %g", c.DragMargin)
	}
	for i, s := range c.Script {
		if err := s.validate(); err != nil {
			return fmt.Errorf("script step %d: %w", i, err)
		}
	}
	if c.Mqtt.URL != "" && c.Mqtt.Topic == "" {
		return errors.New("mqtt.topic is required when mqtt.url is set")
	}
	return nil
}

func (s Step) validate() error {
	switch s.Action {
	case DragStart, Drag, DragEnd, Click:
		if !finite(s.X, s.Y) {
			return fmt.Errorf("%s: %w", s.Action, huecurve.ErrNonFinitePoint)
		}
	case KeyDown, KeyUp:
		if s.Key == "" {
			return fmt.Errorf("%s without key", s.Action)
		}
	case Resize:
		if !finite(s.Width, s.Height) || s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("resize to %gx%g: %w", s.Width, s.Height, huecurve.ErrInvalidDimension)
		}
	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
	return nil
}

// GuideFractions returns the configured guides.
func (c Config) GuideFractions() huecurve.Guides {
	fn, ok := huecurve.EasingByName(c.Guides.Easing)
	if !ok {
		return huecurve.EvenGuides(c.Guides.Count)
	}
	return huecurve.EasedGuides(c.Guides.Count, fn)
}

// Points returns the configured handles.
func (c Config) Points() []geom.Point {
	out := make([]geom.Point, 0, len(c.Handles))
	for _, h := range c.Handles {
		if len(h) == 2 {
			out = append(out, geom.Pt(h[0], h[1]))
		}
	}
	return out
}

// CurveOptions returns the options for creating a curve as configured.
func (c Config) CurveOptions() []huecurve.Option {
	opts := []huecurve.Option{
		huecurve.WithGuides(c.GuideFractions()),
		huecurve.WithDragMargin(c.DragMargin),
	}
	if len(c.Handles) > 0 {
		opts = append(opts, huecurve.WithHandles(c.Points()))
	}
	if len(c.Origin) == 2 {
		opts = append(opts, huecurve.WithOrigin(geom.Pt(c.Origin[0], c.Origin[1])))
	}
	return opts
}
