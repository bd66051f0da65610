package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/cdc6d/nbody/internal/body"
)

const (
	DefaultG        = 1.0
	DefaultInterval = 20
	DefaultWidth    = 900
	DefaultHeight   = 600
	DefaultMargin   = 100.0
)

type Config struct {
	Scenario string       `yaml:"scenario"`
	G        float64      `yaml:"g"`
	Interval int          `yaml:"interval_ms"`
	Window   WindowConfig `yaml:"window"`
	Bounds   BoundsConfig `yaml:"bounds"`
	Bodies   []BodyConfig `yaml:"bodies"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BoundsConfig controls the off-screen auto-quit: when enabled, any
// body drifting past -Margin on either axis stops the simulation.
type BoundsConfig struct {
	QuitOffscreen bool    `yaml:"quit_offscreen"`
	Margin        float64 `yaml:"margin"`
}

type BodyConfig struct {
	Pos   [2]float64 `yaml:"pos"`
	Vel   [2]float64 `yaml:"vel"`
	Diam  float64    `yaml:"diam"`
	Color string     `yaml:"color,omitempty"`
}

// Default returns the reference three-body scenario.
func Default() *Config {
	return &Config{
		Scenario: "classic",
		G:        DefaultG,
		Interval: DefaultInterval,
		Window:   WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
		Bounds:   BoundsConfig{QuitOffscreen: true, Margin: DefaultMargin},
		Bodies: []BodyConfig{
			{Pos: [2]float64{100, 10}, Vel: [2]float64{1.1, 0}, Diam: 18},
			{Pos: [2]float64{800, 10}, Vel: [2]float64{0.05, 0.7}, Diam: 24},
			{Pos: [2]float64{450, 300}, Vel: [2]float64{-0.4, 0.1}, Diam: 40},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	cfg.Bodies = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Bodies) == 0 {
		return nil, fmt.Errorf("config %s: no bodies", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MakeBodies converts the configured bodies into simulation state.
func (c *Config) MakeBodies() []body.Body {
	bodies := make([]body.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = body.Body{
			Pos:  body.Vec2{X: b.Pos[0], Y: b.Pos[1]},
			Vel:  body.Vec2{X: b.Vel[0], Y: b.Vel[1]},
			Diam: b.Diam,
		}
	}
	return bodies
}

// BodyColor resolves the i-th body's display color. Invalid or empty
// hex strings fall back to a hue-spread palette so any body count gets
// distinct colors.
func (c *Config) BodyColor(i int) colorful.Color {
	if i >= 0 && i < len(c.Bodies) && c.Bodies[i].Color != "" {
		if col, err := colorful.Hex(c.Bodies[i].Color); err == nil {
			return col
		}
	}
	hue := float64((i * 137) % 360) // golden-angle spacing
	return colorful.Hsv(hue, 0.55, 0.95)
}
