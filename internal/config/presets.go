package config

import "sort"

// Presets are ready-made scenarios selectable by name. "classic" is
// the hardcoded reference setup.
var Presets = map[string]*Config{
	"classic": Default(),

	"binary": {
		Scenario: "binary",
		G:        0.5,
		Interval: DefaultInterval,
		Window:   WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
		Bounds:   BoundsConfig{QuitOffscreen: true, Margin: DefaultMargin},
		Bodies: []BodyConfig{
			{Pos: [2]float64{350, 300}, Vel: [2]float64{0, -1.2}, Diam: 26},
			{Pos: [2]float64{550, 300}, Vel: [2]float64{0, 1.2}, Diam: 26},
		},
	},

	"headon": {
		Scenario: "headon",
		G:        0.0005,
		Interval: DefaultInterval,
		Window:   WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
		Bounds:   BoundsConfig{QuitOffscreen: true, Margin: DefaultMargin},
		Bodies: []BodyConfig{
			{Pos: [2]float64{100, 300}, Vel: [2]float64{2.5, 0}, Diam: 22},
			{Pos: [2]float64{800, 300}, Vel: [2]float64{-2.5, 0}, Diam: 22},
		},
	},

	"cluster": {
		Scenario: "cluster",
		G:        0.02,
		Interval: DefaultInterval,
		Window:   WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
		Bounds:   BoundsConfig{QuitOffscreen: true, Margin: DefaultMargin},
		Bodies: []BodyConfig{
			{Pos: [2]float64{450, 300}, Vel: [2]float64{0, 0}, Diam: 48},
			{Pos: [2]float64{250, 300}, Vel: [2]float64{0, 1.4}, Diam: 14},
			{Pos: [2]float64{650, 300}, Vel: [2]float64{0, -1.4}, Diam: 14},
			{Pos: [2]float64{450, 120}, Vel: [2]float64{-1.1, 0}, Diam: 10},
			{Pos: [2]float64{450, 480}, Vel: [2]float64{1.1, 0}, Diam: 10},
		},
	},
}

// GetPreset returns nil for unknown names.
func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
