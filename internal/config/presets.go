package config

import (
	"sort"

	"github.com/san-kum/mandelzoom/internal/fractal"
)

// Presets are well-known starting viewports. Zooming always centers on
// the middle of the preset.
var Presets = map[string]fractal.Viewport{
	"full":          fractal.DefaultViewport(),
	"seahorse":      {XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15},
	"elephant":      {XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02},
	"spiral":        {XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325},
	"triple-spiral": {XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980},
	"dragon":        {XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850},
	"mini-spiral":   {XMin: -1.7390, XMax: -1.7375, YMin: -0.0235, YMax: -0.0220},
}

func GetPreset(name string) (fractal.Viewport, bool) {
	v, ok := Presets[name]
	return v, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
