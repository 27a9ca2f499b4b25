package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/zoom"
	"gopkg.in/yaml.v3"
)

const (
	DefaultZoomFactor = zoom.DefaultFactor
	DefaultMaxFrames  = zoom.DefaultMaxFrames
	DefaultPreset     = "full"
	// CustomPreset labels a viewport that matches no preset.
	CustomPreset = "custom"
)

type Config struct {
	Preset     string           `yaml:"preset"`
	Viewport   fractal.Viewport `yaml:"viewport"`
	ZoomFactor float64          `yaml:"zoom_factor"`
	MaxFrames  int              `yaml:"max_frames"`
	FrameDelay time.Duration    `yaml:"frame_delay"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:     DefaultPreset,
		Viewport:   fractal.DefaultViewport(),
		ZoomFactor: DefaultZoomFactor,
		MaxFrames:  DefaultMaxFrames,
	}
}

// Load reads a YAML config on top of the defaults. A preset named in the
// file supplies the viewport unless the file also sets one explicitly.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Viewport *fractal.Viewport `yaml:"viewport"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if raw.Viewport == nil && cfg.Preset != "" {
		if err := cfg.ApplyPreset(cfg.Preset); err != nil {
			return nil, err
		}
	}
	if raw.Viewport != nil {
		if v, ok := GetPreset(cfg.Preset); !ok || v != cfg.Viewport {
			cfg.Preset = CustomPreset
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
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

// ApplyPreset replaces the viewport with the named preset's.
func (c *Config) ApplyPreset(name string) error {
	v, ok := GetPreset(name)
	if !ok {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c.Preset = name
	c.Viewport = v
	return nil
}

func (c *Config) Validate() error {
	if !c.Viewport.IsValid() {
		return fmt.Errorf("%w: %+v", ErrInvalidViewport, c.Viewport)
	}
	if c.ZoomFactor <= 0 || c.ZoomFactor >= 1 {
		return fmt.Errorf("%w: %v", ErrZoomFactor, c.ZoomFactor)
	}
	if c.MaxFrames < 1 {
		return fmt.Errorf("%w: %d", ErrMaxFrames, c.MaxFrames)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("%w: %v", ErrFrameDelay, c.FrameDelay)
	}
	return nil
}

// Controller builds the zoom controller described by the config.
func (c *Config) Controller() *zoom.Controller {
	return zoom.New(c.ZoomFactor, c.MaxFrames)
}
