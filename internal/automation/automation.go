package automation

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/mandelzoom/internal/anim"
	"github.com/san-kum/mandelzoom/internal/config"
	"github.com/san-kum/mandelzoom/internal/fractal"
	"gopkg.in/yaml.v3"
)

// Tour plays a scripted sequence of zoom animations.
type Tour struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Steps       []TourStep `yaml:"steps"`
}

// TourStep is one leg of a tour. Unset fields fall back to the defaults.
type TourStep struct {
	Preset     string            `yaml:"preset"`
	Viewport   *fractal.Viewport `yaml:"viewport"`
	ZoomFactor float64           `yaml:"zoom_factor"`
	MaxFrames  int               `yaml:"max_frames"`
	Frames     int               `yaml:"frames"`
}

// LoadTour loads a tour from a YAML file
func LoadTour(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tour Tour
	if err := yaml.Unmarshal(data, &tour); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrParse, err)
	}
	if len(tour.Steps) == 0 {
		return nil, fmt.Errorf("tour %q has no steps", tour.Name)
	}

	return &tour, nil
}

// Config resolves a step into a validated config.
func (s TourStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		if err := cfg.ApplyPreset(s.Preset); err != nil {
			return nil, err
		}
	}
	if s.Viewport != nil {
		cfg.Viewport = *s.Viewport
	}
	if s.ZoomFactor != 0 {
		cfg.ZoomFactor = s.ZoomFactor
	}
	if s.MaxFrames != 0 {
		cfg.MaxFrames = s.MaxFrames
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FrameCount is the number of frames the step plays; one full in/out
// cycle unless set.
func (s TourStep) FrameCount(cfg *config.Config) int {
	if s.Frames > 0 {
		return s.Frames
	}
	return 2 * cfg.MaxFrames
}

// RunTour plays every step in order on out and returns the total number
// of frames shown.
func RunTour(ctx context.Context, tour *Tour, out anim.Output, delay time.Duration) (int, error) {
	total := 0
	for i, step := range tour.Steps {
		cfg, err := step.Config()
		if err != nil {
			return total, fmt.Errorf("step %d: %w", i+1, err)
		}

		loop := anim.New(cfg.Controller(), cfg.Viewport)
		n := step.FrameCount(cfg)
		if err := loop.Run(ctx, out, anim.Config{Frames: n, Delay: delay}); err != nil {
			return total + loop.FrameIndex(), fmt.Errorf("step %d run: %w", i+1, err)
		}
		total += n
	}
	return total, nil
}
