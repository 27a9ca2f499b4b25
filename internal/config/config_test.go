package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/mandelzoom/internal/fractal"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zoom.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Viewport != fractal.DefaultViewport() {
		t.Errorf("expected default viewport, got %+v", cfg.Viewport)
	}
	if cfg.ZoomFactor != 0.9 {
		t.Errorf("expected zoom factor 0.9, got %f", cfg.ZoomFactor)
	}
	if cfg.MaxFrames != 10 {
		t.Errorf("expected 10 frames, got %d", cfg.MaxFrames)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadPreset(t *testing.T) {
	path := writeConfig(t, "preset: seahorse\nmax_frames: 20\nframe_delay: 50ms\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Viewport != Presets["seahorse"] {
		t.Errorf("expected seahorse viewport, got %+v", cfg.Viewport)
	}
	if cfg.MaxFrames != 20 {
		t.Errorf("expected 20 frames, got %d", cfg.MaxFrames)
	}
	if cfg.FrameDelay != 50*time.Millisecond {
		t.Errorf("expected 50ms delay, got %v", cfg.FrameDelay)
	}
	if cfg.ZoomFactor != DefaultZoomFactor {
		t.Errorf("expected default zoom factor, got %f", cfg.ZoomFactor)
	}
}

func TestLoadExplicitViewportWins(t *testing.T) {
	path := writeConfig(t, "preset: dragon\nviewport:\n  xmin: -1\n  xmax: 1\n  ymin: -0.5\n  ymax: 0.5\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := fractal.Viewport{XMin: -1, XMax: 1, YMin: -0.5, YMax: 0.5}
	if cfg.Viewport != want {
		t.Errorf("expected %+v, got %+v", want, cfg.Viewport)
	}
	if cfg.Preset != CustomPreset {
		t.Errorf("expected preset %q for an overridden viewport, got %q", CustomPreset, cfg.Preset)
	}
}

func TestLoadPresetLabel(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"viewport only", "viewport: {xmin: -1, xmax: 1, ymin: -0.5, ymax: 0.5}\n", CustomPreset},
		{"viewport equals preset", "preset: seahorse\nviewport: {xmin: -0.8, xmax: -0.7, ymin: 0.05, ymax: 0.15}\n", "seahorse"},
		{"viewport equals default", "viewport: {xmin: -2, xmax: 1, ymin: -1.5, ymax: 1.5}\n", DefaultPreset},
		{"no viewport", "max_frames: 4\n", DefaultPreset},
	}

	for _, tt := range tests {
		cfg, err := Load(writeConfig(t, tt.body))
		if err != nil {
			t.Fatalf("%s: load failed: %v", tt.name, err)
		}
		if cfg.Preset != tt.want {
			t.Errorf("%s: expected preset %q, got %q", tt.name, tt.want, cfg.Preset)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"bad yaml", "zoom_factor: [1, 2\n", ErrParse},
		{"unknown preset", "preset: nowhere\n", ErrUnknownPreset},
		{"inverted viewport", "viewport: {xmin: 1, xmax: -1, ymin: -1, ymax: 1}\n", ErrInvalidViewport},
		{"factor too big", "zoom_factor: 1.5\n", ErrZoomFactor},
		{"factor zero", "zoom_factor: 0\n", ErrZoomFactor},
		{"no frames", "max_frames: 0\n", ErrMaxFrames},
		{"negative delay", "frame_delay: -1s\n", ErrFrameDelay},
	}

	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.body))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("elephant"); err != nil {
		t.Fatal(err)
	}
	cfg.MaxFrames = 15

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Viewport != cfg.Viewport || loaded.MaxFrames != 15 || loaded.Preset != "elephant" {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestPresetsAreValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d names, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		v, ok := GetPreset(name)
		if !ok {
			t.Errorf("preset %s listed but not found", name)
		}
		if !v.IsValid() {
			t.Errorf("preset %s has invalid viewport %+v", name, v)
		}
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected lookup of unknown preset to fail")
	}
}

func TestController(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZoomFactor = 0.5
	cfg.MaxFrames = 3

	c := cfg.Controller()
	if c.Factor != 0.5 || c.MaxFrames != 3 {
		t.Errorf("unexpected controller %+v", c)
	}
}
