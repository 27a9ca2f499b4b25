// Package anim sequences sampling, downsampling, output and zoom updates.
package anim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/render"
	"github.com/san-kum/mandelzoom/internal/zoom"
)

// Output receives one clear request and then the rows of each frame.
type Output interface {
	Clear() error
	WriteLines(lines []string) error
}

// Observer is notified after every emitted frame.
type Observer interface {
	OnFrame(n int, v fractal.Viewport, s zoom.State, g *fractal.Grid, f render.Frame)
}

type Config struct {
	// Frames stops the loop after this many frames; 0 runs forever.
	Frames int
	// Delay is slept between frames.
	Delay time.Duration
}

// Loop owns the viewport and zoom state across frames.
type Loop struct {
	ctrl      *zoom.Controller
	viewport  fractal.Viewport
	state     zoom.State
	grid      *fractal.Grid
	frame     int
	observers []Observer
}

func New(ctrl *zoom.Controller, start fractal.Viewport) *Loop {
	return &Loop{
		ctrl:     ctrl,
		viewport: start,
		grid:     fractal.NewGrid(fractal.LargeWidth, fractal.LargeHeight),
	}
}

func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) Viewport() fractal.Viewport { return l.viewport }
func (l *Loop) State() zoom.State          { return l.state }
func (l *Loop) FrameIndex() int            { return l.frame }

// Render samples and downsamples the current viewport without advancing.
func (l *Loop) Render() render.Frame {
	fractal.SampleInto(l.grid, l.viewport)
	return render.Downsample(l.grid)
}

// Step renders the current viewport, notifies observers and advances the
// zoom state. It returns the frame that was rendered.
func (l *Loop) Step() render.Frame {
	f := l.Render()
	for _, o := range l.observers {
		o.OnFrame(l.frame, l.viewport, l.state, l.grid, f)
	}
	l.viewport, l.state = l.ctrl.Advance(l.viewport, l.state)
	l.frame++
	return f
}

// Run emits frames to out until cfg.Frames is reached, ctx is done or out
// fails.
func (l *Loop) Run(ctx context.Context, out Output, cfg Config) error {
	for cfg.Frames == 0 || l.frame < cfg.Frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := l.Render()
		if err := out.Clear(); err != nil {
			return fmt.Errorf("frame %d: clear: %w", l.frame, err)
		}
		if err := out.WriteLines(f); err != nil {
			return fmt.Errorf("frame %d: write: %w", l.frame, err)
		}
		for _, o := range l.observers {
			o.OnFrame(l.frame, l.viewport, l.state, l.grid, f)
		}
		l.viewport, l.state = l.ctrl.Advance(l.viewport, l.state)
		l.frame++

		if cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.Delay):
			}
		}
	}
	return nil
}
