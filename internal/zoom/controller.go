// Package zoom drives the viewport through alternating zoom-in and
// zoom-out runs.
package zoom

import "github.com/san-kum/mandelzoom/internal/fractal"

const (
	DefaultFactor    = 0.9
	DefaultMaxFrames = 10
)

type Direction int

const (
	ZoomingIn Direction = iota
	ZoomingOut
)

func (d Direction) String() string {
	if d == ZoomingOut {
		return "out"
	}
	return "in"
}

// State tracks the current direction and how many frames it has run.
type State struct {
	Direction  Direction
	FrameCount int
}

// Controller scales the viewport about its center once per frame.
type Controller struct {
	Factor    float64
	MaxFrames int
}

func New(factor float64, maxFrames int) *Controller {
	return &Controller{Factor: factor, MaxFrames: maxFrames}
}

func NewDefault() *Controller {
	return New(DefaultFactor, DefaultMaxFrames)
}

// Adjustment is the span multiplier applied while moving in direction d.
func (c *Controller) Adjustment(d Direction) float64 {
	if d == ZoomingIn {
		return c.Factor
	}
	return 1 / c.Factor
}

// Advance returns the viewport for the next frame and the updated state.
// After MaxFrames frames in one direction the direction flips and the
// count restarts, so the following call already moves the other way.
func (c *Controller) Advance(v fractal.Viewport, s State) (fractal.Viewport, State) {
	adj := c.Adjustment(s.Direction)

	xCenter, yCenter := v.Center()
	xRange, yRange := v.Span()
	xRange *= adj
	yRange *= adj

	next := fractal.Viewport{
		XMin: xCenter - xRange/2,
		XMax: xCenter + xRange/2,
		YMin: yCenter - yRange/2,
		YMax: yCenter + yRange/2,
	}

	s.FrameCount++
	if s.FrameCount >= c.MaxFrames {
		s.FrameCount = 0
		if s.Direction == ZoomingIn {
			s.Direction = ZoomingOut
		} else {
			s.Direction = ZoomingIn
		}
	}

	return next, s
}
