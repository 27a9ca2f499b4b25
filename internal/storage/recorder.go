package storage

import (
	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/render"
	"github.com/san-kum/mandelzoom/internal/zoom"
)

// Recorder collects frames and their statistics as the loop emits them.
type Recorder struct {
	Frames []render.Frame
	Stats  []FrameStats
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnFrame(n int, v fractal.Viewport, s zoom.State, g *fractal.Grid, f render.Frame) {
	r.Frames = append(r.Frames, f)
	r.Stats = append(r.Stats, FrameStats{
		Index:       n,
		Direction:   s.Direction.String(),
		Viewport:    v,
		Mean:        g.Mean(),
		InsideRatio: g.InsideRatio(),
	})
}
