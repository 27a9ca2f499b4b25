package fractal

import "math"

const (
	LargeWidth          = 500
	LargeHeight         = 300
	MaxIterations       = 100
	EscapeRadiusSquared = 4.0
)

// Viewport bounds the sampled region of the complex plane.
type Viewport struct {
	XMin float64 `yaml:"xmin" json:"xmin"`
	XMax float64 `yaml:"xmax" json:"xmax"`
	YMin float64 `yaml:"ymin" json:"ymin"`
	YMax float64 `yaml:"ymax" json:"ymax"`
}

// DefaultViewport frames the whole set.
func DefaultViewport() Viewport {
	return Viewport{XMin: -2.0, XMax: 1.0, YMin: -1.5, YMax: 1.5}
}

func (v Viewport) Center() (x, y float64) {
	return (v.XMin + v.XMax) / 2, (v.YMin + v.YMax) / 2
}

func (v Viewport) Span() (x, y float64) {
	return v.XMax - v.XMin, v.YMax - v.YMin
}

// IsValid reports whether the bounds are finite and correctly ordered.
func (v Viewport) IsValid() bool {
	for _, f := range []float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.XMin < v.XMax && v.YMin < v.YMax
}

// Grid holds escape counts in row-major order.
type Grid struct {
	Width, Height int
	Counts        []int
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Counts: make([]int, width*height),
	}
}

func (g *Grid) At(y, x int) int {
	return g.Counts[y*g.Width+x]
}

func (g *Grid) Set(y, x, n int) {
	g.Counts[y*g.Width+x] = n
}

// Mean returns the average escape count over all cells.
func (g *Grid) Mean() float64 {
	if len(g.Counts) == 0 {
		return 0
	}
	sum := 0
	for _, n := range g.Counts {
		sum += n
	}
	return float64(sum) / float64(len(g.Counts))
}

// InsideRatio is the fraction of cells that never escaped.
func (g *Grid) InsideRatio() float64 {
	if len(g.Counts) == 0 {
		return 0
	}
	inside := 0
	for _, n := range g.Counts {
		if n >= MaxIterations {
			inside++
		}
	}
	return float64(inside) / float64(len(g.Counts))
}
