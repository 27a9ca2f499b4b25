// Package render reduces escape-count grids to rows of text glyphs.
package render

import (
	"math"
	"strings"

	"github.com/san-kum/mandelzoom/internal/fractal"
)

const (
	ScreenWidth  = 80
	ScreenHeight = 40
)

// Gradient orders glyphs from emptiest to fullest.
const Gradient = " .:-=+*#%@"

// Frame is one screen of text, top row first.
type Frame []string

func (f Frame) String() string {
	return strings.Join(f, "\n")
}

// Glyph maps an average escape count onto Gradient. Averages at or above
// MaxIterations are inside the set and get the last glyph.
func Glyph(avg float64) byte {
	if avg >= fractal.MaxIterations {
		return Gradient[len(Gradient)-1]
	}
	idx := int(math.Floor((avg / fractal.MaxIterations) * float64(len(Gradient)-1)))
	if idx < 0 {
		idx = 0
	}
	return Gradient[idx]
}

// Downsample averages g into a ScreenHeight x ScreenWidth frame.
func Downsample(g *fractal.Grid) Frame {
	return DownsampleTo(g, ScreenWidth, ScreenHeight)
}

// DownsampleTo averages g into a height x width frame.
//
// Blocks start at floor(y*yScale), floor(x*xScale) and run while the loop
// index is below the real-valued scale, so a 7.5 scale visits 8 rows.
// Cells falling past the grid edge are skipped.
func DownsampleTo(g *fractal.Grid, width, height int) Frame {
	yScale := float64(g.Height) / float64(height)
	xScale := float64(g.Width) / float64(width)

	frame := make(Frame, height)
	line := make([]byte, width)

	for y := 0; y < height; y++ {
		baseY := int(math.Floor(float64(y) * yScale))
		for x := 0; x < width; x++ {
			baseX := int(math.Floor(float64(x) * xScale))

			total, count := 0, 0
			for j := 0; float64(j) < yScale; j++ {
				sy := baseY + j
				if sy >= g.Height {
					break
				}
				for i := 0; float64(i) < xScale; i++ {
					sx := baseX + i
					if sx >= g.Width {
						break
					}
					total += g.At(sy, sx)
					count++
				}
			}

			avg := 0.0
			if count > 0 {
				avg = float64(total) / float64(count)
			}
			line[x] = Glyph(avg)
		}
		frame[y] = string(line)
	}

	return frame
}
