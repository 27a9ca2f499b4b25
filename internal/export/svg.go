package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/mandelzoom/internal/render"
)

// FrameToSVG lays a text frame out as monospace rows. cellW and cellH are
// the pixel size of one glyph.
func FrameToSVG(frame render.Frame, cellW, cellH float64) string {
	if len(frame) == 0 {
		return ""
	}

	cols := 0
	for _, row := range frame {
		if len(row) > cols {
			cols = len(row)
		}
	}
	width := float64(cols) * cellW
	height := float64(len(frame)) * cellH

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g font-family="monospace" font-size="%.1f" fill="#000000" xml:space="preserve">
`, width, height, width, height, cellH))

	for i, row := range frame {
		y := float64(i+1)*cellH - cellH*0.2
		sb.WriteString(fmt.Sprintf(`<text x="0" y="%.1f" textLength="%.0f">%s</text>
`, y, float64(len(row))*cellW, html.EscapeString(row)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline, one point per sample.
func SeriesToSVG(values []float64, width, height int) string {
	if len(values) < 2 {
		return ""
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	rng := maxV - minV
	if rng == 0 {
		rng = 1
	}
	minV -= rng * 0.1
	maxV += rng * 0.1
	rng = maxV - minV

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="#000000" stroke-width="1.5" d="M`,
		width, height, width, height))

	step := float64(width) / float64(len(values)-1)
	for i, v := range values {
		x := float64(i) * step
		y := float64(height) - (v-minV)/rng*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
