package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/zoom"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	statusStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(1)

	labelStyle = lipgloss.NewStyle().Bold(true)
)

// StatusLine summarizes the frame being shown.
func StatusLine(n int, v fractal.Viewport, s zoom.State) string {
	cx, cy := v.Center()
	span, _ := v.Span()
	return statusStyle.Render(fmt.Sprintf("%s %d  %s %s %d  %s (%.6g, %.6g)  %s %.3g",
		labelStyle.Render("frame"), n,
		labelStyle.Render("zoom"), s.Direction, s.FrameCount,
		labelStyle.Render("center"), cx, cy,
		labelStyle.Render("span"), span,
	))
}
