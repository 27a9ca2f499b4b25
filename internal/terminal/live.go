// Package terminal writes frames to an ANSI terminal.
package terminal

import (
	"io"
	"strings"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer builds each frame in memory and emits it in one write.
type LiveRenderer struct {
	w   io.Writer
	buf strings.Builder
}

func NewLiveRenderer(w io.Writer) *LiveRenderer {
	return &LiveRenderer{w: w}
}

// Clear queues the erase-display and cursor-home sequence for the next frame.
func (r *LiveRenderer) Clear() error {
	r.buf.WriteString(clearScreen)
	return nil
}

// WriteLines appends each line and a newline, then writes the frame.
func (r *LiveRenderer) WriteLines(lines []string) error {
	for _, line := range lines {
		r.buf.WriteString(line)
		r.buf.WriteString("\n")
	}
	_, err := io.WriteString(r.w, r.buf.String())
	r.buf.Reset()
	return err
}

func (r *LiveRenderer) Start() { io.WriteString(r.w, hideCursor) }
func (r *LiveRenderer) Stop()  { io.WriteString(r.w, showCursor) }
