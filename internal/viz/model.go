package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mandelzoom/internal/anim"
	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/render"
	"github.com/san-kum/mandelzoom/internal/zoom"
)

// DefaultDelay paces the TUI when no frame delay is configured.
const DefaultDelay = time.Second / 30

type TickMsg time.Time

// Model shows one frame per tick. Viewport and state shown alongside the
// frame are the ones it was rendered from.
type Model struct {
	loop     *anim.Loop
	cfg      anim.Config
	frame    render.Frame
	index    int
	viewport fractal.Viewport
	state    zoom.State
	done     bool
}

func NewModel(loop *anim.Loop, cfg anim.Config) Model {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	return Model{loop: loop, cfg: cfg}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update advances the animation on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	case TickMsg:
		m.index = m.loop.FrameIndex()
		m.viewport = m.loop.Viewport()
		m.state = m.loop.State()
		m.frame = m.loop.Step()
		if m.cfg.Frames > 0 && m.loop.FrameIndex() >= m.cfg.Frames {
			m.done = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.frame == nil {
		return "rendering...\n"
	}
	var b strings.Builder
	b.WriteString(frameStyle.Render(m.frame.String()))
	b.WriteString("\n")
	b.WriteString(StatusLine(m.index, m.viewport, m.state))
	b.WriteString("\n")
	return b.String()
}

// Frame returns the most recently rendered frame.
func (m Model) Frame() render.Frame { return m.frame }

// Run blocks until the user quits or cfg.Frames frames were shown.
func Run(loop *anim.Loop, cfg anim.Config) error {
	p := tea.NewProgram(NewModel(loop, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
