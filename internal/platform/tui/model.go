package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong13/internal/core"
	"github.com/vovakirdan/pong13/internal/games/pong"
	"github.com/vovakirdan/pong13/internal/platform"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	loop     *pong.Loop
	fb       *core.Framebuffer
	queue    *core.KeyQueue
	keys     KeyMap
	help     help.Model
	delay    time.Duration
	width    int
	height   int
	quitting bool
}

// NewModel creates a model around a loop that draws into fb and reads from
// queue. Terminal size is assumed to fit until a resize message says otherwise.
func NewModel(loop *pong.Loop, fb *core.Framebuffer, queue *core.KeyQueue, delay time.Duration) Model {
	return Model{
		loop:   loop,
		fb:     fb,
		queue:  queue,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		delay:  delay,
		width:  platform.MinCols,
		height: platform.MinRows,
	}
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key for the next frame. Keys are never acted on
// directly; the loop polls one per frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.queue.Push(m.keys.Translate(msg))
	return m, nil
}

// handleTick runs one frame and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.loop.Frame() == pong.Quit {
		m.loop.Finish()
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.delay)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !platform.Fits(m.width, m.height) {
		return platform.TooSmallMessage(m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderFramebuffer(m.fb),
		m.help.View(m.keys),
	)
}
