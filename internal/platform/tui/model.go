// Package tui provides the Bubble Tea integration for pixslide: the game
// model, the frame-buffer drawing sink, the scoreboard, and the SSH server.
package tui

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pixslide/pixslide/internal/pixel"
	"github.com/pixslide/pixslide/internal/puzzle"
	"github.com/pixslide/pixslide/internal/raster"
	"github.com/pixslide/pixslide/internal/storage"
)

// Options configures a game session.
type Options struct {
	Source    image.Image    // decoded artwork
	BoardSize int            // board dimension n
	Crop      bool           // crop-to-square instead of stretch
	Store     *storage.Store // optional solve persistence
	Width     int            // terminal width in cells
	Height    int            // terminal height in cells
	Seed      int64          // RNG seed; 0 means time-based
}

// tickMsg drives the elapsed-time display once per second.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	solvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Model is the Bubble Tea model for an interactive puzzle session.
// Bubble Tea delivers all input through a single ordered message loop, so
// the model is the sole mutator of the permutation; no locking is needed.
type Model struct {
	src   image.Image
	crop  bool
	store *storage.Store
	rng   *rand.Rand

	board    *puzzle.Puzzle
	renderer *raster.Renderer
	fb       *FrameBuffer

	keys KeyMap
	help help.Model

	width, height int
	layoutErr     error

	moves      int
	startedAt  time.Time
	elapsed    time.Duration
	solved     bool
	solveSaved bool
	quitting   bool
}

// NewModel creates a model with a freshly shuffled board.
// Layout or asset problems at construction time are returned as errors so
// the CLI can report them before entering the alternate screen.
func NewModel(opts Options) (Model, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	board, err := puzzle.New(opts.BoardSize, rng)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		src:       opts.Source,
		crop:      opts.Crop,
		store:     opts.Store,
		rng:       rng,
		board:     board,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		startedAt: time.Now(),
	}

	if err := m.layout(opts.Width, opts.Height); err != nil {
		return Model{}, err
	}
	return m, nil
}

// layout sizes the image to the terminal, rebuilds the renderer and frame
// buffer, and draws the full board. The permutation is untouched, so a
// resize never loses progress.
func (m *Model) layout(width, height int) error {
	m.width, m.height = width, height

	size, err := raster.FitImageSize(width, height, m.board.Size())
	if err != nil {
		return err
	}

	buf, err := pixel.FromImage(m.src, size, m.crop)
	if err != nil {
		return err
	}

	r, err := raster.New(buf, m.board)
	if err != nil {
		return err
	}

	m.renderer = r
	m.fb = NewFrameBuffer(r.ScreenCols(), r.ScreenRows())
	r.RenderBoard(m.fb)
	return nil
}

// Init starts the clock tick.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tickMsg:
		if !m.solved && m.layoutErr == nil {
			m.elapsed = time.Since(m.startedAt)
		}
		return m, tickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.reshuffle()
		return m, nil
	}

	if dir, ok := m.keys.MapDirection(msg); ok {
		m.applyMove(dir)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if err := m.layout(msg.Width, msg.Height); err != nil {
		m.layoutErr = err
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}
	m.layoutErr = nil
	return m, nil
}

// applyMove slides one tile. Moves against the board edge are silently
// ignored so holding a key near an edge never looks like a failure.
func (m *Model) applyMove(dir puzzle.Direction) {
	if m.solved || m.layoutErr != nil {
		return
	}

	from, to, ok := m.board.Move(dir)
	if !ok {
		return
	}

	m.moves++
	m.renderer.RenderCell(m.fb, from)
	m.renderer.RenderCell(m.fb, to)

	if m.board.IsSolved() {
		m.solved = true
		m.elapsed = time.Since(m.startedAt)
		m.saveSolve()
	}
}

// reshuffle starts a fresh board with the same artwork and layout.
func (m *Model) reshuffle() {
	board, err := puzzle.New(m.board.Size(), m.rng)
	if err != nil {
		// Size was validated at construction.
		return
	}
	m.board = board
	m.moves = 0
	m.startedAt = time.Now()
	m.elapsed = 0
	m.solved = false
	m.solveSaved = false

	if m.layoutErr == nil {
		if err := m.layout(m.width, m.height); err != nil {
			m.layoutErr = err
		}
	}
}

// saveSolve records the finished run once, best-effort.
func (m *Model) saveSolve() {
	if m.store == nil || m.solveSaved {
		return
	}
	//nolint:errcheck // Best-effort save, the solved screen shows regardless
	m.store.SaveSolve(m.board.Size(), m.moves, m.elapsed)
	m.solveSaved = true
}

// View renders the board plus a one-line HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.layoutErr != nil {
		return warningStyle.Render(fmt.Sprintf("%v", m.layoutErr)) +
			"\n" + statusStyle.Render("resize the terminal or press q to quit")
	}

	return m.fb.String() + "\n" + m.statusLine()
}

// statusLine builds the HUD below the board.
func (m Model) statusLine() string {
	if m.solved {
		return solvedStyle.Render(fmt.Sprintf("Solved in %d moves (%s)", m.moves, fmtDuration(m.elapsed))) +
			statusStyle.Render("  ·  r reshuffle · q quit")
	}
	return statusStyle.Render(fmt.Sprintf("Moves %d · %s  ·  ", m.moves, fmtDuration(m.elapsed))) +
		m.help.ShortHelpView(m.keys.ShortHelp())
}

// fmtDuration formats an elapsed time as m:ss.
func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Run starts the Bubble Tea program for a local session. Bubble Tea owns
// raw mode, the alternate screen, and cursor visibility, and restores them
// on every exit path.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
