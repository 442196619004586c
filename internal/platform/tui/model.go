package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kolor/internal/clock"
	"github.com/vovakirdan/kolor/internal/config"
	"github.com/vovakirdan/kolor/internal/core"
	"github.com/vovakirdan/kolor/internal/games/kolor"
	"github.com/vovakirdan/kolor/internal/storage"
)

// HistoryStore records finished sessions. *storage.Store satisfies it.
type HistoryStore interface {
	SaveSession(rec storage.SessionRecord) (int64, error)
}

// Options configures a game screen.
type Options struct {
	Game      config.KolorConfig
	Runtime   core.RuntimeConfig
	Best      kolor.Store     // Best score store; nil disables persistence
	History   HistoryStore    // Session history; nil disables it
	Scheduler clock.Scheduler // Countdown clock; defaults to wall time
	Logger    *log.Logger
	// ScreenshotDir is where ctrl+s writes screen dumps. Empty disables them.
	ScreenshotDir string
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a kolor session.
type Model struct {
	opts   Options
	sink   *tickSink
	runner *kolor.Runner
	snap   kolor.Snapshot
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	cursor     int
	quitting   bool
	scoreSaved bool // Whether history has been saved for current game over
}

// NewModel creates the model and its first session. The countdown starts
// in Init.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = clock.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		opts:   opts,
		sink:   &tickSink{},
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.newSession(opts.Runtime.Seed)
	return m
}

func (m *Model) newSession(seed int64) {
	session := kolor.NewSession(m.opts.Best,
		kolor.WithConfig(m.opts.Game),
		kolor.WithSeed(seed),
		kolor.WithLogger(m.opts.Logger),
	)
	m.runner = kolor.NewRunner(session, m.opts.Scheduler, m.sink.snapshot)
	m.snap = m.runner.Snapshot()
	m.cursor = 0
	m.scoreSaved = false
	m.keys.SetOver(false)
}

// Init starts the countdown.
func (m Model) Init() tea.Cmd {
	m.runner.Start()
	return tea.SetWindowTitle("kolor")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case SnapshotMsg:
		m.apply(kolor.Snapshot(msg))
	}

	return m, nil
}

func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	if i, ok := action.PickIndex(); ok {
		m.cursor = i
		return m.guess(i), nil
	}

	switch action {
	case core.ActionQuit:
		m.runner.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.cursor = (m.cursor + kolor.OptionCount - 1) % kolor.OptionCount
	case core.ActionRight:
		m.cursor = (m.cursor + 1) % kolor.OptionCount
	case core.ActionConfirm:
		return m.guess(m.cursor), nil
	case core.ActionRestart:
		if m.snap.Over {
			m.runner.Stop()
			m.newSession(time.Now().UnixNano())
			m.runner.Start()
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionScreenshot:
		m.saveScreenshot()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.snap.Over {
		return m, nil
	}
	i := kolor.NewLayout(m.screen.Width(), m.screen.Height()).OptionAt(msg.X, msg.Y)
	if i < 0 {
		return m, nil
	}
	m.cursor = i
	return m.guess(i), nil
}

// handleResize keeps the last terminal line for the help footer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) guess(i int) Model {
	m.apply(m.runner.GuessIndex(i))
	return m
}

// apply takes a newer snapshot of the current session. Ticks queued before
// a guess or restart arrive late and are dropped here.
func (m *Model) apply(s kolor.Snapshot) {
	if s.ID != m.snap.ID || s.Seq < m.snap.Seq {
		return
	}
	m.snap = s
	m.keys.SetOver(s.Over)

	// Save history on game over (once)
	if s.Over && !m.scoreSaved {
		m.saveHistory()
		m.scoreSaved = true
	}
}

func (m *Model) saveHistory() {
	if m.opts.History == nil {
		return
	}
	rec := storage.SessionRecord{
		SessionID: m.snap.ID,
		Score:     m.snap.Score,
		Correct:   m.snap.Correct,
		Wrong:     m.snap.Wrong,
		Timeouts:  m.snap.Timeouts,
		Rounds:    m.snap.Rounds,
	}
	if _, err := m.opts.History.SaveSession(rec); err != nil {
		m.opts.Logger.Warn("cannot save session", "id", rec.SessionID, "err", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	kolor.Render(m.screen, m.snap, m.cursorIndex())

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot dir", "err", err)
		return
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("kolor_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

func (m Model) cursorIndex() int {
	if m.snap.Over {
		return -1
	}
	return m.cursor
}

// Snapshot returns the state the model last rendered from.
func (m Model) Snapshot() kolor.Snapshot {
	return m.snap
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	kolor.Render(m.screen, m.snap, m.cursorIndex())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click an option to pick it
	)
	model.sink.attach(p.Send)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.runner.Stop()
	}
	return err
}
