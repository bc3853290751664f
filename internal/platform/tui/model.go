package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// DefaultMaxFrame caps the wall time a single frame may feed the simulation.
const DefaultMaxFrame = 250 * time.Millisecond

// Recorder is implemented by games that can hand out a replay of the
// current run.
type Recorder interface {
	Replay() flappy.Replay
}

// Options configures the host around a game.
type Options struct {
	Store    *storage.Store // Replay journal; nil disables saving
	Logger   *log.Logger    // Nil uses the default charmbracelet logger
	MaxFrame time.Duration  // Zero uses DefaultMaxFrame
}

// Model is the Bubble Tea model that drives one game.
// Each TickMsg is a frame; the frame clock turns it into fixed steps.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	clock      *FrameClock
	keys       GameKeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	saved      bool // Whether the current run has been written to the journal
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	maxFrame := opts.MaxFrame
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		clock:      NewFrameClock(cfg.TickRate, maxFrame),
		keys:       DefaultGameKeyMap(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run ready", "game", m.game.ID(), "seed", m.config.Seed, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionJump:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize records the new terminal size. The game reads it on the next
// step, so a resize never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs as many fixed steps as the frame clock allows.
// Input gathered since the last frame goes to the first step only.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	steps := m.clock.Advance(now)
	for i := range steps {
		in := core.NewInputFrame()
		if i == 0 {
			in = m.inputFrame
		}
		result := m.game.Step(core.Tick{
			Input:   in,
			Dt:      m.config.StepSeconds(),
			ScreenW: m.config.ScreenW,
			ScreenH: m.config.ScreenH,
		})
		m.observe(result.State)
		if m.gameState.GameOver {
			break
		}
	}
	if steps > 0 {
		m.inputFrame = core.NewInputFrame()
	}

	return m, tickCmd(m.config.TickRate)
}

// observe tracks phase changes and saves the run once it has ended.
func (m *Model) observe(state core.GameState) {
	prev := m.gameState
	m.gameState = state

	if state.Started && !prev.Started {
		m.logger.Debug("run started", "game", m.game.ID(), "run", m.replay().RunID)
	}
	if state.GameOver && !prev.GameOver {
		r := m.replay()
		m.logger.Debug("run ended", "game", m.game.ID(), "run", r.RunID, "score", state.Score, "ticks", r.Ticks)
		m.saveReplay()
	}
}

// restart performs a full reset with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.saved = false
	m.clock.Reset()
	m.inputFrame = core.NewInputFrame()
	m.logger.Debug("run reset", "game", m.game.ID(), "seed", m.config.Seed)
}

// saveReplay writes the finished run to the journal, once per run.
func (m *Model) saveReplay() {
	if m.saved || m.store == nil {
		return
	}
	rec, ok := m.game.(Recorder)
	if !ok {
		return
	}
	m.saved = true

	// Best-effort save, the game continues regardless
	if err := m.store.SaveReplay(m.game.ID(), rec.Replay()); err != nil {
		m.logger.Warn("could not save replay", "error", err)
	}
}

// replay returns the recording of the current run, or a zero Replay for
// games that do not record.
func (m Model) replay() flappy.Replay {
	if rec, ok := m.game.(Recorder); ok {
		return rec.Replay()
	}
	return flappy.Replay{}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
