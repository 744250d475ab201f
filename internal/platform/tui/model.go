package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skifree/internal/config"
	"github.com/vovakirdan/tui-skifree/internal/core"
	"github.com/vovakirdan/tui-skifree/internal/registry"
	"github.com/vovakirdan/tui-skifree/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a play session.
type Options struct {
	Runtime core.RuntimeConfig
	FPS     int // Frames per second; the simulation always runs at Runtime.TickRate
	Input   config.InputConfig
	Store   *storage.Store // Optional; nil disables score saving
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	log       *log.Logger
	config    core.RuntimeConfig
	fixedSeed bool // Restart replays the same course
	fps       int
	keys      KeyMap
	mapper    *KeyMapper
	help      help.Model
	steer     steering
	clock     accumulator
	pending   core.InputFrame
	ticks     uint64
	gameState core.GameState
	width     int
	height    int
	savedRun  string // RunID of the last saved run
	best      int    // Best saved score for the game
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game and starts a run.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = EntropySeed()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	keys := DefaultKeyMap()
	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		log:       logger,
		config:    cfg,
		fixedSeed: fixed,
		fps:       opts.FPS,
		keys:      keys,
		mapper:    NewKeyMapper(keys),
		help:      help.New(),
		steer:     newSteering(opts.Input.ReleaseAfterTicks),
		clock:     newAccumulator(cfg.TickRate),
		pending:   core.NewInputFrame(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.layout()
	m.best = m.loadBest()

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.log.Info("run started", "game", m.game.ID(), "run", m.gameState.RunID, "seed", m.config.Seed)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch action := m.mapper.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
	default:
		if m.steer.press(action, m.ticks) {
			m.pending.Set(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The course does not depend
// on the terminal size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the game screen to leave room for the help footer.
func (m *Model) layout() {
	footer := lipgloss.Height(m.footer())
	h := core.Max(m.height-footer, 1)
	m.config.ScreenW = m.width
	m.config.ScreenH = h
	m.screen.Resize(m.width, h)
}

// handleFrame runs the simulation ticks due since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	n := m.clock.advance(now)
	for i := 0; i < n; i++ {
		m.ticks++
		for _, a := range m.steer.expire(m.ticks) {
			m.pending.Set(a)
		}
		result := m.game.Step(m.pending)
		m.gameState = result.State
		m.pending.Clear()
	}

	return m, frameCmd(m.fps)
}

// restart saves the current run and starts a new one.
func (m *Model) restart() {
	m.saveRun()
	if !m.fixedSeed {
		m.config.Seed = EntropySeed()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.steer.clear()
	m.pending.Clear()
	m.clock.reset()
	m.log.Info("run started", "game", m.game.ID(), "run", m.gameState.RunID, "seed", m.config.Seed)
}

// saveRun records the current run once, if it scored anything.
func (m *Model) saveRun() {
	st := m.game.State()
	if m.store == nil || st.Score <= 0 || st.RunID == "" || st.RunID == m.savedRun {
		return
	}

	_, err := m.store.SaveRun(storage.RunEntry{
		GameID:   m.game.ID(),
		RunID:    st.RunID,
		Score:    st.Score,
		Distance: st.Distance,
		Style:    st.Style,
	})
	if err != nil {
		m.log.Warn("could not save run", "run", st.RunID, "error", err)
		return
	}
	m.savedRun = st.RunID
	m.best = core.Max(m.best, st.Score)
	m.log.Info("run saved", "run", st.RunID, "score", st.Score, "distance", st.Distance, "style", st.Style)
}

// loadBest reads the game's high score, or 0 without a store.
func (m *Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.log.Warn("could not load high score", "game", m.game.ID(), "error", err)
		return 0
	}
	return best
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.ExpandHome(filepath.Join("~", ".skifree", "screenshots"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer is the high score followed by the key help.
func (m Model) footer() string {
	return helpStyle.Render(fmt.Sprintf("Best: %d  ", m.best) + m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
