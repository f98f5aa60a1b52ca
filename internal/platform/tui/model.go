package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures a Model beyond the game itself.
type Options struct {
	Player string         // Recorded with each result
	Width  int            // Initial terminal width
	Height int            // Initial terminal height
	Logger *log.Logger    // Defaults to a discarding logger
	Store  *storage.Store // Optional; results are not saved when nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one snake session.
// It owns the game and restarts it in place.
type Model struct {
	cfg       snake.Config
	game      *snake.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	player    string
	sessionID string
	sched     *cmdScheduler
	width     int
	height    int
	gen       int
	best      int      // Stored high score
	held      []func() // Food-timer firings delivered while paused
	paused    bool
	saved     bool // Whether the result has been saved for this game
	quitting  bool
}

// NewModel creates a model and starts the first game.
func NewModel(cfg snake.Config, opts Options) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := snake.New(cfg)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		cfg:       cfg,
		game:      game,
		store:     opts.Store,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		player:    opts.Player,
		sessionID: uuid.NewString(),
		sched:     &cmdScheduler{},
		screen:    core.NewScreen(0, 0),
	}
	m.resize(opts.Width, opts.Height)
	m.loadHighScore()
	return m, nil
}

// loadHighScore reads the best stored result, if there is a store.
func (m *Model) loadHighScore() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return
	}
	m.best = best
}

// Init starts the tick chain and the food timer.
func (m Model) Init() tea.Cmd {
	m.game.ScheduleSpawns(m.sched)
	return tea.Batch(tickCmd(m.gen, m.game.Period()), m.sched.flush())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case spawnMsg:
		return m.handleSpawn(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case core.ActionPause:
		if !m.game.Running() {
			return m, nil
		}
		m.paused = !m.paused
		var cmd tea.Cmd
		if !m.paused {
			cmd = m.releaseHeld()
		}
		return m, cmd

	case core.ActionRestart:
		if m.game.Running() {
			return m, nil
		}
		return m.restart()
	}

	if d, ok := directionFor(action); ok && !m.paused {
		m.game.SetDirection(d)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.gen, m.game.Period())
	}

	if out := m.game.Tick(); out.Terminal() {
		m.saveResult()
		// The chain ends here; restart begins a new one.
		return m, nil
	}
	return m, tickCmd(m.gen, m.game.Period())
}

// handleSpawn runs a due food-timer firing, or holds it while paused.
func (m Model) handleSpawn(msg spawnMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	if m.paused {
		m.held = append(m.held, msg.fire)
		return m, nil
	}
	msg.fire()
	return m, m.sched.flush()
}

// releaseHeld runs the firings that came due during a pause.
func (m *Model) releaseHeld() tea.Cmd {
	for _, fire := range m.held {
		fire()
	}
	m.held = nil
	return m.sched.flush()
}

// restart replaces the finished game with a fresh one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	cfg := m.cfg
	cfg.Seed = time.Now().UnixNano()

	game, err := snake.New(cfg)
	if err != nil {
		// The same config built the first game.
		m.logger.Error("cannot restart", "error", err)
		return m, nil
	}

	m.game = game
	m.gen++
	m.sched = &cmdScheduler{gen: m.gen}
	m.held = nil
	m.paused = false
	m.saved = false
	m.sessionID = uuid.NewString()

	m.logger.Debug("game restarted", "session", m.sessionID, "seed", cfg.Seed)
	return m, m.Init()
}

// saveResult stores the finished game once.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	snap := m.game.Snapshot()
	m.best = max(m.best, snap.FoodEaten)
	m.logger.Info("game over",
		"session", m.sessionID,
		"player", m.player,
		"outcome", snap.Outcome,
		"food", snap.FoodEaten,
		"ticks", snap.Tick,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		SessionID: m.sessionID,
		Player:    m.player,
		FoodEaten: snap.FoodEaten,
		Outcome:   snap.Outcome.String(),
		Ticks:     snap.Tick,
		Rows:      snap.Rows,
		Cols:      snap.Cols,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

// resize fits the screen buffer to the terminal, leaving room for help.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	helpLines := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(width, max(0, height-helpLines))
}

// Game returns the running game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Paused reports whether the session is paused.
func (m Model) Paused() bool {
	return m.paused
}

// SessionID returns the ID of the current game.
func (m Model) SessionID() string {
	return m.sessionID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.game.Snapshot(), m.paused, m.best)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg snake.Config, opts Options) error {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
