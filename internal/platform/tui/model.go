package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// view is the screen the session is showing.
type view int

const (
	viewMenu view = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow for one player: menu -> game -> menu,
// with the scoreboard reachable from the menu. It is used both for local
// play and for each SSH session.
type SessionModel struct {
	machine    *snake.Machine
	loop       *loop.Loop
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	menu       menuState
	scoreboard ScoreboardModel
	view       view
	quitting   bool
}

// NewSessionModel creates a session host around a fresh simulation.
// store and logger may be nil.
func NewSessionModel(settings snake.Settings, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("player", cfg.Player)

	machine := snake.NewMachine(settings, cfg.Seed)
	m := SessionModel{
		machine:   machine,
		loop:      loop.New(machineSim{machine}, cfg.MaxCatchUp, logger),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.menu = newMenuState(store)

	machine.OnGameOver(gameOverListener(store, logger, cfg.Player))
	return m
}

// gameOverListener logs every finished session and records it in the store.
func gameOverListener(store *storage.Store, logger *log.Logger, player string) func(snake.Result) {
	return func(r snake.Result) {
		logger.Info("game over",
			"difficulty", r.Difficulty,
			"score", r.Score,
			"length", r.Length,
			"cause", r.Cause,
			"ticks", r.Ticks,
		)
		if store == nil {
			return
		}
		if _, err := store.SaveResult(player, r); err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}
}

// Init initializes the session in the menu.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.view == viewScores {
			return m.updateScoreboard(msg)
		}
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case tea.KeyMsg:
		switch m.view {
		case viewGame:
			return m.handleGameKey(msg)
		case viewScores:
			return m.updateScoreboard(msg)
		default:
			return m.handleMenuKey(msg)
		}
	}

	if m.view == viewScores {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleFrame advances the loop. Frames stop being scheduled once the
// machine leaves InGame.
func (m SessionModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.view != viewGame {
		return m, nil
	}

	m.loop.Advance(now)

	if !m.machine.Active() {
		m.view = viewMenu
		m.menu.refresh(m.machine.Difficulty())
		return m, nil
	}
	return m, frameCmd(m.config.FrameRate)
}

// handleGameKey turns key presses into directional intent.
func (m SessionModel) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action.IsDirectional() {
		m.machine.Steer(DirectionFor(action))
	}
	return m, nil
}

// startGame leaves the menu and begins a session.
func (m SessionModel) startGame(d snake.Difficulty) (tea.Model, tea.Cmd) {
	if err := m.machine.Start(d); err != nil {
		m.logger.Error("could not start session", "error", err)
		return m, nil
	}
	m.logger.Debug("session started", "difficulty", d, "interval", m.machine.TickInterval())
	m.loop.Reset()
	m.view = viewGame
	return m, frameCmd(m.config.FrameRate)
}

// openScoreboard switches to the scoreboard on the highlighted difficulty.
func (m SessionModel) openScoreboard() (tea.Model, tea.Cmd) {
	m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.menu.selected())
	m.view = viewScores
	return m, m.scoreboard.Init()
}

// updateScoreboard forwards a message to the embedded scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.view = viewMenu
		m.menu.refresh(m.machine.Difficulty())
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		DrawBoard(m.screen, m.machine.Snapshot())
		return RenderScreen(m.screen)
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.render(m.machine.Snapshot(), m.config.ScreenW)
	}
}

// Snapshot exposes the simulation state, mainly for tests.
func (m SessionModel) Snapshot() snake.Snapshot {
	return m.machine.Snapshot()
}

// Run starts a local Bubble Tea program with the session model.
func Run(settings snake.Settings, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewSessionModel(settings, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
