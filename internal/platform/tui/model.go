package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/registry"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *Renderer
	keys       *KeyMapper
	help       help.Model
	showHelp   bool
	helpOnTop  bool // Help bar drawn over the last game row
	logger     *log.Logger
	config     core.RuntimeConfig
	termH      int
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewRenderer(nil),
		keys:       NewKeyMapper(DefaultKeyMap()),
		help:       h,
		logger:     logger,
		config:     cfg,
		termH:      cfg.ScreenH,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m.handleResize(m.config.ScreenW, m.termH)
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns left clicks on game buttons into actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	clicker, ok := m.game.(registry.Clicker)
	if !ok {
		return m, nil
	}
	if action := clicker.ButtonAt(msg.X, msg.Y); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The help bar, when shown, takes the bottom row unless that would leave
// the game below its minimum height; then it covers the game's last row.
func (m Model) handleResize(w, h int) (tea.Model, tea.Cmd) {
	m.termH = h
	m.helpOnTop = false
	if m.showHelp {
		if h-1 >= m.minGameHeight() {
			h = max(h-1, 0)
		} else {
			m.helpOnTop = true
		}
	}
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.help.Width = w

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m Model) minGameHeight() int {
	if ms, ok := m.game.(registry.MinSizer); ok {
		_, h := ms.MinSize()
		return h
	}
	return 0
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text to ~/.miner/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".miner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := m.renderer.RenderScreen(m.screen)
	if !m.showHelp {
		return view
	}

	bar := helpStyle.Render(m.help.View(m.keys.Keys()))
	if m.helpOnTop {
		return view[:strings.LastIndexByte(view, '\n')+1] + bar
	}
	return view + "\n" + bar
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Buttons are clickable
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
