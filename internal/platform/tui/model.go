package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/game"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// Model is the Bubble Tea model for running the swarm game.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	input     *HeldInput
	gameState core.GameState
	quitting  bool

	// embedded models hand Back on the main menu to their parent
	// instead of quitting the program.
	embedded   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   NewKeyMapper(),
		input:  NewHeldInput(cfg.TickRate / 8),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.game.State().Mode == world.ModeMainMenu.String() {
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}
	m.input.Press(action)

	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the terminal mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Frame())
	m.gameState = result.State

	// Held keys from the run must not leak into the high-score screen.
	if result.RunFinished {
		m.input.Release()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".swarm", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user left the game from its main menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game. It returns
// true when the player backed out to the launcher rather than quitting.
func Run(g *game.Game, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(g, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
