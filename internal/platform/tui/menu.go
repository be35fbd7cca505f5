package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/storage"
)

// MenuItem is a selectable difficulty in the launcher.
type MenuItem struct {
	Difficulty config.DifficultyPreset
	Title      string
	Blurb      string
}

var menuItems = []MenuItem{
	{config.DifficultyEasy, "Easy", "starts calm, ramps to max"},
	{config.DifficultyNormal, "Normal", "starts at 30%"},
	{config.DifficultyHard, "Hard", "starts at 70%"},
	{config.DifficultyFixed, "Fixed", "no progression"},
}

// MenuModel is the Bubble Tea model for the difficulty launcher.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	best           map[config.DifficultyPreset]int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user picks a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a launcher with the cursor on initial.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, initial config.DifficultyPreset) MenuModel {
	m := MenuModel{
		items:     menuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		best:      make(map[config.DifficultyPreset]int),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	for i, item := range m.items {
		if item.Difficulty == initial {
			m.cursor = i
		}
		if store == nil {
			continue
		}
		if high, err := store.HighScore(string(item.Difficulty)); err == nil {
			m.best[item.Difficulty] = high
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  S W A R M  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %-26s best %d", cursor, item.Title, item.Blurb, m.best[item.Difficulty])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the launcher and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, initial config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, initial)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Difficulty = m.Selected().Difficulty
	return result, nil
}
