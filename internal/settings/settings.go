// Package settings persists player preferences between sessions using
// gdata's per-user application storage.
package settings

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-swarm/internal/config"
)

// AppName is the gdata application directory.
const AppName = "tui_swarm"

const (
	prefsObject   = "settings"
	prefsProperty = "player"
)

// Preferences are the per-user choices remembered between runs.
type Preferences struct {
	Difficulty string `yaml:"difficulty"`
	Initials   string `yaml:"initials"`
}

// Defaults returns the preferences of a first launch.
func Defaults() Preferences {
	return Preferences{
		Difficulty: string(config.DifficultyNormal),
		Initials:   "AAA",
	}
}

// Manager loads and saves preferences. A nil gdata manager keeps
// preferences in memory only.
type Manager struct {
	data  *gdata.Manager
	prefs Preferences
}

// Open opens the gdata store for AppName and loads the saved preferences.
// A load failure leaves the defaults in place and is returned alongside a
// usable manager.
func Open() (*Manager, error) {
	data, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return New(nil), fmt.Errorf("settings: cannot open storage: %w", err)
	}
	m := New(data)
	return m, m.Load()
}

// New wraps an already opened gdata manager.
func New(data *gdata.Manager) *Manager {
	return &Manager{data: data, prefs: Defaults()}
}

// Load reads the saved preferences, falling back to defaults.
func (m *Manager) Load() error {
	m.prefs = Defaults()
	if m.data == nil || !m.data.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("settings: cannot parse preferences: %w", err)
	}
	if err := m.SetDifficulty(p.Difficulty); err != nil {
		return err
	}
	if err := m.SetInitials(p.Initials); err != nil {
		return err
	}
	return nil
}

// Save writes the current preferences. Without storage it is a no-op.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("settings: cannot encode preferences: %w", err)
	}
	if err := m.data.SaveObjectProp(prefsObject, prefsProperty, raw); err != nil {
		return fmt.Errorf("settings: cannot save preferences: %w", err)
	}
	return nil
}

// Preferences returns the current preferences.
func (m *Manager) Preferences() Preferences {
	return m.prefs
}

// Preset returns the preferred difficulty preset.
func (m *Manager) Preset() config.DifficultyPreset {
	p, _ := config.ParsePreset(m.prefs.Difficulty)
	return p
}

// SetDifficulty validates and stores a difficulty name. Empty keeps the
// current value.
func (m *Manager) SetDifficulty(name string) error {
	if name == "" {
		return nil
	}
	p, ok := config.ParsePreset(name)
	if !ok {
		return fmt.Errorf("settings: unknown difficulty %q", name)
	}
	m.prefs.Difficulty = string(p)
	return nil
}

// SetInitials validates and stores up to three letters or digits,
// upper-cased. Empty keeps the current value.
func (m *Manager) SetInitials(s string) error {
	if s == "" {
		return nil
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if n := len([]rune(s)); n == 0 || n > 3 {
		return fmt.Errorf("settings: initials must be 1 to 3 characters, got %q", s)
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("settings: initials must be letters or digits, got %q", s)
		}
	}
	m.prefs.Initials = s
	return nil
}
