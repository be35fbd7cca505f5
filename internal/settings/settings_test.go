package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/tui-swarm/internal/config"
)

func openTestData(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	data, err := gdata.Open(gdata.Config{AppName: "test_swarm_settings"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return data
}

func TestDefaults(t *testing.T) {
	m := New(nil)
	p := m.Preferences()
	if p.Difficulty != "normal" || p.Initials != "AAA" {
		t.Errorf("Defaults = %+v", p)
	}
	if m.Preset() != config.DifficultyNormal {
		t.Errorf("Preset() = %q, want normal", m.Preset())
	}
}

func TestSaveAndLoad(t *testing.T) {
	data := openTestData(t)

	m := New(data)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() on empty storage: %v", err)
	}
	if err := m.SetDifficulty("hard"); err != nil {
		t.Fatalf("SetDifficulty() error: %v", err)
	}
	if err := m.SetInitials("zed"); err != nil {
		t.Fatalf("SetInitials() error: %v", err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := New(data)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p := reloaded.Preferences(); p.Difficulty != "hard" || p.Initials != "ZED" {
		t.Errorf("Reloaded = %+v, want hard/ZED", p)
	}
}

func TestCorruptPreferences(t *testing.T) {
	data := openTestData(t)
	if err := data.SaveObjectProp(prefsObject, prefsProperty, []byte("difficulty: [oops")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	m := New(data)
	if err := m.Load(); err == nil {
		t.Error("Expected error for corrupt preferences")
	}
	if p := m.Preferences(); p != Defaults() {
		t.Errorf("Corrupt load kept %+v, want defaults", p)
	}
}

func TestSetInitialsValidation(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"abc", "ABC", false},
		{" k9 ", "K9", false},
		{"", "AAA", false},
		{"abcd", "AAA", true},
		{"a-b", "AAA", true},
	}
	for _, tt := range tests {
		m := New(nil)
		err := m.SetInitials(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("SetInitials(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got := m.Preferences().Initials; got != tt.want {
			t.Errorf("SetInitials(%q) initials = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetDifficultyValidation(t *testing.T) {
	m := New(nil)
	if err := m.SetDifficulty("brutal"); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
	if err := m.SetDifficulty("easy"); err != nil {
		t.Fatalf("SetDifficulty(easy) error: %v", err)
	}
	if m.Preset() != config.DifficultyEasy {
		t.Errorf("Preset() = %q, want easy", m.Preset())
	}
	if err := New(nil).Save(); err != nil {
		t.Errorf("Save() without storage: %v", err)
	}
}
