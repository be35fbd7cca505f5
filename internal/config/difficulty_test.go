package config

import "testing"

func TestDifficultyLevelTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	tests := []struct {
		seconds  float64
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(0, tc.seconds); got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("Level(0, %f) = %f, expected %f", tc.seconds, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if got := d.Level(1000, 1000); got != 0.5 {
		t.Errorf("Level() = %f, expected 0.5", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, ThresholdIncrease: 20},
	})

	if got := d.Speed(3, 0, 0); got != 3 {
		t.Errorf("Speed at level 0 = %f, expected 3", got)
	}
	if got := d.Speed(3, 100, 0); got != 6 {
		t.Errorf("Speed at level 1 = %f, expected 6", got)
	}
	if got := d.EnemyThreshold(20, 0, 0); got != 20 {
		t.Errorf("EnemyThreshold at level 0 = %d, expected 20", got)
	}
	if got := d.EnemyThreshold(20, 50, 0); got != 30 {
		t.Errorf("EnemyThreshold at level 0.5 = %d, expected 30", got)
	}
}
