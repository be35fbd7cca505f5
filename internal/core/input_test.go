package core

import (
	"math"
	"testing"
)

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		tilt     Vec2
		expected Vec2
	}{
		{"idle", nil, Vec2{}, Vec2{}},
		{"right", []Action{ActionRight}, Vec2{}, V(1, 0)},
		{"up is positive y", []Action{ActionUp}, Vec2{}, V(0, 1)},
		{"opposites cancel", []Action{ActionLeft, ActionRight}, Vec2{}, Vec2{}},
		{"tilt wins", []Action{ActionLeft}, V(0.5, 0), V(0.5, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			f.Tilt = tc.tilt
			if got := f.Axis(); got != tc.expected {
				t.Errorf("Axis() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameDiagonalIsUnit(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionRight)
	if l := f.Axis().Len(); math.Abs(l-1) > 1e-12 {
		t.Errorf("diagonal axis length = %f, expected 1", l)
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Tilt = V(1, 0)

	c := f.Clone()
	f.Clear()

	if f.Has(ActionFire) || !f.Tilt.IsZero() {
		t.Error("Clear() should reset actions and tilt")
	}
	if !c.Has(ActionFire) || c.Tilt != V(1, 0) {
		t.Error("Clone() should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
