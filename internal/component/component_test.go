package component

import (
	"testing"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

func TestMarkDyingIsIdempotent(t *testing.T) {
	s := NewEnemyState(3, 2)

	if !s.MarkDying(2) {
		t.Fatal("first MarkDying() should report a transition")
	}
	if s.IsImmune || s.IsLive {
		t.Error("dying enemy must not be immune or live")
	}

	s.DyingTimeRemaining = 0.5
	if s.MarkDying(2) {
		t.Error("second MarkDying() should be a no-op")
	}
	if s.DyingTimeRemaining != 0.5 {
		t.Errorf("dying timer restarted: %f", s.DyingTimeRemaining)
	}
}

func TestApplySlowHalvesOnce(t *testing.T) {
	s := NewEnemyState(4, 2)

	s.ApplySlow(5)
	s.ApplySlow(5)

	if s.Speed != 2 {
		t.Errorf("Speed = %f, expected 2 (halved exactly once)", s.Speed)
	}
	if !s.IsSlowed || s.SlowTimeRemaining != 5 {
		t.Errorf("slow state = %v/%f", s.IsSlowed, s.SlowTimeRemaining)
	}
}

func TestEdgeExited(t *testing.T) {
	const w, h = 35.0, 20.0

	tests := []struct {
		edge     Edge
		pos      core.Vec2
		expected bool
	}{
		{EdgeLeft, core.V(34, 5), false},
		{EdgeLeft, core.V(36, 5), true},
		{EdgeRight, core.V(0.5, 5), false},
		{EdgeRight, core.V(-0.1, 5), true},
		{EdgeTop, core.V(5, 0.1), false},
		{EdgeTop, core.V(5, -1), true},
		{EdgeBottom, core.V(5, 19), false},
		{EdgeBottom, core.V(5, 21), true},
	}

	for _, tc := range tests {
		t.Run(tc.edge.String(), func(t *testing.T) {
			if got := tc.edge.Exited(tc.pos, w, h); got != tc.expected {
				t.Errorf("Exited(%v) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestEdgeHeadingPointsInward(t *testing.T) {
	center := core.V(17.5, 10)
	starts := map[Edge]core.Vec2{
		EdgeLeft:   core.V(0, 10),
		EdgeRight:  core.V(35, 10),
		EdgeTop:    core.V(17.5, 20),
		EdgeBottom: core.V(17.5, 0),
	}
	for edge, start := range starts {
		next := start.Add(edge.Heading())
		if next.Dist(center) >= start.Dist(center) {
			t.Errorf("%s heading %v does not point inward", edge, edge.Heading())
		}
	}
}

func TestFormationEdges(t *testing.T) {
	if n := len(FormationAllEdges.Edges()); n != 4 {
		t.Errorf("ALL_EDGES has %d edges, expected 4", n)
	}
	if FormationGrid.Edges() != nil {
		t.Error("GRID is not an edge formation")
	}
}
