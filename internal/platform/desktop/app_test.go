package desktop

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/game"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	g := game.New(config.DefaultSwarmConfig())
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g.Reset(rc)
	return NewApp(g, rc, log.New(io.Discard))
}

func TestAppSizeFollowsWorld(t *testing.T) {
	app := newTestApp(t)
	cfg := config.DefaultSwarmConfig()

	w, h := app.Size()
	if w != int(cfg.World.Width*cfg.World.UnitScale) || h != int(cfg.World.Height*cfg.World.UnitScale) {
		t.Errorf("Size() = %d x %d", w, h)
	}
}

func TestProjectFlipsY(t *testing.T) {
	app := newTestApp(t)
	_, h := app.Size()

	x, y := app.project(core.V(0, 0))
	if x != 0 || y != float32(h) {
		t.Errorf("origin projects to (%v, %v), want (0, %d)", x, y, h)
	}
	_, top := app.project(core.V(0, float64(h)/app.scale))
	if top != 0 {
		t.Errorf("top edge projects to y=%v, want 0", top)
	}
}

func TestInputMapsKeys(t *testing.T) {
	app := newTestApp(t)
	held := map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeySpace: true}
	just := map[ebiten.Key]bool{ebiten.KeyEnter: true}
	app.pressed = func(k ebiten.Key) bool { return held[k] }
	app.justPressed = func(k ebiten.Key) bool { return just[k] }

	f := app.input()
	for _, a := range []core.Action{core.ActionLeft, core.ActionFire, core.ActionConfirm} {
		if !f.Has(a) {
			t.Errorf("frame missing %v", a)
		}
	}
	if f.Has(core.ActionRight) || f.Has(core.ActionPause) {
		t.Errorf("unexpected actions: %v", f.Actions)
	}
}

func TestUpdateQuitsOnQ(t *testing.T) {
	app := newTestApp(t)
	app.pressed = func(ebiten.Key) bool { return false }
	app.justPressed = func(k ebiten.Key) bool { return k == ebiten.KeyQ }

	if err := app.Update(); err != ebiten.Termination {
		t.Errorf("Update() = %v, want Termination", err)
	}
}

func TestColorOfFallsBack(t *testing.T) {
	if ColorOf(core.Color(200)) != palette[core.ColorDefault] {
		t.Error("unknown color should fall back to default")
	}
	if ColorOf(core.ColorRed) == palette[core.ColorDefault] {
		t.Error("red should not map to default")
	}
}
