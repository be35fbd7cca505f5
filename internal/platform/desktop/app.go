// Package desktop runs the swarm game in an Ebitengine window. It draws the
// same world the terminal front-end draws, with shapes instead of glyphs.
package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/game"
)

var background = color.RGBA{R: 12, G: 14, B: 24, A: 255}

// palette maps terminal colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 220, G: 220, B: 220, A: 255},
	core.ColorRed:          {R: 220, G: 50, B: 47, A: 255},
	core.ColorGreen:        {R: 80, G: 220, B: 100, A: 255},
	core.ColorYellow:       {R: 230, G: 200, B: 60, A: 255},
	core.ColorBlue:         {R: 70, G: 130, B: 230, A: 255},
	core.ColorMagenta:      {R: 210, G: 70, B: 200, A: 255},
	core.ColorCyan:         {R: 60, G: 200, B: 210, A: 255},
	core.ColorWhite:        {R: 240, G: 240, B: 240, A: 255},
	core.ColorBrightRed:    {R: 255, G: 90, B: 90, A: 255},
	core.ColorBrightYellow: {R: 255, G: 240, B: 110, A: 255},
	core.ColorBrightCyan:   {R: 120, G: 240, B: 255, A: 255},
	core.ColorOrange:       {R: 255, G: 150, B: 40, A: 255},
	core.ColorGray:         {R: 120, G: 120, B: 130, A: 255},
}

// ColorOf returns the window color of a terminal color.
func ColorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// App implements ebiten.Game around a swarm game.
type App struct {
	game    *game.Game
	runtime core.RuntimeConfig
	logger  *log.Logger
	scale   float64 // pixels per world unit
	width   int
	height  int

	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// NewApp creates a window front-end. The window size follows the world
// size times the configured unit scale.
func NewApp(g *game.Game, rc core.RuntimeConfig, logger *log.Logger) *App {
	cfg := g.Config()
	scale := cfg.World.UnitScale
	if scale <= 0 {
		scale = 32
	}
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		game:        g,
		runtime:     rc,
		logger:      logger,
		scale:       scale,
		width:       int(math.Ceil(cfg.World.Width * scale)),
		height:      int(math.Ceil(cfg.World.Height * scale)),
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Size returns the logical window size in pixels.
func (a *App) Size() (int, int) {
	return a.width, a.height
}

// Update reads the keyboard and advances the game one tick.
func (a *App) Update() error {
	if a.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	a.game.Step(a.input())
	return nil
}

// input builds the frame from held and just-pressed keys.
func (a *App) input() core.InputFrame {
	frame := core.NewInputFrame()
	held := map[core.Action][]ebiten.Key{
		core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
		core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
		core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
		core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
		core.ActionFire:  {ebiten.KeySpace},
	}
	for action, keys := range held {
		for _, k := range keys {
			if a.pressed(k) {
				frame.Set(action)
			}
		}
	}

	edges := map[core.Action]ebiten.Key{
		core.ActionConfirm: ebiten.KeyEnter,
		core.ActionPause:   ebiten.KeyP,
		core.ActionBack:    ebiten.KeyEscape,
	}
	for action, k := range edges {
		if a.justPressed(k) {
			frame.Set(action)
		}
	}
	return frame
}

// Layout returns the fixed logical size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// project converts a y-up world position to y-down pixels.
func (a *App) project(p core.Vec2) (float32, float32) {
	return float32(p.X * a.scale), float32(float64(a.height) - p.Y*a.scale)
}

// Draw renders the world and the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	cfg := a.game.Config()
	for _, d := range a.game.Drawables() {
		glyph, ok := game.GlyphFor(d.Sprite)
		if !ok {
			continue
		}
		clr := ColorOf(glyph.Color)
		x, y := a.project(d.Position)
		r := float32(d.Radius * math.Max(d.Scale.X, 0) * a.scale)

		switch {
		case d.Text != "":
			ebitenutil.DebugPrintAt(screen, d.Text, int(x)-len(d.Text)*3, int(y))

		case d.FX != nil:
			a.drawFX(screen, d, clr, cfg.Effects.BombRadius)

		case d.Tag == component.TagEnemy && d.Dying:
			vector.StrokeCircle(screen, x, y, max(r, 2), 1, ColorOf(core.ColorGray), true)

		default:
			vector.DrawFilledCircle(screen, x, y, max(r, 3), clr, true)
		}
	}

	st := a.game.State()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score: %d  Kills: %d  %s  %.0fs", st.Score, st.Kills, a.game.Difficulty(), st.Survived),
		8, 4)

	if title, sub, ok := a.game.Overlay(); ok {
		ebitenutil.DebugPrintAt(screen, title, a.width/2-len(title)*3, a.height/2-16)
		ebitenutil.DebugPrintAt(screen, sub, a.width/2-len(sub)*3, a.height/2+4)
	}
}

func (a *App) drawFX(screen *ebiten.Image, d game.Drawable, clr color.RGBA, bombRadius float64) {
	fx := d.FX
	x, y := a.project(d.Position)

	switch fx.Kind {
	case component.FXShield:
		vector.StrokeCircle(screen, x, y, float32(0.8*a.scale), 2, clr, true)

	case component.FXBomb:
		radius := bombRadius
		if fx.Duration > 0 {
			radius *= 1 - fx.Remaining/fx.Duration
		}
		vector.StrokeCircle(screen, x, y, float32(radius*a.scale), 3, clr, true)

	case component.FXLaser:
		ex, ey := a.project(d.Position.Add(fx.Direction.Scale(fx.Length)))
		vector.StrokeLine(screen, x, y, ex, ey, 3, clr, true)

	case component.FXLightning:
		vector.StrokeLine(screen, x, 0, x, y, 2, clr, true)

	default:
		vector.DrawFilledCircle(screen, x, y, float32(0.5*a.scale), clr, true)
	}
}

// Run opens the window and blocks until it closes or Q is pressed.
func Run(g *game.Game, rc core.RuntimeConfig, logger *log.Logger) error {
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}
	g.Reset(rc)

	app := NewApp(g, rc, logger)
	w, h := app.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.Title())

	app.logger.Info("window opened", "width", w, "height", h, "seed", rc.Seed)
	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
