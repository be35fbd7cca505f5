package game

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// Minimum terminal size for the arena.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Glyph is how a sprite is drawn in a terminal cell.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// glyphs resolves logical sprite paths for the terminal.
var glyphs = map[string]Glyph{
	component.SpritePlayer:      {'▲', core.ColorBrightCyan},
	component.SpriteEnemy:       {'●', core.ColorRed},
	component.SpriteLineEnemy:   {'◆', core.ColorMagenta},
	component.SpriteShield:      {'S', core.ColorCyan},
	component.SpriteBomb:        {'B', core.ColorOrange},
	component.SpriteLightning:   {'L', core.ColorYellow},
	component.SpriteSlowField:   {'W', core.ColorBlue},
	component.SpriteLaser:       {'X', core.ColorGreen},
	component.SpriteFXShield:    {'○', core.ColorCyan},
	component.SpriteFXBomb:      {'*', core.ColorOrange},
	component.SpriteFXLightning: {'ϟ', core.ColorBrightYellow},
	component.SpriteFXLaser:     {'·', core.ColorGreen},
	component.SpriteFXSlowField: {'~', core.ColorBlue},
	component.SpriteCountdown:   {'#', core.ColorWhite},
	component.SpriteScore:       {' ', core.ColorWhite},
}

// GlyphFor returns the terminal glyph of a sprite path.
func GlyphFor(path string) (Glyph, bool) {
	g, ok := glyphs[path]
	return g, ok
}

// Drawable is a flattened render item for front-ends that draw shapes.
type Drawable struct {
	Sprite   string
	Tag      component.TagKind
	Position core.Vec2
	Scale    core.Vec2
	Radius   float64 // collider radius before scaling, 0 if none
	FX       *component.FXData
	Dying    bool
	Text     string // countdown digit or score line
}

// Drawables returns every entity carrying a sprite, in draw order: effects,
// pickups, enemies, then the player and UI.
func (g *Game) Drawables() []Drawable {
	if g.ctx == nil {
		return nil
	}
	var layers [4][]Drawable
	g.ctx.Aspects.Drawables.Each(g.ctx.World, func(entry *donburi.Entry) {
		d := g.drawable(entry)
		switch {
		case d.FX != nil:
			layers[0] = append(layers[0], d)
		case d.Tag == component.TagPowerUp:
			layers[1] = append(layers[1], d)
		case d.Tag == component.TagEnemy:
			layers[2] = append(layers[2], d)
		default:
			layers[3] = append(layers[3], d)
		}
	})

	var out []Drawable
	for _, l := range layers {
		out = append(out, l...)
	}
	return out
}

func (g *Game) drawable(entry *donburi.Entry) Drawable {
	tr := component.Transform.Get(entry)
	d := Drawable{
		Sprite:   component.Sprite.Get(entry).Path,
		Tag:      component.TagOf(entry),
		Position: tr.Position,
		Scale:    tr.Scale,
	}
	if entry.HasComponent(component.Collider) {
		d.Radius = component.Collider.Get(entry).Radius
	}
	if entry.HasComponent(component.FX) {
		fx := *component.FX.Get(entry)
		d.FX = &fx
	}
	if entry.HasComponent(component.EnemyState) {
		d.Dying = component.EnemyState.Get(entry).IsDying
	}
	switch d.Tag {
	case component.TagStartTime:
		d.Text = fmt.Sprintf("%d", int(math.Ceil(component.Countdown.Get(entry).Remaining)))
	case component.TagScoreUI:
		d.Text = fmt.Sprintf("Score: %d", g.ctx.Score())
	}
	return d
}

// arena maps world coordinates onto the framed terminal area.
type arena struct {
	w, h     float64
	cols     int
	rows     int
	top      int
	dst      *core.Screen
	unitCell float64 // cells per world unit along x
}

func newArena(ctx *world.Context, dst *core.Screen) arena {
	a := arena{
		w:    ctx.Flags.Width,
		h:    ctx.Flags.Height,
		cols: dst.Width() - 2,
		rows: dst.Height() - 3,
		top:  2,
		dst:  dst,
	}
	if a.w > 0 {
		a.unitCell = float64(a.cols-1) / a.w
	}
	return a
}

// cell converts a y-up world position to a screen cell.
func (a arena) cell(p core.Vec2) (int, int) {
	x := 1 + int(math.Round(p.X/a.w*float64(a.cols-1)))
	y := a.top + int(math.Round((a.h-p.Y)/a.h*float64(a.rows-1)))
	return x, y
}

func (a arena) inside(x, y int) bool {
	return x >= 1 && x <= a.cols && y >= a.top && y < a.top+a.rows
}

func (a arena) put(p core.Vec2, r rune, c core.Color) {
	x, y := a.cell(p)
	if a.inside(x, y) {
		a.dst.SetColored(x, y, r, c)
	}
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}
	if g.ctx == nil {
		return
	}

	a := newArena(g.ctx, dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorGray)
	g.renderHUD(dst)

	for _, d := range g.Drawables() {
		g.renderDrawable(a, d)
	}
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	left := fmt.Sprintf("Score: %d  Kills: %d", st.Score, st.Kills)
	dst.DrawTextColored(1, 0, left, core.ColorWhite)

	right := fmt.Sprintf("%s  %.0fs", g.Difficulty(), st.Survived)
	if entry, ok := g.ctx.Player(); ok && entry.HasComponent(component.PowerUpState) {
		ps := component.PowerUpState.Get(entry)
		if ps.HasShield {
			right = "SHIELD  " + right
		}
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorGray)
}

func (g *Game) renderDrawable(a arena, d Drawable) {
	glyph, ok := GlyphFor(d.Sprite)
	if !ok {
		if !g.missing[d.Sprite] {
			g.missing[d.Sprite] = true
			g.logger.Warn("no glyph for sprite", "path", d.Sprite)
		}
		return
	}

	switch {
	case d.Text != "":
		if d.Tag == component.TagScoreUI && g.ctx.Flags.Mode == world.ModeGameStage {
			return // the HUD carries the score during a run
		}
		x, y := a.cell(d.Position)
		x -= len(d.Text) / 2
		if x < 1 {
			x = 1
		}
		a.dst.DrawTextColored(x, y, d.Text, glyph.Color)

	case d.FX != nil:
		g.renderFX(a, d, glyph)

	case d.Tag == component.TagEnemy:
		r, c := glyph.Rune, glyph.Color
		switch {
		case d.Dying:
			r, c = '×', core.ColorGray
		case d.Scale.X < g.cfg.Enemies.RestScale:
			r, c = '·', core.ColorGray
		}
		a.put(d.Position, r, c)

	default:
		a.put(d.Position, glyph.Rune, glyph.Color)
	}
}

func (g *Game) renderFX(a arena, d Drawable, glyph Glyph) {
	fx := d.FX
	switch fx.Kind {
	case component.FXShield:
		x, y := a.cell(d.Position)
		if a.inside(x-1, y) {
			a.dst.SetColored(x-1, y, '(', glyph.Color)
		}
		if a.inside(x+1, y) {
			a.dst.SetColored(x+1, y, ')', glyph.Color)
		}

	case component.FXBomb:
		radius := g.cfg.Effects.BombRadius
		if fx.Duration > 0 {
			radius *= 1 - fx.Remaining/fx.Duration
		}
		ring(a, d.Position, radius, glyph)

	case component.FXLaser:
		step := 1 / math.Max(a.unitCell, 1)
		for s := 0.0; s <= fx.Length; s += step {
			a.put(d.Position.Add(fx.Direction.Scale(s)), beamRune(fx.Direction), glyph.Color)
		}

	default:
		a.put(d.Position, glyph.Rune, glyph.Color)
	}
}

// ring draws a circle outline of world radius r.
func ring(a arena, center core.Vec2, r float64, glyph Glyph) {
	if r <= 0 {
		a.put(center, glyph.Rune, glyph.Color)
		return
	}
	n := int(math.Max(8, 2*math.Pi*r*a.unitCell))
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		a.put(center.Add(core.V(math.Cos(angle), math.Sin(angle)).Scale(r)), glyph.Rune, glyph.Color)
	}
}

func beamRune(dir core.Vec2) rune {
	switch {
	case math.Abs(dir.Y) < 0.38:
		return '─'
	case math.Abs(dir.X) < 0.38:
		return '│'
	case dir.X*dir.Y > 0:
		return '╱'
	default:
		return '╲'
	}
}

// Overlay returns the modal text shown over the arena, if any.
func (g *Game) Overlay() (title, subtitle string, ok bool) {
	if g.ctx == nil {
		return "", "", false
	}
	f := g.ctx.Flags
	switch f.Mode {
	case world.ModeMainMenu:
		return "S W A R M", "ENTER start  WASD move  SPACE fire  Q quit", true
	case world.ModeHighScore:
		sub := "ENTER continue"
		if run, ok := g.LastRun(); ok {
			sub = fmt.Sprintf("Score %d  Kills %d  %.0fs  |  ENTER continue", run.Score, run.Kills, run.Survived)
		}
		return "GAME OVER", sub, true
	case world.ModeGameStage:
		switch {
		case f.DeathScreen:
			return "SWARMED", fmt.Sprintf("Score: %d", g.ctx.Score()), true
		case f.Pausing:
			return "PAUSED", "P resume  ESC menu", true
		}
	}
	return "", "", false
}

func (g *Game) renderOverlay(dst *core.Screen) {
	if title, sub, ok := g.Overlay(); ok {
		drawCenteredBox(dst, title, sub)
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	if boxW > dst.Width() {
		boxW = dst.Width()
	}
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
