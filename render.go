package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/sim"
	"github.com/milk9111/wavefall/weather"
	"golang.org/x/image/colornames"
)

const (
	healthBarHeight = 4
	blinkSeconds    = 2.0
)

var enemyColors = map[component.EnemyKind]color.RGBA{
	component.EnemySkirmisher: colornames.Crimson,
	component.EnemyBulwark:    colornames.Darkslategray,
}

func backgroundColor(m weather.Mode) color.RGBA {
	if m == weather.Night {
		return colornames.Midnightblue
	}
	return colornames.Lightskyblue
}

func fillBB(dst *ebiten.Image, bb cp.BB, clr color.Color) {
	vector.DrawFilledRect(dst, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), clr, false)
}

func strokeBB(dst *ebiten.Image, bb cp.BB, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), width, clr, false)
}

func drawHealthBar(dst *ebiten.Image, bb cp.BB, cur, maxHP int) {
	if maxHP <= 0 {
		return
	}
	w := bb.R - bb.L
	y := bb.B - healthBarHeight - 2
	vector.DrawFilledRect(dst, float32(bb.L), float32(y), float32(w), healthBarHeight, colornames.Dimgray, false)
	vector.DrawFilledRect(dst, float32(bb.L), float32(y), float32(w*float64(cur)/float64(maxHP)), healthBarHeight, colornames.Limegreen, false)
}

// drawFacing marks the leading edge of a body so direction reads without
// sprites.
func drawFacing(dst *ebiten.Image, b sim.BodyView) {
	x := b.Bounds.R - 6
	if b.FacingLeft {
		x = b.Bounds.L
	}
	vector.DrawFilledRect(dst, float32(x), float32(b.Bounds.B+8), 6, 6, colornames.White, false)
}

func drawWorld(screen *ebiten.Image, v sim.View) {
	screen.Fill(backgroundColor(v.Weather))

	for _, p := range v.Platforms {
		fillBB(screen, p, colornames.Saddlebrown)
		strokeBB(screen, p, 1, colornames.Sienna)
	}

	for _, p := range v.Pickups {
		// blink out over the last seconds of a pickup's life
		if p.Remaining < blinkSeconds && int(p.Remaining*8)%2 == 0 {
			continue
		}
		fillBB(screen, p.Bounds, colornames.Gold)
	}

	for _, e := range v.Enemies {
		clr, ok := enemyColors[e.Kind]
		if !ok {
			clr = colornames.Purple
		}
		fillBB(screen, e.Bounds, clr)
		drawFacing(screen, e)
		drawHealthBar(screen, e.Bounds, e.Health, e.MaxHealth)
	}

	playerColor := colornames.Royalblue
	if !v.Player.OnGround {
		playerColor = colornames.Dodgerblue
	}
	fillBB(screen, v.Player.Bounds, playerColor)
	drawFacing(screen, v.Player)
	if v.Attacking {
		strokeBB(screen, v.AttackBox, 2, colornames.Orange)
	}
}

func drawHUD(screen *ebiten.Image, v sim.View) {
	lines := []string{
		fmt.Sprintf("HP %d/%d", v.Player.Health, v.Player.MaxHealth),
		fmt.Sprintf("Score %d   Best %d", v.Score, v.HighScore),
		fmt.Sprintf("Wave %d/%d   Alive %d   Incoming %d", v.Wave, v.TotalWaves, v.Alive, v.ToSpawn),
		fmt.Sprintf("%s, %.0fs left   Time %.0fs", v.Weather, v.NextWeather, v.Elapsed),
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 10, 10+i*16)
	}

	if v.Outcome.Terminal() {
		msg := "DEFEAT"
		if v.Outcome == component.OutcomeVictory {
			msg = "VICTORY"
		}
		msg = fmt.Sprintf("%s  score %d  best %d  (enter to quit)", msg, v.Score, v.HighScore)
		w := float32(v.ScreenWidth)
		vector.DrawFilledRect(screen, 0, float32(v.ScreenHeight/2-20), w, 40, color.NRGBA{A: 180}, false)
		ebitenutil.DebugPrintAt(screen, msg, int(v.ScreenWidth/2)-len(msg)*3, int(v.ScreenHeight/2)-8)
	}
}

func drawStatus(screen *ebiten.Image, msg string, v sim.View) {
	ebitenutil.DebugPrintAt(screen, msg, int(v.ScreenWidth)-len(msg)*6-10, 10)
}

func drawDebug(screen *ebiten.Image, tick, seed int64) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Tick: %d  Seed: %d  FPS: %.2f", tick, seed, ebiten.ActualFPS()), 10, 80)
}
