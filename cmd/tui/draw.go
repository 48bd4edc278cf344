package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/sim"
	"github.com/milk9111/wavefall/weather"
)

// hudRows are reserved at the top of the terminal for status text.
const hudRows = 2

var (
	styleDay      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleNight    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePlatform = tcell.StyleDefault.Background(tcell.ColorSaddleBrown).Foreground(tcell.ColorSienna)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleAttack   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	stylePickup   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

var enemyGlyphs = map[component.EnemyKind]struct {
	r     rune
	style tcell.Style
}{
	component.EnemySkirmisher: {'s', tcell.StyleDefault.Foreground(tcell.ColorCrimson).Bold(true)},
	component.EnemyBulwark:    {'B', tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray).Bold(true)},
}

// viewport maps world pixels onto the terminal grid below the HUD.
type viewport struct {
	cols, rows int
	sx, sy     float64
}

func newViewport(cols, rows int, v sim.View) viewport {
	rows -= hudRows
	if cols < 1 || rows < 1 || v.ScreenWidth <= 0 || v.ScreenHeight <= 0 {
		return viewport{}
	}
	return viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / v.ScreenWidth,
		sy:   float64(rows) / v.ScreenHeight,
	}
}

// cells returns the grid rectangle covered by bb, at least one cell.
func (vp viewport) cells(bb cp.BB) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(bb.L * vp.sx))
	x1 = max(x0+1, int(math.Ceil(bb.R*vp.sx)))
	y0 = int(math.Floor(bb.B*vp.sy)) + hudRows
	y1 = max(y0+1, int(math.Ceil(bb.T*vp.sy))+hudRows)
	return x0, y0, x1, y1
}

func (vp viewport) fill(s tcell.Screen, bb cp.BB, r rune, style tcell.Style) {
	x0, y0, x1, y1 := vp.cells(bb)
	for y := max(y0, hudRows); y < min(y1, vp.rows+hudRows); y++ {
		for x := max(x0, 0); x < min(x1, vp.cols); x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func draw(s tcell.Screen, v sim.View, status string, paused bool) {
	bg := styleDay
	if v.Weather == weather.Night {
		bg = styleNight
	}
	s.SetStyle(bg)
	s.Clear()

	cols, rows := s.Size()
	vp := newViewport(cols, rows, v)

	for _, p := range v.Platforms {
		vp.fill(s, p, '=', stylePlatform)
	}
	for _, p := range v.Pickups {
		vp.fill(s, p.Bounds, '+', stylePickup)
	}
	for _, e := range v.Enemies {
		g, ok := enemyGlyphs[e.Kind]
		if !ok {
			g.r, g.style = '?', tcell.StyleDefault
		}
		vp.fill(s, e.Bounds, g.r, g.style)
	}
	if v.Attacking {
		vp.fill(s, v.AttackBox, '.', styleAttack)
	}
	player := '>'
	if v.Player.FacingLeft {
		player = '<'
	}
	vp.fill(s, v.Player.Bounds, player, stylePlayer)

	drawText(s, 0, 0, styleHUD, fmt.Sprintf("HP %d/%d  Score %d  Best %d  Wave %d/%d  Alive %d  Incoming %d",
		v.Player.Health, v.Player.MaxHealth, v.Score, v.HighScore, v.Wave, v.TotalWaves, v.Alive, v.ToSpawn))
	drawText(s, 0, 1, styleHUD, fmt.Sprintf("%s (%.0fs)  %s", v.Weather, v.NextWeather, status))

	switch {
	case v.Outcome.Terminal():
		msg := fmt.Sprintf(" %s  score %d  best %d  (q to quit) ", v.Outcome, v.Score, v.HighScore)
		drawText(s, max(0, (cols-len(msg))/2), rows/2, styleHUD.Reverse(true), msg)
	case paused:
		msg := " PAUSED  p resume  s save  q quit "
		drawText(s, max(0, (cols-len(msg))/2), rows/2, styleHUD.Reverse(true), msg)
	}

	s.Show()
}
