package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavefall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStateTimeout(t *testing.T) {
	start := time.Unix(100, 0)
	k := newKeyState()
	k.press(actRight, start)
	k.press(actJump, start)
	k.press(actAttack, start)

	in := k.input(start.Add(50 * time.Millisecond))
	assert.Equal(t, sim.Input{Right: true, Jump: true, Attack: true}, in)

	in = k.input(start.Add(100 * time.Millisecond))
	assert.Equal(t, sim.Input{Right: true, Jump: true}, in, "attack is consumed")

	in = k.input(start.Add(keyTimeout))
	assert.Equal(t, sim.Input{}, in)
}

func TestActionFor(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		want action
		ok   bool
	}{
		{"arrow_left", tcell.KeyLeft, 0, actLeft, true},
		{"rune_d", tcell.KeyRune, 'd', actRight, true},
		{"space", tcell.KeyRune, ' ', actJump, true},
		{"attack", tcell.KeyRune, 'j', actAttack, true},
		{"other", tcell.KeyRune, 'z', 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := actionFor(c.key, c.r)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestViewportCells(t *testing.T) {
	v := sim.View{ScreenWidth: 800, ScreenHeight: 600}
	vp := newViewport(80, 30+hudRows, v)

	x0, y0, x1, y1 := vp.cells(cp.BB{L: 100, B: 300, R: 148, T: 348})
	assert.Equal(t, 10, x0)
	assert.Equal(t, 15+hudRows, y0)
	assert.Equal(t, 15, x1)
	assert.Equal(t, 18+hudRows, y1)

	x0, y0, x1, y1 = vp.cells(cp.BB{L: 0, B: 0, R: 1, T: 1})
	assert.Equal(t, x0+1, x1)
	assert.Equal(t, y0+1, y1)
}

func TestDrawPlayer(t *testing.T) {
	s, err := sim.New(sim.Options{Seed: 1})
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 32)

	v := s.View()
	draw(screen, v, "", false)

	vp := newViewport(80, 32, v)
	x0, y0, _, _ := vp.cells(v.Player.Bounds)
	r, _, _, _ := screen.GetContent(x0, y0)
	assert.Equal(t, '>', r)
}
