package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/wavefall/sim"
)

// Terminals report key repeats, not releases, so a key counts as held until
// keyTimeout passes without another repeat.
const keyTimeout = 150 * time.Millisecond

type action int

const (
	actLeft action = iota
	actRight
	actJump
	actAttack
)

type keyState struct {
	last   map[action]time.Time
	attack bool
}

func newKeyState() *keyState {
	return &keyState{last: make(map[action]time.Time)}
}

func actionFor(key tcell.Key, r rune) (action, bool) {
	switch key {
	case tcell.KeyLeft:
		return actLeft, true
	case tcell.KeyRight:
		return actRight, true
	case tcell.KeyUp:
		return actJump, true
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return actLeft, true
		case 'd', 'D':
			return actRight, true
		case 'w', 'W', ' ':
			return actJump, true
		case 'j', 'J', 'x', 'X':
			return actAttack, true
		}
	}
	return 0, false
}

func (k *keyState) press(a action, now time.Time) {
	if a == actAttack {
		k.attack = true
		return
	}
	k.last[a] = now
}

func (k *keyState) held(a action, now time.Time) bool {
	t, ok := k.last[a]
	return ok && now.Sub(t) < keyTimeout
}

// input builds the tick's input. A queued attack is consumed.
func (k *keyState) input(now time.Time) sim.Input {
	in := sim.Input{
		Left:   k.held(actLeft, now),
		Right:  k.held(actRight, now),
		Jump:   k.held(actJump, now),
		Attack: k.attack,
	}
	k.attack = false
	return in
}
