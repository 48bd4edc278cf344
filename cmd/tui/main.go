// Command tui plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/wavefall/levels"
	"github.com/milk9111/wavefall/save"
	"github.com/milk9111/wavefall/sim"
)

const frameDuration = time.Second / 60

type game struct {
	screen tcell.Screen
	sim    *sim.Simulation
	store  *save.Store
	keys   *keyState

	paused bool
	status string
	last   sim.FrameEvents
}

func (g *game) handleKey(ev *tcell.EventKey, now time.Time) (quit bool) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q', 'Q':
			return g.paused || g.last.Terminal()
		case 'p', 'P':
			g.paused = !g.paused
			return false
		case 's', 'S':
			if g.paused {
				g.save()
				return false
			}
		}
	}
	if a, ok := actionFor(ev.Key(), ev.Rune()); ok && !g.paused {
		g.keys.press(a, now)
	}
	return false
}

func (g *game) save() {
	if err := g.store.SaveGame(g.sim.Snapshot()); err != nil {
		g.status = "save failed: " + err.Error()
		return
	}
	g.status = "game saved"
}

func (g *game) step(now time.Time) {
	if g.paused || g.last.Terminal() {
		return
	}
	g.last = g.sim.Advance(g.keys.input(now))
	for _, tr := range g.last.WaveTransitions {
		g.status = fmt.Sprintf("wave %d begins", tr.To)
	}
	if g.last.WeatherChanged != nil {
		g.status = fmt.Sprintf("%s falls", g.last.WeatherChanged)
	}
}

func (g *game) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if g.handleKey(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case now := <-ticker.C:
			g.step(now)
			draw(g.screen, g.sim.View(), g.status, g.paused)
		}
	}
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for spawns and drops")
	load := flag.Bool("load", false, "resume the game stored in the save directory")
	saveDir := flag.String("save-dir", ".", "directory holding savegame.dat and highscore.dat")
	levelPath := flag.String("level", "", "level file (defaults to the embedded arena)")
	flag.Parse()

	lvl, err := levels.LoadLevel(*levelPath)
	if err != nil {
		log.Fatalf("failed to load level %s: %v", *levelPath, err)
	}
	store := save.NewStore(*saveDir)
	s, err := sim.New(sim.Options{Seed: *seed, Level: lvl, HighScores: store})
	if err != nil {
		log.Fatal(err)
	}
	g := &game{sim: s, store: store, keys: newKeyState()}
	if *load {
		if st, ok := store.LoadGame(); ok && s.Restore(st) {
			g.status = "saved game loaded"
		} else {
			g.status = "no usable saved game"
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	g.screen = screen

	g.run()
	screen.Fini()

	v := s.View()
	fmt.Fprintf(os.Stdout, "%s: score %d, best %d, wave %d/%d\n", v.Outcome, v.Score, v.HighScore, v.Wave, v.TotalWaves)
}
