package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/wavefall/levels"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/replay"
	"github.com/milk9111/wavefall/save"
	"github.com/milk9111/wavefall/sim"
)

// statusTicks is how long a status line stays on screen.
const statusTicks = 120

type Config struct {
	Seed       int64
	Load       bool
	SaveDir    string
	LevelPath  string
	RecordPath string
	Debug      bool
}

type Game struct {
	sim     *sim.Simulation
	store   *save.Store
	watcher *prefabs.Watcher

	rec        *replay.Recorder
	recordPath string

	width, height int
	debug         bool

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	last       sim.FrameEvents
	status     string
	statusLeft int
}

func NewGame(cfg Config) (*Game, error) {
	lvl, err := levels.LoadLevel(cfg.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", cfg.LevelPath, err)
	}

	store := save.NewStore(cfg.SaveDir)
	s, err := sim.New(sim.Options{Seed: cfg.Seed, Level: lvl, HighScores: store})
	if err != nil {
		return nil, err
	}

	g := &Game{
		sim:        s,
		store:      store,
		recordPath: cfg.RecordPath,
		width:      int(s.Tuning().World.ScreenWidth),
		height:     int(s.Tuning().World.ScreenHeight),
		debug:      cfg.Debug,
	}

	if cfg.Load {
		if st, ok := store.LoadGame(); ok && s.Restore(st) {
			g.flash("saved game loaded")
		} else {
			log.Printf("no usable saved game in %s, starting fresh", store.Dir())
		}
	}

	if cfg.RecordPath != "" {
		if cfg.Load {
			log.Printf("recording disabled: replays always start from a fresh game")
		} else {
			g.rec = replay.NewRecorder(cfg.Seed, cfg.LevelPath)
		}
	}

	w, err := prefabs.NewWatcher(prefabs.DefaultWatchDirs()...)
	switch {
	case err == nil:
		g.watcher = w
	case !errors.Is(err, prefabs.ErrNoPrefabDirs):
		log.Printf("prefab watcher: %v", err)
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.statusLeft > 0 {
		g.statusLeft--
	}

	g.pollPrefabs()

	if pausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.last.Terminal() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.quit = true
		}
		return nil
	}

	in := readInput()
	if g.rec != nil {
		g.rec.Record(in)
	}
	g.last = g.sim.Advance(in)
	g.report(g.last)
	return nil
}

func (g *Game) report(fe sim.FrameEvents) {
	for _, tr := range fe.WaveTransitions {
		g.flash(fmt.Sprintf("wave %d", tr.To))
	}
	if fe.WeatherChanged != nil {
		log.Printf("weather: %s", fe.WeatherChanged)
	}
	if fe.Terminal() {
		log.Printf("game over: %s, score %d (best %d)", fe.Outcome, fe.Score, fe.HighScore)
	}
}

// pollPrefabs drains pending watcher events without blocking and applies
// edited tuning between ticks.
func (g *Game) pollPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !prefabs.IsSpecFile(path) && !prefabs.IsScriptFile(path) {
				continue
			}
			t, err := prefabs.LoadTuning()
			if err != nil {
				log.Printf("reload %s: %v", path, err)
				continue
			}
			if err := g.sim.SetTuning(t); err != nil {
				log.Printf("reload %s: %v", path, err)
				continue
			}
			g.flash("tuning reloaded")
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) saveGame() {
	if err := g.store.SaveGame(g.sim.Snapshot()); err != nil {
		log.Printf("save: %v", err)
		g.flash("save failed")
		return
	}
	g.flash("game saved")
}

func (g *Game) flash(msg string) {
	g.status = msg
	g.statusLeft = statusTicks
}

// Close stops the watcher and flushes the replay, if one was recorded.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.rec != nil && g.rec.Len() > 0 {
		if err := replay.WriteFile(g.recordPath, g.rec.Session()); err != nil {
			log.Printf("write replay: %v", err)
		} else {
			log.Printf("replay written to %s (%d ticks)", g.recordPath, g.rec.Len())
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	v := g.sim.View()
	drawWorld(screen, v)
	drawHUD(screen, v)

	if g.statusLeft > 0 {
		drawStatus(screen, g.status, v)
	}
	if g.debug {
		drawDebug(screen, g.sim.Tick(), g.sim.Seed())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
