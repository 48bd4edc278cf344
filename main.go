package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for spawns and drops")
	load := flag.Bool("load", false, "resume the game stored in the save directory")
	saveDir := flag.String("save-dir", ".", "directory holding savegame.dat and highscore.dat")
	levelPath := flag.String("level", "", "level file (defaults to the embedded arena)")
	recordPath := flag.String("record", "", "write a replay of this run to the given file")
	debug := flag.Bool("debug", false, "enable debug overlay")
	flag.Parse()

	game, err := NewGame(Config{
		Seed:       *seed,
		Load:       *load,
		SaveDir:    *saveDir,
		LevelPath:  *levelPath,
		RecordPath: *recordPath,
		Debug:      *debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("wavefall")

	runErr := ebiten.RunGame(game)
	game.Close()
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
