// Command editor places platforms on the arena tile grid and writes level
// JSON for the game.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wavefall/levels"
	"github.com/milk9111/wavefall/prefabs"
)

func main() {
	levelPath := flag.String("level", "", "level to open (defaults to the embedded arena)")
	out := flag.String("o", "", "file to save to (defaults to -level, or levels/arena.json)")
	flag.Parse()

	lvl, err := levels.LoadLevel(*levelPath)
	if err != nil {
		log.Printf("failed to load level %s: %v", *levelPath, err)
		lvl = &levels.Level{Name: "untitled"}
	}

	filename := *out
	if filename == "" {
		filename = *levelPath
	}
	if filename == "" {
		filename = filepath.Join("levels", levels.DefaultLevel)
	}

	width, height := 800, 600
	if t, err := prefabs.LoadTuning(); err == nil {
		width, height = int(t.World.ScreenWidth), int(t.World.ScreenHeight)
	} else {
		log.Printf("using default screen size: %v", err)
	}

	editor := NewEditor(NewDocument(*lvl, filename), width, height)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("wavefall editor")
	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
