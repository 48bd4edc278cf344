package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/wavefall/levels"
	"github.com/milk9111/wavefall/terrain"
)

type Tool int

const (
	ToolPlatform Tool = iota
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolPlatform:
		return "Platform"
	case ToolErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

const maxUndo = 64

// Document is the level being edited plus its undo history. Every edit
// snapshots the platform list first.
type Document struct {
	Level    levels.Level
	Filename string
	Dirty    bool

	undo [][]terrain.Platform
}

func NewDocument(lvl levels.Level, filename string) *Document {
	if lvl.TileSize <= 0 {
		lvl.TileSize = terrain.DefaultTileSize
	}
	return &Document{Level: lvl, Filename: filename}
}

func (d *Document) snapshot() {
	d.undo = append(d.undo, append([]terrain.Platform(nil), d.Level.Platforms...))
	if len(d.undo) > maxUndo {
		d.undo = d.undo[len(d.undo)-maxUndo:]
	}
	d.Dirty = true
}

// Add places a platform spanning the tiles between two corners, inclusive.
func (d *Document) Add(x0, y0, x1, y1 int) terrain.Platform {
	p := spanPlatform(x0, y0, x1, y1)
	d.snapshot()
	d.Level.Platforms = append(d.Level.Platforms, p)
	return p
}

// RemoveAt deletes the topmost platform covering tile (tx, ty).
func (d *Document) RemoveAt(tx, ty int) bool {
	for i := len(d.Level.Platforms) - 1; i >= 0; i-- {
		p := d.Level.Platforms[i]
		if tx >= p.X && tx < p.X+p.Width && ty >= p.Y && ty < p.Y+p.Height {
			d.snapshot()
			d.Level.Platforms = append(d.Level.Platforms[:i], d.Level.Platforms[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Document) Clear() {
	if len(d.Level.Platforms) == 0 {
		return
	}
	d.snapshot()
	d.Level.Platforms = nil
}

func (d *Document) Undo() bool {
	if len(d.undo) == 0 {
		return false
	}
	d.Level.Platforms = d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	d.Dirty = true
	return true
}

func (d *Document) Terrain() *terrain.Terrain {
	return d.Level.Terrain(terrain.DefaultTileSize)
}

func (d *Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d.Level, "", "  ")
}

func (d *Document) Save() error {
	if d.Filename == "" {
		return fmt.Errorf("no file name")
	}
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(d.Filename), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(d.Filename, append(data, '\n'), 0644); err != nil {
		return err
	}
	d.Dirty = false
	return nil
}

func spanPlatform(x0, y0, x1, y1 int) terrain.Platform {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return terrain.Platform{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
}
