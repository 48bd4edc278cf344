package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/milk9111/wavefall/terrain"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is the arena every frontend starts in.
const DefaultLevel = "arena.json"

type Level struct {
	Name string `json:"name"`
	// TileSize overrides the tuning tile size when set.
	TileSize  int                `json:"tile_size,omitempty"`
	Platforms []terrain.Platform `json:"platforms"`
}

// Terrain builds the immutable collision layout for the level, measuring
// tiles in defaultTileSize pixels unless the level names its own size.
func (l *Level) Terrain(defaultTileSize int) *terrain.Terrain {
	if l == nil {
		return terrain.New(nil, defaultTileSize)
	}
	ts := l.TileSize
	if ts <= 0 {
		ts = defaultTileSize
	}
	return terrain.New(l.Platforms, ts)
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return parseLevel(data)
}

// LoadLevel reads a level from disk when path exists, otherwise from the
// embedded set.
func LoadLevel(path string) (*Level, error) {
	if path == "" {
		path = DefaultLevel
	}
	if data, err := os.ReadFile(path); err == nil {
		return parseLevel(data)
	}
	return LoadLevelFromFS(filepath.Base(path))
}

func parseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	for i, p := range lvl.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return nil, fmt.Errorf("invalid platform %d size: %dx%d", i, p.Width, p.Height)
		}
	}
	return &lvl, nil
}
