package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	lvl, err := LoadLevelFromFS(DefaultLevel)
	require.NoError(t, err)
	require.Len(t, lvl.Platforms, 6)

	assert.Zero(t, lvl.TileSize)

	tr := lvl.Terrain(32)
	assert.Equal(t, 32, tr.TileSize())
	assert.True(t, tr.IsSolid(0, 544))
	assert.False(t, tr.IsSolid(0, 543))
}

func TestLevelTileSize(t *testing.T) {
	cases := []struct {
		name     string
		level    *Level
		fallback int
		want     int
	}{
		{"level_unset_uses_fallback", &Level{}, 64, 64},
		{"level_overrides_fallback", &Level{TileSize: 16}, 64, 16},
		{"nil_level_uses_fallback", nil, 48, 48},
		{"nothing_set_uses_default", &Level{}, 0, 32},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.level.Terrain(c.fallback).TileSize())
		})
	}
}

func TestLoadLevelErrors(t *testing.T) {
	_, err := LoadLevelFromFS("missing.json")
	assert.Error(t, err)

	_, err = parseLevel([]byte(`{"platforms":[{"x":0,"y":0,"w":0,"h":1}]}`))
	assert.Error(t, err)

	_, err = parseLevel([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadLevelFallsBackToEmbedded(t *testing.T) {
	lvl, err := LoadLevel("does/not/exist/arena.json")
	require.NoError(t, err)
	assert.Equal(t, "arena", lvl.Name)
}
