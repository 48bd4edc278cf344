// Package terrain holds the static platform layout and answers point
// solidity queries against it.
package terrain

import "github.com/jakecoffman/cp"

// DefaultTileSize is the pixel size of one platform tile.
const DefaultTileSize = 32

// Platform is a solid rectangle measured in tiles.
type Platform struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Terrain is an ordered platform list. It is read-only after New; where
// platforms overlap the first one in declaration order wins.
type Terrain struct {
	platforms []Platform
	tileSize  int
}

func New(platforms []Platform, tileSize int) *Terrain {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Terrain{
		platforms: append([]Platform(nil), platforms...),
		tileSize:  tileSize,
	}
}

func (t *Terrain) TileSize() int {
	if t == nil || t.tileSize <= 0 {
		return DefaultTileSize
	}
	return t.tileSize
}

func (t *Terrain) Len() int {
	if t == nil {
		return 0
	}
	return len(t.platforms)
}

// Platforms returns a copy of the platform list.
func (t *Terrain) Platforms() []Platform {
	if t == nil {
		return nil
	}
	return append([]Platform(nil), t.platforms...)
}

// Bounds returns platform i in pixels. cp.BB is used in screen space: B is
// the top edge and T the bottom edge.
func (t *Terrain) Bounds(i int) cp.BB {
	p := t.platforms[i]
	ts := float64(t.TileSize())
	l := float64(p.X) * ts
	top := float64(p.Y) * ts
	return cp.BB{
		L: l,
		B: top,
		R: l + float64(p.Width)*ts,
		T: top + float64(p.Height)*ts,
	}
}

// Each visits platform bounds in declaration order until fn returns false.
func (t *Terrain) Each(fn func(i int, bb cp.BB) bool) {
	for i := 0; i < t.Len(); i++ {
		if !fn(i, t.Bounds(i)) {
			return
		}
	}
}

// IsSolid reports whether the pixel lies inside any platform. Bounds are
// half-open: the right and bottom edges are outside.
func (t *Terrain) IsSolid(x, y int) bool {
	if t == nil {
		return false
	}
	ts := t.TileSize()
	for _, p := range t.platforms {
		px, py := p.X*ts, p.Y*ts
		if x >= px && x < px+p.Width*ts && y >= py && y < py+p.Height*ts {
			return true
		}
	}
	return false
}
