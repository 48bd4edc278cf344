// Package save persists games and the high score in the legacy little-endian
// binary layout.
package save

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrMalformed is returned when a save file cannot be decoded.
var ErrMalformed = errors.New("save: malformed data")

// maxEnemies bounds the enemy count read from disk so a corrupt header
// cannot trigger a huge allocation.
const maxEnemies = 1 << 16

// EnemyRecord is one live enemy: its top-left corner and kind.
type EnemyRecord struct {
	X    float32
	Y    float32
	Kind int32
}

// GameState is the persisted snapshot. Field order and widths match the file
// layout exactly.
type GameState struct {
	PlayerX       float32
	PlayerY       float32
	PlayerVX      float32
	PlayerVY      float32
	PlayerHealth  int32
	Score         int32
	StartTime     float64
	Valid         bool
	Enemies       []EnemyRecord
	Wave          int32
	ToSpawn       int32
	AliveThisWave int32
	Weather       int32
}

type header struct {
	PlayerX      float32
	PlayerY      float32
	PlayerVX     float32
	PlayerVY     float32
	PlayerHealth int32
	Score        int32
	StartTime    float64
	Valid        bool
	EnemyCount   uint64
}

type trailer struct {
	Wave          int32
	ToSpawn       int32
	AliveThisWave int32
	Weather       int32
}

// Encode writes st in the binary layout.
func Encode(w io.Writer, st GameState) error {
	h := header{
		PlayerX:      st.PlayerX,
		PlayerY:      st.PlayerY,
		PlayerVX:     st.PlayerVX,
		PlayerVY:     st.PlayerVY,
		PlayerHealth: st.PlayerHealth,
		Score:        st.Score,
		StartTime:    st.StartTime,
		Valid:        st.Valid,
		EnemyCount:   uint64(len(st.Enemies)),
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("save: write header: %w", err)
	}
	if len(st.Enemies) > 0 {
		if err := binary.Write(w, binary.LittleEndian, st.Enemies); err != nil {
			return fmt.Errorf("save: write enemies: %w", err)
		}
	}
	t := trailer{Wave: st.Wave, ToSpawn: st.ToSpawn, AliveThisWave: st.AliveThisWave, Weather: st.Weather}
	if err := binary.Write(w, binary.LittleEndian, t); err != nil {
		return fmt.Errorf("save: write trailer: %w", err)
	}
	return nil
}

// Decode reads a GameState. Truncated input, an absurd enemy count or
// non-finite numbers yield ErrMalformed.
func Decode(r io.Reader) (GameState, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return GameState{}, fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}
	if h.EnemyCount > maxEnemies {
		return GameState{}, fmt.Errorf("%w: enemy count %d", ErrMalformed, h.EnemyCount)
	}

	st := GameState{
		PlayerX:      h.PlayerX,
		PlayerY:      h.PlayerY,
		PlayerVX:     h.PlayerVX,
		PlayerVY:     h.PlayerVY,
		PlayerHealth: h.PlayerHealth,
		Score:        h.Score,
		StartTime:    h.StartTime,
		Valid:        h.Valid,
	}
	if h.EnemyCount > 0 {
		st.Enemies = make([]EnemyRecord, h.EnemyCount)
		if err := binary.Read(r, binary.LittleEndian, st.Enemies); err != nil {
			return GameState{}, fmt.Errorf("%w: enemies: %v", ErrMalformed, err)
		}
	}

	var t trailer
	if err := binary.Read(r, binary.LittleEndian, &t); err != nil {
		return GameState{}, fmt.Errorf("%w: trailer: %v", ErrMalformed, err)
	}
	st.Wave = t.Wave
	st.ToSpawn = t.ToSpawn
	st.AliveThisWave = t.AliveThisWave
	st.Weather = t.Weather

	if !finite(float64(st.PlayerX), float64(st.PlayerY), float64(st.PlayerVX), float64(st.PlayerVY), st.StartTime) {
		return GameState{}, fmt.Errorf("%w: non-finite player state", ErrMalformed)
	}
	for i, e := range st.Enemies {
		if !finite(float64(e.X), float64(e.Y)) {
			return GameState{}, fmt.Errorf("%w: non-finite enemy %d", ErrMalformed, i)
		}
	}
	return st, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// EncodeHighScore writes the high score file body: one int32.
func EncodeHighScore(w io.Writer, score int32) error {
	return binary.Write(w, binary.LittleEndian, score)
}

func DecodeHighScore(r io.Reader) (int32, error) {
	var score int32
	if err := binary.Read(r, binary.LittleEndian, &score); err != nil {
		return 0, fmt.Errorf("%w: high score: %v", ErrMalformed, err)
	}
	return score, nil
}
