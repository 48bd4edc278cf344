package save

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	GameFile      = "savegame.dat"
	HighScoreFile = "highscore.dat"
)

// Store reads and writes save files in one directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// SaveGame writes st and marks it valid.
func (s *Store) SaveGame(st GameState) error {
	st.Valid = true
	var buf bytes.Buffer
	if err := Encode(&buf, st); err != nil {
		return err
	}
	return writeFile(s.path(GameFile), buf.Bytes())
}

// LoadGame returns the saved game. A missing or malformed file reports
// ok=false so callers start fresh.
func (s *Store) LoadGame() (GameState, bool) {
	data, err := os.ReadFile(s.path(GameFile))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("save: read %s: %v", GameFile, err)
		}
		return GameState{}, false
	}
	st, err := Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("save: %s: %v", GameFile, err)
		return GameState{}, false
	}
	return st, st.Valid
}

// HighScore returns the stored high score, or 0 when none is readable.
func (s *Store) HighScore() int {
	data, err := os.ReadFile(s.path(HighScoreFile))
	if err != nil {
		return 0
	}
	score, err := DecodeHighScore(bytes.NewReader(data))
	if err != nil {
		log.Printf("save: %s: %v", HighScoreFile, err)
		return 0
	}
	return int(score)
}

func (s *Store) SetHighScore(score int) error {
	var buf bytes.Buffer
	if err := EncodeHighScore(&buf, int32(score)); err != nil {
		return fmt.Errorf("save: encode high score: %w", err)
	}
	return writeFile(s.path(HighScoreFile), buf.Bytes())
}

// writeFile replaces path through a rename in the same directory.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save: rename %s: %w", path, err)
	}
	return nil
}
