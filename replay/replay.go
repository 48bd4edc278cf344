// Package replay records the seed and per-tick input of a game so it can be
// simulated again headlessly.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/levels"
	"github.com/milk9111/wavefall/sim"
	"github.com/vmihailenco/msgpack/v5"
)

const Version = 1

var ErrVersion = errors.New("replay: unsupported version")

const (
	bitLeft uint8 = 1 << iota
	bitRight
	bitJump
	bitAttack
)

// Session is the on-disk recording. Inputs holds one bitmask per tick.
type Session struct {
	Version int     `msgpack:"v"`
	Seed    int64   `msgpack:"seed"`
	Level   string  `msgpack:"level,omitempty"`
	Inputs  []uint8 `msgpack:"inputs"`
}

func Pack(in sim.Input) uint8 {
	var b uint8
	if in.Left {
		b |= bitLeft
	}
	if in.Right {
		b |= bitRight
	}
	if in.Jump {
		b |= bitJump
	}
	if in.Attack {
		b |= bitAttack
	}
	return b
}

func Unpack(b uint8) sim.Input {
	return sim.Input{
		Left:   b&bitLeft != 0,
		Right:  b&bitRight != 0,
		Jump:   b&bitJump != 0,
		Attack: b&bitAttack != 0,
	}
}

func Encode(w io.Writer, s Session) error {
	if s.Version == 0 {
		s.Version = Version
	}
	if err := msgpack.NewEncoder(w).Encode(&s); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

func Decode(r io.Reader) (Session, error) {
	var s Session
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return Session{}, fmt.Errorf("replay: decode: %w", err)
	}
	if s.Version != Version {
		return Session{}, fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}
	return s, nil
}

func ReadFile(path string) (Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return Session{}, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func WriteFile(path string, s Session) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if err := Encode(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Recorder collects the input fed to a simulation, one call per Advance.
type Recorder struct {
	session Session
}

func NewRecorder(seed int64, level string) *Recorder {
	return &Recorder{session: Session{Version: Version, Seed: seed, Level: level}}
}

func (r *Recorder) Record(in sim.Input) {
	r.session.Inputs = append(r.session.Inputs, Pack(in))
}

func (r *Recorder) Len() int {
	return len(r.session.Inputs)
}

func (r *Recorder) Session() Session {
	s := r.session
	s.Inputs = append([]uint8(nil), r.session.Inputs...)
	return s
}

type Result struct {
	Ticks   int64
	Outcome component.Outcome
	Score   int
	Wave    int
	Kills   int
	Damage  int
}

// Play re-simulates s. opts supplies tuning and the high score store; its
// seed is replaced by the recording's. Playback stops at the first terminal
// frame.
func Play(s Session, opts sim.Options) (Result, error) {
	opts.Seed = s.Seed
	if s.Level != "" && opts.Level == nil {
		lvl, err := levels.LoadLevel(s.Level)
		if err != nil {
			return Result{}, fmt.Errorf("replay: %w", err)
		}
		opts.Level = lvl
	}

	game, err := sim.New(opts)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	var res Result
	for _, b := range s.Inputs {
		fe := game.Advance(Unpack(b))
		res.Kills += len(fe.Deaths)
		for _, d := range fe.Damage {
			res.Damage += d.Amount
		}
		if fe.Terminal() {
			break
		}
	}

	res.Ticks = game.Tick()
	res.Outcome = game.Outcome()
	res.Score = game.Score()
	res.Wave = game.View().Wave
	return res, nil
}
