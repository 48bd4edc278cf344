package replay

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/milk9111/wavefall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestPackUnpack(t *testing.T) {
	cases := []struct {
		name string
		in   sim.Input
		bits uint8
	}{
		{"idle", sim.Input{}, 0},
		{"left", sim.Input{Left: true}, 1},
		{"right_jump", sim.Input{Right: true, Jump: true}, 6},
		{"all", sim.Input{Left: true, Right: true, Jump: true, Attack: true}, 15},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.bits, Pack(c.in))
			assert.Equal(t, c.in, Unpack(c.bits))
		})
	}
}

func TestDecodeRejectsVersion(t *testing.T) {
	data, err := msgpack.Marshal(&Session{Version: 9, Seed: 1})
	require.NoError(t, err)

	_, err = Decode(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrVersion)

	_, err = Decode(bytes.NewReader([]byte{0xc1}))
	assert.Error(t, err)
}

func record(t *testing.T, seed int64, ticks int) (*Recorder, sim.FrameEvents) {
	t.Helper()
	game, err := sim.New(sim.Options{Seed: seed})
	require.NoError(t, err)
	rec := NewRecorder(seed, "")
	rng := rand.New(rand.NewSource(seed + 1))

	var fe sim.FrameEvents
	for i := 0; i < ticks; i++ {
		in := sim.Input{Left: rng.Intn(3) == 0, Right: rng.Intn(2) == 0, Jump: rng.Intn(6) == 0, Attack: rng.Intn(4) == 0}
		rec.Record(in)
		fe = game.Advance(in)
		if fe.Terminal() {
			break
		}
	}
	return rec, fe
}

func TestPlayMatchesLiveGame(t *testing.T) {
	rec, live := record(t, 42, 1200)

	path := filepath.Join(t.TempDir(), "run.replay")
	require.NoError(t, WriteFile(path, rec.Session()))

	s, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.Seed)
	assert.Len(t, s.Inputs, rec.Len())

	res, err := Play(s, sim.Options{})
	require.NoError(t, err)
	assert.Equal(t, live.Tick, res.Ticks)
	assert.Equal(t, live.Outcome, res.Outcome)
	assert.Equal(t, live.Score, res.Score)

	again, err := Play(s, sim.Options{})
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestPlayMissingLevel(t *testing.T) {
	_, err := Play(Session{Version: Version, Level: filepath.Join(t.TempDir(), "nope.json")}, sim.Options{})
	assert.Error(t, err)
}

func TestRecorderSessionIsCopy(t *testing.T) {
	rec := NewRecorder(3, "")
	rec.Record(sim.Input{Jump: true})
	s := rec.Session()
	rec.Record(sim.Input{})

	assert.Len(t, s.Inputs, 1)
	assert.Equal(t, 2, rec.Len())
}
