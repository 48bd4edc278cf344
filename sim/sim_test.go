package sim

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/levels"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/save"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryScores struct {
	best   int
	writes int
}

func (m *memoryScores) HighScore() int { return m.best }

func (m *memoryScores) SetHighScore(score int) error {
	m.best = score
	m.writes++
	return nil
}

// harmlessTuning keeps the player alive so wave flow can be driven by hand.
func harmlessTuning() *prefabs.Tuning {
	t := prefabs.DefaultTuning()
	for name, k := range t.Enemies.Kinds {
		k.Damage = 0
		t.Enemies.Kinds[name] = k
	}
	return t
}

func newSim(t *testing.T, tuning *prefabs.Tuning, scores HighScoreStore) *Simulation {
	t.Helper()
	s, err := New(Options{Seed: 7, Tuning: tuning, HighScores: scores})
	require.NoError(t, err)
	return s
}

func killAll(s *Simulation) {
	ecs.ForEach2(s.world, component.EnemyComponent.Kind(), component.HealthComponent.Kind(), func(_ ecs.Entity, _ *component.Enemy, h *component.Health) {
		h.Current = 0
	})
}

func liveEnemies(s *Simulation) int {
	return ecs.Count(s.world, component.EnemyComponent.Kind())
}

func TestTerrainTileSize(t *testing.T) {
	tu := prefabs.DefaultTuning()
	tu.World.TileSize = 64

	s, err := New(Options{Seed: 7, Tuning: tu})
	require.NoError(t, err)
	assert.Equal(t, 64, s.Terrain().TileSize())

	lvl, err := levels.LoadLevelFromFS(levels.DefaultLevel)
	require.NoError(t, err)
	lvl.TileSize = 16
	s, err = New(Options{Seed: 7, Tuning: tu, Level: lvl})
	require.NoError(t, err)
	assert.Equal(t, 16, s.Terrain().TileSize())

	s = newSim(t, nil, nil)
	assert.Equal(t, 32, s.Terrain().TileSize())
}

func TestWaveOneToTwo(t *testing.T) {
	s := newSim(t, harmlessTuning(), nil)

	for i := 0; i < 10; i++ {
		s.Advance(Input{})
		require.LessOrEqual(t, liveEnemies(s), 5)
	}
	v := s.View()
	assert.Len(t, v.Enemies, 5)
	assert.Equal(t, 10, v.ToSpawn)
	assert.Equal(t, 5, v.Alive)

	kills := 0
	var transitions []ecs.WaveEvent
	for i := 0; i < 100 && len(transitions) == 0; i++ {
		killAll(s)
		fe := s.Advance(Input{})
		kills += len(fe.Deaths)
		transitions = fe.WaveTransitions
		require.LessOrEqual(t, liveEnemies(s), 5)
	}

	require.Len(t, transitions, 1)
	assert.Equal(t, 15, kills)
	assert.Equal(t, ecs.WaveEvent{From: 1, To: 2, ToSpawn: 20}, transitions[0])
	assert.Equal(t, 1500, s.Score())
}

func TestVictoryUpdatesHighScore(t *testing.T) {
	scores := &memoryScores{best: 1000}
	s := newSim(t, harmlessTuning(), scores)
	require.Equal(t, 1000, s.HighScore())

	kills := 0
	var last FrameEvents
	for i := 0; i < 5000 && !last.Terminal(); i++ {
		killAll(s)
		last = s.Advance(Input{})
		kills += len(last.Deaths)
		require.LessOrEqual(t, liveEnemies(s), 5)
	}

	require.Equal(t, component.OutcomeVictory, last.Outcome)
	assert.Equal(t, 15+20+25+30+35, kills)
	assert.Equal(t, 12500, last.Score)
	assert.True(t, last.NewHighScore)
	assert.Equal(t, 12500, last.HighScore)
	assert.Equal(t, 12500, scores.best)
	assert.Equal(t, 1, scores.writes)

	tick := s.Tick()
	after := s.Advance(Input{Right: true})
	assert.Equal(t, tick, after.Tick)
	assert.Equal(t, component.OutcomeVictory, after.Outcome)
	assert.Equal(t, 1, scores.writes)
}

func TestDefeat(t *testing.T) {
	cases := []struct {
		name      string
		score     int
		best      int
		newRecord bool
	}{
		{"beats_record", 500, 100, true},
		{"below_record", 50, 100, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scores := &memoryScores{best: c.best}
			s := newSim(t, nil, scores)
			sc, _ := ecs.Get(s.world, s.session, component.ScoreComponent.Kind())
			sc.Points = c.score
			h, _ := ecs.Get(s.world, s.player, component.HealthComponent.Kind())
			h.Current = 0

			fe := s.Advance(Input{})
			assert.Equal(t, component.OutcomeDefeat, fe.Outcome)
			assert.Equal(t, c.newRecord, fe.NewHighScore)
			assert.Equal(t, max(c.score, c.best), scores.best)
		})
	}
}

func TestHealthStaysInRange(t *testing.T) {
	s := newSim(t, nil, nil)
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 3600; i++ {
		fe := s.Advance(Input{
			Left:   rng.Intn(3) == 0,
			Right:  rng.Intn(3) == 0,
			Jump:   rng.Intn(4) == 0,
			Attack: rng.Intn(5) == 0,
		})
		v := s.View()
		require.GreaterOrEqual(t, v.Player.Health, 0)
		require.LessOrEqual(t, v.Player.Health, 100)
		require.LessOrEqual(t, len(v.Enemies), 5)
		if fe.Terminal() {
			break
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() (View, int) {
		s, err := New(Options{Seed: 99})
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(5))
		for i := 0; i < 900; i++ {
			s.Advance(Input{Left: rng.Intn(2) == 0, Right: rng.Intn(2) == 0, Jump: rng.Intn(3) == 0, Attack: rng.Intn(4) == 0})
		}
		return s.View(), int(s.Tick())
	}

	a, ta := run()
	b, tb := run()
	assert.Equal(t, ta, tb)
	assert.Equal(t, a, b)
}

func TestWeatherReported(t *testing.T) {
	s := newSim(t, harmlessTuning(), nil)
	var changedAt int64
	for i := 0; i < 1900 && changedAt == 0; i++ {
		killAll(s)
		fe := s.Advance(Input{})
		if fe.WeatherChanged != nil {
			changedAt = fe.Tick
			assert.Equal(t, "night", fe.WeatherChanged.String())
		}
	}
	assert.Equal(t, int64(1800), changedAt)
}

func TestSnapshotRestore(t *testing.T) {
	s := newSim(t, harmlessTuning(), nil)
	for i := 0; i < 40; i++ {
		if i%3 == 0 {
			killAll(s)
		}
		s.Advance(Input{Right: i%2 == 0})
	}
	snap := s.Snapshot()
	require.True(t, snap.Valid)

	var buf bytes.Buffer
	require.NoError(t, save.Encode(&buf, snap))
	decoded, err := save.Decode(&buf)
	require.NoError(t, err)

	restored := newSim(t, harmlessTuning(), nil)
	require.True(t, restored.Restore(decoded))

	want, got := s.View(), restored.View()
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.Wave, got.Wave)
	assert.Equal(t, want.ToSpawn, got.ToSpawn)
	assert.Equal(t, len(want.Enemies), len(got.Enemies))
	assert.InDelta(t, want.Player.Bounds.L, got.Player.Bounds.L, 1)
	assert.InDelta(t, want.Player.Bounds.B, got.Player.Bounds.B, 1)
	assert.Equal(t, want.Weather, got.Weather)
	assert.Equal(t, s.Tick(), restored.Tick())
}

func TestRestoreRejectsInvalid(t *testing.T) {
	good := save.GameState{Valid: true, Wave: 2, PlayerHealth: 50, StartTime: 10}

	cases := []struct {
		name   string
		mutate func(st *save.GameState)
	}{
		{"not_valid", func(st *save.GameState) { st.Valid = false }},
		{"wave_zero", func(st *save.GameState) { st.Wave = 0 }},
		{"wave_past_end", func(st *save.GameState) { st.Wave = 6 }},
		{"negative_spawn", func(st *save.GameState) { st.ToSpawn = -1 }},
		{"unknown_enemy", func(st *save.GameState) { st.Enemies = []save.EnemyRecord{{X: 100, Y: 100, Kind: 9}} }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newSim(t, nil, nil)
			for i := 0; i < 5; i++ {
				s.Advance(Input{})
			}
			st := good
			c.mutate(&st)

			assert.False(t, s.Restore(st))
			v := s.View()
			assert.Equal(t, int64(0), s.Tick())
			assert.Equal(t, 1, v.Wave)
			assert.Equal(t, 15, v.ToSpawn)
			assert.Equal(t, 100, v.Player.Health)
			assert.Empty(t, v.Enemies)
		})
	}
}

func TestRestoreClampsHealthAndAlive(t *testing.T) {
	s := newSim(t, nil, nil)
	ok := s.Restore(save.GameState{
		Valid:         true,
		Wave:          3,
		PlayerHealth:  250,
		AliveThisWave: 4,
		Enemies:       []save.EnemyRecord{{X: 300, Y: 512, Kind: 1}},
		Weather:       7,
	})
	require.True(t, ok)

	v := s.View()
	assert.Equal(t, 100, v.Player.Health)
	assert.Equal(t, 1, v.Alive)
	assert.Equal(t, component.EnemyBulwark, v.Enemies[0].Kind)
	assert.Equal(t, "day", v.Weather.String())
}

func TestSetTuning(t *testing.T) {
	s := newSim(t, nil, nil)

	bad := prefabs.DefaultTuning()
	bad.Waves.Schedule = nil
	assert.ErrorIs(t, s.SetTuning(bad), prefabs.ErrInvalidTuning)

	next := prefabs.DefaultTuning()
	next.Physics.Gravity = 0.25
	next.Player.Acceleration = 1.5
	require.NoError(t, s.SetTuning(next))
	assert.Equal(t, 0.25, s.Tuning().Physics.Gravity)

	ctrl, _ := ecs.Get(s.world, s.player, component.PlayerControlComponent.Kind())
	assert.Equal(t, 1.5, ctrl.Acceleration)

	next.Physics.Gravity = 9
	assert.Equal(t, 0.25, s.Tuning().Physics.Gravity, "caller copy must not alias")
}
