package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveSystem(t *testing.T) {
	cases := []struct {
		name        string
		setup       func(t *testing.T, f *fixture)
		wantWave    int
		wantSpawn   int
		wantOutcome component.Outcome
	}{
		{
			name: "advances_when_cleared",
			setup: func(t *testing.T, f *fixture) {
				f.waves(t).RemainingToSpawn = 0
			},
			wantWave:  2,
			wantSpawn: 20,
		},
		{
			name:      "waits_for_spawns",
			setup:     func(t *testing.T, f *fixture) {},
			wantWave:  1,
			wantSpawn: 15,
		},
		{
			name: "waits_for_alive",
			setup: func(t *testing.T, f *fixture) {
				ws := f.waves(t)
				ws.RemainingToSpawn = 0
				ws.AliveThisWave = 1
			},
			wantWave: 1,
		},
		{
			name: "victory_after_last_wave",
			setup: func(t *testing.T, f *fixture) {
				ws := f.waves(t)
				ws.Current = 5
				ws.RemainingToSpawn = 0
			},
			wantWave:    5,
			wantOutcome: component.OutcomeVictory,
		},
		{
			name: "defeat_beats_victory",
			setup: func(t *testing.T, f *fixture) {
				ws := f.waves(t)
				ws.Current = 5
				ws.RemainingToSpawn = 0
				f.playerHealth(t).Current = 0
			},
			wantWave:    5,
			wantOutcome: component.OutcomeDefeat,
		},
		{
			name: "defeat_when_fallen_off_screen",
			setup: func(t *testing.T, f *fixture) {
				f.playerBody(t).Position.Y = 601
			},
			wantWave:    1,
			wantSpawn:   15,
			wantOutcome: component.OutcomeDefeat,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			c.setup(t, f)

			NewWaveSystem(f.tuning).Update(f.w)

			ws := f.waves(t)
			assert.Equal(t, c.wantWave, ws.Current)
			assert.Equal(t, c.wantSpawn, ws.RemainingToSpawn)
			assert.Equal(t, c.wantOutcome, f.outcome(t))
		})
	}
}

func TestWaveOutcomeIsFinal(t *testing.T) {
	f := newFixture(t)
	f.playerHealth(t).Current = 0
	sys := NewWaveSystem(f.tuning)

	sys.Update(f.w)
	sys.Update(f.w)

	outcomes := eventsOf(f.w.Events().Drain(), ecs.EventOutcome)
	require.Len(t, outcomes, 1)
	assert.Equal(t, component.OutcomeDefeat, outcomes[0].Data.(ecs.OutcomeEvent).Outcome)
}

func TestSpawnSystem(t *testing.T) {
	t.Run("places_enemy_on_platform_top", func(t *testing.T) {
		f := newFixture(t)
		tr := arena()
		NewSpawnSystem(tr, f.tuning, testRNG()).Update(f.w)

		spawned := eventsOf(f.w.Events().Drain(), ecs.EventEnemySpawned)
		require.Len(t, spawned, 1)
		ev := spawned[0].Data.(ecs.EnemySpawnedEvent)

		onTop := false
		tr.Each(func(_ int, bb cp.BB) bool {
			if ev.Y == bb.B-32 && ev.X >= bb.L && ev.X <= bb.R-32 {
				onTop = true
				return false
			}
			return true
		})
		assert.True(t, onTop, "spawned at (%v, %v)", ev.X, ev.Y)

		ws := f.waves(t)
		assert.Equal(t, 14, ws.RemainingToSpawn)
		assert.Equal(t, 1, ws.AliveThisWave)
	})

	t.Run("respects_cap", func(t *testing.T) {
		f := newFixture(t)
		sys := NewSpawnSystem(arena(), f.tuning, testRNG())
		for i := 0; i < 10; i++ {
			sys.Update(f.w)
		}
		assert.Equal(t, 5, ecs.Count(f.w, component.EnemyComponent.Kind()))
		assert.Equal(t, 10, f.waves(t).RemainingToSpawn)
	})

	t.Run("empty_terrain_keeps_budget", func(t *testing.T) {
		f := newFixture(t)
		NewSpawnSystem(nil, f.tuning, testRNG()).Update(f.w)
		assert.Equal(t, 0, ecs.Count(f.w, component.EnemyComponent.Kind()))
		assert.Equal(t, 15, f.waves(t).RemainingToSpawn)
	})

	t.Run("both_kinds_appear", func(t *testing.T) {
		f := newFixture(t)
		f.tuning.Enemies.Cap = 100
		f.waves(t).RemainingToSpawn = 40
		sys := NewSpawnSystem(arena(), f.tuning, testRNG())
		for i := 0; i < 40; i++ {
			sys.Update(f.w)
		}
		kinds := map[component.EnemyKind]int{}
		ecs.ForEach(f.w, component.EnemyComponent.Kind(), func(_ ecs.Entity, e *component.Enemy) {
			kinds[e.Kind]++
		})
		assert.Len(t, kinds, 2)
	})
}
