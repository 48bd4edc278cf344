package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/ecs/entity"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/terrain"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// arena is the default six-platform layout; the ground top is at y=544.
func arena() *terrain.Terrain {
	return terrain.New([]terrain.Platform{
		{X: 0, Y: 17, Width: 30, Height: 2},
		{X: 2, Y: 12, Width: 8, Height: 1},
		{X: 15, Y: 12, Width: 8, Height: 1},
		{X: 10, Y: 8, Width: 5, Height: 1},
		{X: 2, Y: 4, Width: 8, Height: 1},
		{X: 15, Y: 4, Width: 8, Height: 1},
	}, 32)
}

type fixture struct {
	w       *ecs.World
	tuning  *prefabs.Tuning
	session ecs.Entity
	player  ecs.Entity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tuning := prefabs.DefaultTuning()
	w := ecs.NewWorld()
	session, err := entity.NewSession(w, tuning)
	require.NoError(t, err)
	player, err := entity.NewPlayer(w, tuning)
	require.NoError(t, err)
	return &fixture{w: w, tuning: tuning, session: session, player: player}
}

func (f *fixture) setTime(t *testing.T, seconds float64) {
	t.Helper()
	clock, ok := ecs.Get(f.w, f.session, component.ClockComponent.Kind())
	require.True(t, ok)
	clock.Tick = int64(seconds * clock.TickRate)
}

func (f *fixture) tick(t *testing.T) {
	t.Helper()
	clock, ok := ecs.Get(f.w, f.session, component.ClockComponent.Kind())
	require.True(t, ok)
	clock.Tick++
}

func (f *fixture) playerBody(t *testing.T) *component.Body {
	t.Helper()
	b, ok := ecs.Get(f.w, f.player, component.BodyComponent.Kind())
	require.True(t, ok)
	return b
}

func (f *fixture) playerHealth(t *testing.T) *component.Health {
	t.Helper()
	h, ok := ecs.Get(f.w, f.player, component.HealthComponent.Kind())
	require.True(t, ok)
	return h
}

func (f *fixture) waves(t *testing.T) *component.WaveState {
	t.Helper()
	ws, ok := ecs.Get(f.w, f.session, component.WaveStateComponent.Kind())
	require.True(t, ok)
	return ws
}

func (f *fixture) outcome(t *testing.T) component.Outcome {
	t.Helper()
	m, ok := ecs.Get(f.w, f.session, component.MatchComponent.Kind())
	require.True(t, ok)
	return m.Outcome
}

func (f *fixture) addEnemy(t *testing.T, kind component.EnemyKind, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(f.w, f.tuning, kind, x, y)
	require.NoError(t, err)
	return e
}

func eventsOf(evts []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, e := range evts {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
