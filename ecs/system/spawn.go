package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/ecs/entity"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/terrain"
)

// SpawnSystem places at most one enemy per tick while the wave still has
// enemies to spawn and fewer than the cap are alive.
type SpawnSystem struct {
	terrain *terrain.Terrain
	tuning  *prefabs.Tuning
	rng     *rand.Rand
	warned  bool
}

func NewSpawnSystem(t *terrain.Terrain, tuning *prefabs.Tuning, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{terrain: t, tuning: tuning, rng: rng}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s.tuning == nil || s.rng == nil || !playing(w) {
		return
	}

	ws, ok := waveState(w)
	if !ok || ws.RemainingToSpawn <= 0 {
		return
	}
	if ecs.Count(w, component.EnemyComponent.Kind()) >= s.tuning.Enemies.Cap {
		return
	}
	if s.terrain.Len() == 0 {
		if !s.warned {
			log.Printf("spawn: no platforms to spawn on")
			s.warned = true
		}
		return
	}

	bb := s.terrain.Bounds(s.rng.Intn(s.terrain.Len()))
	width := float64(s.tuning.Enemies.Width)
	x := bb.L + s.rng.Float64()*((bb.R-bb.L)-width)
	y := bb.B - float64(s.tuning.Enemies.Height)
	kind := component.EnemyKinds[s.rng.Intn(len(component.EnemyKinds))]

	e, err := entity.NewEnemy(w, s.tuning, kind, x, y)
	if err != nil {
		log.Printf("spawn: %v", err)
		return
	}

	ws.RemainingToSpawn--
	ws.AliveThisWave++
	w.Events().Push(ecs.Event{Type: ecs.EventEnemySpawned, Data: ecs.EnemySpawnedEvent{Entity: e, Kind: kind, X: x, Y: y}})
}
