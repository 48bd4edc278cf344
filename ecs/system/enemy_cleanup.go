package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/ecs/entity"
	"github.com/milk9111/wavefall/prefabs"
)

// EnemyCleanupSystem removes defeated enemies after the enemy pass. Each
// removal awards score, rolls a pickup drop at the enemy's position and
// decrements the wave's alive count.
type EnemyCleanupSystem struct {
	tuning *prefabs.Tuning
	rng    *rand.Rand
}

func NewEnemyCleanupSystem(tuning *prefabs.Tuning, rng *rand.Rand) *EnemyCleanupSystem {
	return &EnemyCleanupSystem{tuning: tuning, rng: rng}
}

func (s *EnemyCleanupSystem) Update(w *ecs.World) {
	if w == nil || s.tuning == nil {
		return
	}

	dead := w.Query(component.DefeatedComponent.Kind(), component.EnemyComponent.Kind(), component.BodyComponent.Kind())
	if len(dead) == 0 {
		return
	}

	t := now(w)
	ws, _ := waveState(w)
	var score *component.Score
	if session, ok := sessionEntity(w); ok {
		score, _ = ecs.Get(w, session, component.ScoreComponent.Kind())
	}

	for _, e := range dead {
		enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
		body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
		x, y := body.Position.X, body.Position.Y

		dropped := false
		if s.rng != nil && s.rng.Float64() < s.tuning.Enemies.DropChance {
			if p, err := entity.NewPickup(w, s.tuning, x, y, t); err != nil {
				log.Printf("cleanup: drop pickup: %v", err)
			} else {
				dropped = true
				w.Events().Push(ecs.Event{Type: ecs.EventPickupSpawned, Data: ecs.PickupEvent{Entity: p, X: x, Y: y}})
			}
		}

		if score != nil {
			score.Points += s.tuning.Enemies.KillScore
		}
		if ws != nil && ws.AliveThisWave > 0 {
			ws.AliveThisWave--
		}

		w.Events().Push(ecs.Event{Type: ecs.EventEnemyKilled, Data: ecs.EnemyKilledEvent{
			Entity:  e,
			Kind:    enemy.Kind,
			X:       x,
			Y:       y,
			Score:   s.tuning.Enemies.KillScore,
			Dropped: dropped,
		}})
		ecs.DestroyEntity(w, e)
	}
}
