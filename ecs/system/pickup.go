package system

import (
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/terrain"
)

// PickupSystem steps pickups, removes expired ones and heals the player on
// contact. Expiry is checked before contact, so a pickup is either expired or
// consumed, never both.
type PickupSystem struct {
	terrain *terrain.Terrain
	tuning  *prefabs.Tuning
}

func NewPickupSystem(t *terrain.Terrain, tuning *prefabs.Tuning) *PickupSystem {
	return &PickupSystem{terrain: t, tuning: tuning}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil || s.tuning == nil {
		return
	}

	t := now(w)
	params := PhysicsParamsFrom(s.tuning)
	player, hasPlayer := findPlayer(w)

	var expired, consumed []ecs.Entity
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, p *component.Pickup, body *component.Body) {
		StepBody(body, s.terrain, params, false)

		if p.Expired(t) {
			expired = append(expired, e)
			w.Events().Push(ecs.Event{Type: ecs.EventPickupExpired, Data: ecs.PickupEvent{Entity: e, X: body.Position.X, Y: body.Position.Y}})
			return
		}

		if hasPlayer && Overlaps(player.body.Rect(), body.Rect()) {
			healed := player.health.Heal(p.Heal)
			consumed = append(consumed, e)
			w.Events().Push(ecs.Event{Type: ecs.EventPickupConsumed, Data: ecs.PickupEvent{Entity: e, X: body.Position.X, Y: body.Position.Y, Healed: healed}})
		}
	})

	for _, e := range expired {
		ecs.DestroyEntity(w, e)
	}
	for _, e := range consumed {
		ecs.DestroyEntity(w, e)
	}
}
