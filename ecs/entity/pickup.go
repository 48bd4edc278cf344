package entity

import (
	"fmt"

	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
)

// NewPickup drops a healing pickup at (x, y). Pickups fall but do not slide to
// a stop on the ground.
func NewPickup(w *ecs.World, t *prefabs.Tuning, x, y, now float64) (ecs.Entity, error) {
	spec := t.Pickups
	entity := ecs.CreateEntity(w)

	body := newBody(x, y, spec.Width, spec.Height, spec.Bounds)
	body.Friction = false
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("pickup: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.PickupComponent.Kind(), &component.Pickup{
		SpawnedAt: now,
		Lifetime:  spec.Lifetime,
		Heal:      spec.Heal,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}

	return entity, nil
}
