package entity

import (
	"fmt"

	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
)

// NewEnemy creates an enemy of kind with its top-left corner at (x, y).
func NewEnemy(w *ecs.World, t *prefabs.Tuning, kind component.EnemyKind, x, y float64) (ecs.Entity, error) {
	kindSpec, ok := t.Kind(kind.String())
	if !ok {
		return 0, fmt.Errorf("enemy: no tuning for kind %s", kind)
	}
	spec := t.Enemies

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Kind:     kind,
		Speed:    kindSpec.Speed,
		Deadzone: spec.Deadzone,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}

	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), newBody(x, y, spec.Width, spec.Height, spec.Bounds)); err != nil {
		return 0, fmt.Errorf("enemy: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: kindSpec.Health, Max: kindSpec.Health}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.ContactDamageComponent.Kind(), &component.ContactDamage{
		Damage:       kindSpec.Damage,
		Cooldown:     spec.ContactCooldown,
		LastDamageAt: never,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add contact damage: %w", err)
	}

	return entity, nil
}
