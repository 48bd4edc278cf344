package entity

import (
	"fmt"

	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
)

// NewPlayer creates the player at the tuned spawn point with full health.
func NewPlayer(w *ecs.World, t *prefabs.Tuning) (ecs.Entity, error) {
	spec := t.Player
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), newBody(spec.SpawnX, spec.SpawnY, spec.Width, spec.Height, spec.Bounds)); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: spec.MaxHealth, Max: spec.MaxHealth}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerControlComponent.Kind(), &component.PlayerControl{
		Acceleration: spec.Acceleration,
		JumpImpulse:  spec.JumpImpulse,
		MaxSpeed:     t.Physics.MaxSpeed,
	}); err != nil {
		return 0, fmt.Errorf("player: add control: %w", err)
	}

	if err := ecs.Add(w, entity, component.MeleeComponent.Kind(), &component.Melee{
		Damage:       spec.Melee.Damage,
		Range:        spec.Melee.Range,
		Cooldown:     spec.Melee.Cooldown,
		LastAttackAt: never,
	}); err != nil {
		return 0, fmt.Errorf("player: add melee: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	return entity, nil
}
