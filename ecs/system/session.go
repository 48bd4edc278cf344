package system

import (
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
)

func sessionEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.SessionTagComponent.Kind())
}

// now returns the simulated time of the current tick.
func now(w *ecs.World) float64 {
	session, ok := sessionEntity(w)
	if !ok {
		return 0
	}
	clock, ok := ecs.Get(w, session, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.Now()
}

func playing(w *ecs.World) bool {
	session, ok := sessionEntity(w)
	if !ok {
		return false
	}
	match, ok := ecs.Get(w, session, component.MatchComponent.Kind())
	return ok && !match.Outcome.Terminal()
}

func waveState(w *ecs.World) (*component.WaveState, bool) {
	session, ok := sessionEntity(w)
	if !ok {
		return nil, false
	}
	return ecs.Get(w, session, component.WaveStateComponent.Kind())
}

// playerState bundles the player's components the interaction systems need.
type playerState struct {
	entity ecs.Entity
	body   *component.Body
	health *component.Health
	melee  *component.Melee
}

func findPlayer(w *ecs.World) (playerState, bool) {
	var ps playerState
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return ps, false
	}
	ps.entity = e
	if ps.body, ok = ecs.Get(w, e, component.BodyComponent.Kind()); !ok {
		return ps, false
	}
	if ps.health, ok = ecs.Get(w, e, component.HealthComponent.Kind()); !ok {
		return ps, false
	}
	ps.melee, _ = ecs.Get(w, e, component.MeleeComponent.Kind())
	return ps, true
}
