package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/terrain"
)

// EnemySystem steers and steps every enemy, then resolves contact damage on
// the player and the player's melee hits. Enemies reduced to zero health are
// tagged Defeated and left for EnemyCleanupSystem.
type EnemySystem struct {
	terrain  *terrain.Terrain
	tuning   *prefabs.Tuning
	steerers map[component.EnemyKind]Steerer
	logged   map[component.EnemyKind]bool
}

func NewEnemySystem(t *terrain.Terrain, tuning *prefabs.Tuning, steerers map[component.EnemyKind]Steerer) *EnemySystem {
	s := &EnemySystem{terrain: t, tuning: tuning}
	s.SetSteerers(steerers)
	return s
}

// SetSteerers swaps the steering table, e.g. after a script reload.
func (s *EnemySystem) SetSteerers(steerers map[component.EnemyKind]Steerer) {
	s.steerers = steerers
	s.logged = make(map[component.EnemyKind]bool)
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil || s.tuning == nil || !playing(w) {
		return
	}

	player, ok := findPlayer(w)
	if !ok {
		return
	}

	t := now(w)
	params := PhysicsParamsFrom(s.tuning)
	playerRect := player.body.Rect()

	attacking := player.melee != nil && player.melee.Active
	var meleeBox cp.BB
	if attacking {
		meleeBox = MeleeBox(player.body, player.melee.Range)
	}

	ecs.ForEach4(w,
		component.EnemyComponent.Kind(),
		component.BodyComponent.Kind(),
		component.HealthComponent.Kind(),
		component.ContactDamageComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, body *component.Body, health *component.Health, contact *component.ContactDamage) {
			if ecs.Has(w, e, component.DefeatedComponent.Kind()) {
				return
			}

			dx := player.body.Position.X - body.Position.X
			body.Velocity.X = s.steer(enemy, dx)
			body.Moving = body.Velocity.X != 0
			if body.Velocity.X < 0 {
				body.LastDirection = -1
			} else if body.Velocity.X > 0 {
				body.LastDirection = 1
			}

			// Steering assigns the velocity outright, so ground friction never applies.
			StepBody(body, s.terrain, params, true)

			rect := body.Rect()
			if Overlaps(playerRect, rect) && contact.Ready(t) {
				after := player.health.Damage(contact.Damage)
				contact.LastDamageAt = t
				w.Events().Push(ecs.Event{Type: ecs.EventPlayerDamaged, Data: ecs.DamageEvent{
					Source:      e,
					Amount:      contact.Damage,
					HealthAfter: after,
				}})
			}

			if attacking && Overlaps(meleeBox, rect) {
				health.Damage(player.melee.Damage)
			}

			if health.Dead() {
				_ = ecs.Add(w, e, component.DefeatedComponent.Kind(), &component.Defeated{})
			}
		})
}

func (s *EnemySystem) steer(enemy *component.Enemy, dx float64) float64 {
	if st, ok := s.steerers[enemy.Kind]; ok && st != nil {
		vx, err := st.Steer(dx, enemy.Speed, enemy.Deadzone)
		if err == nil {
			return vx
		}
		if !s.logged[enemy.Kind] {
			log.Printf("enemy: %s steering failed, using chase: %v", enemy.Kind, err)
			s.logged[enemy.Kind] = true
		}
	}
	vx, _ := ChaseSteering{}.Steer(dx, enemy.Speed, enemy.Deadzone)
	return vx
}
