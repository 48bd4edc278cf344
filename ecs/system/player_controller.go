package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/terrain"
)

// PlayerControllerSystem turns the tick's input into acceleration, jumps and
// melee attacks, then steps the player's body.
type PlayerControllerSystem struct {
	terrain *terrain.Terrain
	tuning  *prefabs.Tuning
}

func NewPlayerControllerSystem(t *terrain.Terrain, tuning *prefabs.Tuning) *PlayerControllerSystem {
	return &PlayerControllerSystem{terrain: t, tuning: tuning}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || s.tuning == nil {
		return
	}

	ecs.ForEach4(w,
		component.PlayerControlComponent.Kind(),
		component.BodyComponent.Kind(),
		component.InputComponent.Kind(),
		component.MeleeComponent.Kind(),
		func(e ecs.Entity, ctrl *component.PlayerControl, body *component.Body, in *component.Input, melee *component.Melee) {
			t := now(w)

			if !in.Jump {
				ctrl.Jumping = false
			} else if body.OnGround && !ctrl.Jumping {
				Accelerate(body, 0, ctrl.JumpImpulse, ctrl.MaxSpeed)
				body.OnGround = false
				ctrl.Jumping = true
			}

			melee.Active = false
			if in.Attack && t-melee.LastAttackAt >= melee.Cooldown {
				melee.Active = true
				melee.LastAttackAt = t
			}

			hasInput := false
			if in.Left {
				Accelerate(body, -ctrl.Acceleration, 0, ctrl.MaxSpeed)
				hasInput = true
			}
			if in.Right {
				Accelerate(body, ctrl.Acceleration, 0, ctrl.MaxSpeed)
				hasInput = true
			}

			body.Moving = hasInput
			if in.Left {
				body.LastDirection = -1
			} else if in.Right {
				body.LastDirection = 1
			}

			StepBody(body, s.terrain, PhysicsParamsFrom(s.tuning), hasInput)
		})
}

// MeleeBox returns the attack square centered on the body.
func MeleeBox(body *component.Body, meleeRange float64) cp.BB {
	half := meleeRange / 2
	x := float64(int(body.Position.X - half + float64(body.Width/2)))
	y := float64(int(body.Position.Y - half + float64(body.Height/2)))
	return cp.BB{L: x, B: y, R: x + meleeRange, T: y + meleeRange}
}
