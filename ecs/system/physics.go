package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/terrain"
)

// PhysicsParams are the world constants StepBody integrates with.
type PhysicsParams struct {
	Gravity      float64
	Friction     float64
	MaxSpeed     float64
	SnapBand     float64
	ScreenWidth  float64
	ScreenHeight float64
}

// PhysicsParamsFrom reads the physics and screen constants out of t.
func PhysicsParamsFrom(t *prefabs.Tuning) PhysicsParams {
	return PhysicsParams{
		Gravity:      t.Physics.Gravity,
		Friction:     t.Physics.Friction,
		MaxSpeed:     t.Physics.MaxSpeed,
		SnapBand:     t.Physics.SnapBand,
		ScreenWidth:  t.World.ScreenWidth,
		ScreenHeight: t.World.ScreenHeight,
	}
}

// StepResult reports which contacts were resolved during a step.
type StepResult struct {
	Grounded  bool
	Ceiling   bool
	LeftWall  bool
	RightWall bool
	Bounded   bool
}

// StepBody advances one body by one tick: forces, integration, ground,
// ceiling and wall resolution against the terrain, then the screen bounds.
// hasInput suppresses ground friction while the body is being driven.
func StepBody(b *component.Body, t *terrain.Terrain, p PhysicsParams, hasInput bool) StepResult {
	var res StepResult
	if b == nil {
		return res
	}

	if b.Gravity {
		b.Velocity.Y += p.Gravity
	}
	if b.OnGround && b.Friction && !hasInput {
		b.Velocity.X *= p.Friction
	}

	b.Position.Add(b.Velocity)
	b.OnGround = false

	if groundContact(b, t) && b.Velocity.Y >= 0 {
		b.Velocity.Y = 0
		b.OnGround = true
		res.Grounded = true
		snapToGround(b, t, p.SnapBand)
	}

	if ceilingContact(b, t) && b.Velocity.Y < 0 {
		b.Velocity.Y = 0
		res.Ceiling = true
		snapToCeiling(b, t)
	}

	if b.Velocity.X < 0 && leftContact(b, t) && !ceilingContact(b, t) {
		b.Velocity.X = 0
		res.LeftWall = true
		snapToLeftWall(b, t)
	}

	if b.Velocity.X > 0 && rightContact(b, t) && !ceilingContact(b, t) {
		b.Velocity.X = 0
		res.RightWall = true
		snapToRightWall(b, t)
	}

	res.Bounded = applyBounds(b, p)
	return res
}

// Accelerate adds (dx, dy) to the velocity and clamps only the horizontal
// component to maxSpeed.
func Accelerate(b *component.Body, dx, dy, maxSpeed float64) {
	if b == nil {
		return
	}
	b.Velocity.X += dx
	b.Velocity.Y += dy
	if b.Velocity.X > maxSpeed {
		b.Velocity.X = maxSpeed
	} else if b.Velocity.X < -maxSpeed {
		b.Velocity.X = -maxSpeed
	}
}

// Probe points are truncated to whole pixels before the solidity query.

func groundContact(b *component.Body, t *terrain.Terrain) bool {
	x, y := b.Position.X, b.Position.Y
	bottom := int(y + b.Collision.Y)
	return t.IsSolid(int(x+b.Collision.X-1), bottom) || t.IsSolid(int(x+1), bottom)
}

func ceilingContact(b *component.Body, t *terrain.Terrain) bool {
	x, y := b.Position.X, b.Position.Y
	return t.IsSolid(int(x+b.Collision.X-1), int(y)) || t.IsSolid(int(x+1), int(y))
}

func leftContact(b *component.Body, t *terrain.Terrain) bool {
	x, y := b.Position.X, b.Position.Y
	return t.IsSolid(int(x), int(y+b.Collision.Y-1)) || t.IsSolid(int(x), int(y))
}

func rightContact(b *component.Body, t *terrain.Terrain) bool {
	x, y := b.Position.X, b.Position.Y
	right := int(x + b.Collision.X)
	return t.IsSolid(right, int(y+b.Collision.Y-1)) || t.IsSolid(right, int(y))
}

func overlapsX(b *component.Body, bb cp.BB) bool {
	return b.Position.X+float64(b.Width) > bb.L && b.Position.X < bb.R
}

func overlapsY(b *component.Body, bb cp.BB) bool {
	return b.Position.Y+float64(b.Height) > bb.B && b.Position.Y < bb.T
}

func snapToGround(b *component.Body, t *terrain.Terrain, band float64) {
	h := float64(b.Height)
	t.Each(func(_ int, bb cp.BB) bool {
		bottom := b.Position.Y + h
		if overlapsX(b, bb) && bottom >= bb.B && bottom <= bb.B+band {
			b.Position.Y = bb.B - h
			return false
		}
		return true
	})
}

func snapToCeiling(b *component.Body, t *terrain.Terrain) {
	t.Each(func(_ int, bb cp.BB) bool {
		if overlapsX(b, bb) && b.Position.Y <= bb.T && b.Position.Y >= bb.B {
			b.Position.Y = bb.T
			return false
		}
		return true
	})
}

func snapToLeftWall(b *component.Body, t *terrain.Terrain) {
	t.Each(func(_ int, bb cp.BB) bool {
		if overlapsY(b, bb) && b.Position.X <= bb.R && b.Position.X >= bb.L {
			b.Position.X = bb.R
			return false
		}
		return true
	})
}

func snapToRightWall(b *component.Body, t *terrain.Terrain) {
	w := float64(b.Width)
	t.Each(func(_ int, bb cp.BB) bool {
		right := b.Position.X + w
		if overlapsY(b, bb) && right >= bb.L && right <= bb.R {
			b.Position.X = bb.L - w
			return false
		}
		return true
	})
}

func applyBounds(b *component.Body, p PhysicsParams) bool {
	w, h := float64(b.Width), float64(b.Height)
	pol := b.Bounds
	pos, vel := &b.Position, &b.Velocity

	if pol.Mode == component.BoundsClamp {
		hit := false
		if pos.X < 0 {
			pos.X, vel.X, hit = 0, 0, true
		}
		if pos.X > p.ScreenWidth-w {
			pos.X, vel.X, hit = p.ScreenWidth-w, 0, true
		}
		if pos.Y < 0 {
			pos.Y, vel.Y, hit = 0, 0, true
		}
		if pos.Y > p.ScreenHeight {
			pos.Y, vel.Y, hit = p.ScreenHeight-h, 0, true
		}
		return hit
	}

	switch {
	case pos.X <= pol.Left:
		pos.X = pol.Left
		vel.X = pol.Left
	case pos.X > p.ScreenWidth-w-pol.RightMargin:
		pos.X = p.ScreenWidth - w - pol.RightSnap
		vel.X = pos.X
	case pos.Y <= 0:
		pos.Y = 0
		vel.Y = 0
	case pos.Y >= p.ScreenHeight-h-pol.BottomMargin:
		pos.Y = p.ScreenHeight - h - pol.BottomSnap
		vel.Y = 0
	default:
		return false
	}
	return true
}

// Overlaps is the strict rectangle intersection used for every entity
// interaction; touching edges do not count.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}
