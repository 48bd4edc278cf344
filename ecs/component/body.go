package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavefall/common"
)

type BoundsMode int

const (
	// BoundsBounce resolves at most one screen edge per tick, pushing the body
	// back inside with the margins of its policy.
	BoundsBounce BoundsMode = iota
	// BoundsClamp clamps both axes independently and zeroes the velocity
	// component that hit the edge.
	BoundsClamp
)

// BoundsPolicy describes how a body is kept on screen.
type BoundsPolicy struct {
	Mode BoundsMode
	// Left is both the left edge threshold and the bounce-back velocity.
	Left float64
	// RightMargin triggers the right edge; RightSnap is where the body lands.
	RightMargin float64
	RightSnap   float64
	// BottomMargin triggers the bottom edge; BottomSnap is where the body lands.
	BottomMargin float64
	BottomSnap   float64
}

// Body is the state shared by everything the physics step moves.
type Body struct {
	Position  common.Vector2D
	Velocity  common.Vector2D
	Collision common.Vector2D
	Width     int
	Height    int

	OnGround bool
	Gravity  bool
	Friction bool
	Moving   bool
	// LastDirection is -1 when facing left and 1 when facing right.
	LastDirection int

	Bounds BoundsPolicy
}

// Rect returns the body's bounding box truncated to whole pixels. cp.BB is
// used in screen space: B is the top edge and T the bottom edge.
func (b *Body) Rect() cp.BB {
	x := float64(int(b.Position.X))
	y := float64(int(b.Position.Y))
	return cp.BB{L: x, B: y, R: x + float64(b.Width), T: y + float64(b.Height)}
}

// FacingLeft reports the facing used by renderers.
func (b *Body) FacingLeft() bool {
	return b.LastDirection < 0
}

var BodyComponent = NewComponent[Body]()
