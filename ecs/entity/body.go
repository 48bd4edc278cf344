package entity

import (
	"math"

	"github.com/milk9111/wavefall/common"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
)

// never is the timestamp used for "has not happened yet", so any cooldown is
// ready on the first check.
var never = math.Inf(-1)

func boundsPolicy(spec prefabs.BoundsSpec) component.BoundsPolicy {
	mode := component.BoundsBounce
	if spec.Mode == "clamp" {
		mode = component.BoundsClamp
	}
	return component.BoundsPolicy{
		Mode:         mode,
		Left:         spec.Left,
		RightMargin:  spec.RightMargin,
		RightSnap:    spec.RightSnap,
		BottomMargin: spec.BottomMargin,
		BottomSnap:   spec.BottomSnap,
	}
}

func newBody(x, y float64, w, h int, bounds prefabs.BoundsSpec) *component.Body {
	return &component.Body{
		Position:      common.Vec(x, y),
		Collision:     common.Vec(float64(w), float64(h)),
		Width:         w,
		Height:        h,
		Gravity:       true,
		Friction:      true,
		LastDirection: 1,
		Bounds:        boundsPolicy(bounds),
	}
}
