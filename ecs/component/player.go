package component

// PlayerControl holds the movement tuning applied from input.
type PlayerControl struct {
	Acceleration float64
	JumpImpulse  float64
	MaxSpeed     float64
	// Jumping is set by a jump and cleared once the jump key is released, so a
	// held key does not jump again on landing.
	Jumping bool
}

var PlayerControlComponent = NewComponent[PlayerControl]()

// Melee is the player's close range attack. Active is true only on the tick an
// attack was started.
type Melee struct {
	Damage       int
	Range        float64
	Cooldown     float64
	LastAttackAt float64
	Active       bool
}

var MeleeComponent = NewComponent[Melee]()
