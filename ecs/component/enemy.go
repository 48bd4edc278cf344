package component

import (
	"fmt"
	"strings"
)

type EnemyKind int

const (
	EnemySkirmisher EnemyKind = iota
	EnemyBulwark
)

// EnemyKinds lists every kind in persisted order.
var EnemyKinds = []EnemyKind{EnemySkirmisher, EnemyBulwark}

func (k EnemyKind) String() string {
	switch k {
	case EnemySkirmisher:
		return "skirmisher"
	case EnemyBulwark:
		return "bulwark"
	default:
		return fmt.Sprintf("enemy(%d)", int(k))
	}
}

func (k EnemyKind) Valid() bool {
	return k == EnemySkirmisher || k == EnemyBulwark
}

func ParseEnemyKind(s string) (EnemyKind, error) {
	for _, k := range EnemyKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", s)
}

type Enemy struct {
	Kind     EnemyKind
	Speed    float64
	Deadzone float64
}

var EnemyComponent = NewComponent[Enemy]()

// ContactDamage hurts the player on overlap at most once per Cooldown.
type ContactDamage struct {
	Damage       int
	Cooldown     float64
	LastDamageAt float64
}

// Ready reports whether the cooldown has elapsed at now.
func (c *ContactDamage) Ready(now float64) bool {
	return now-c.LastDamageAt >= c.Cooldown
}

var ContactDamageComponent = NewComponent[ContactDamage]()

// Defeated marks an enemy for removal after the enemy pass.
type Defeated struct{}

var DefeatedComponent = NewComponent[Defeated]()
