package component

// Pickup heals the player on contact and disappears after Lifetime seconds.
type Pickup struct {
	SpawnedAt float64
	Lifetime  float64
	Heal      int
}

// Expired reports whether the pickup has outlived its lifetime at now.
func (p *Pickup) Expired(now float64) bool {
	return now-p.SpawnedAt >= p.Lifetime
}

var PickupComponent = NewComponent[Pickup]()
