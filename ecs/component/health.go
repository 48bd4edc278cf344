package component

type Health struct {
	Current int
	Max     int
}

// Damage subtracts amount, flooring at zero, and returns the new value.
func (h *Health) Damage(amount int) int {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

// Heal adds amount capped at Max and returns how much was actually restored.
func (h *Health) Heal(amount int) int {
	before := h.Current
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current - before
}

func (h *Health) Dead() bool {
	return h.Current <= 0
}

var HealthComponent = NewComponent[Health]()
