package component

// Health is a clamped hit-point pool with a latched death transition.
type Health struct {
	Max     float64
	Current float64

	// OnChange receives every applied change.
	OnChange func(current, max float64)
	// OnDeath fires once, the first time Current reaches 0.
	OnDeath func()

	deathFired bool
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// Dead reports whether health has reached zero.
func (h *Health) Dead() bool {
	return h != nil && h.Current <= 0
}

// Apply adds delta (negative for damage) and clamps to [0, Max]. Damage
// against a dead pool is ignored. It returns the change actually applied.
func (h *Health) Apply(delta float64) float64 {
	if h == nil || delta == 0 {
		return 0
	}
	if h.Dead() && delta < 0 {
		return 0
	}
	prev := h.Current
	h.Current = clampHP(prev+delta, h.Max)
	applied := h.Current - prev
	if applied != 0 && h.OnChange != nil {
		h.OnChange(h.Current, h.Max)
	}
	if h.Current <= 0 && !h.deathFired {
		h.deathFired = true
		if h.OnDeath != nil {
			h.OnDeath()
		}
	}
	return applied
}

// Damage applies a positive amount of damage. Returns true if anything changed.
func (h *Health) Damage(amount float64) bool {
	if amount <= 0 {
		return false
	}
	return h.Apply(-amount) != 0
}

// Heal restores health up to Max. The dead stay dead.
func (h *Health) Heal(amount float64) {
	if h == nil || h.Dead() || amount <= 0 {
		return
	}
	h.Apply(amount)
}

// Fraction returns Current/Max in [0, 1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// SetMax sets the maximum health value and clamps Current if needed.
func (h *Health) SetMax(v float64) {
	if h == nil {
		return
	}
	if v <= 0 {
		v = 1
	}
	h.Max = v
	if h.Current > h.Max {
		h.Current = h.Max
		if h.OnChange != nil {
			h.OnChange(h.Current, h.Max)
		}
	}
}

func clampHP(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
