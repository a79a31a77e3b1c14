package entity

// PowerKind tags the effect a power-up grants.
type PowerKind int

const (
	PowerInvincible PowerKind = iota // obstacles pass through the player
	PowerSlowMotion                  // obstacles fall at half speed
	PowerShrink                      // player hitbox halves

	powerKindCount
)

// PowerKinds lists every kind in spawn order.
var PowerKinds = [powerKindCount]PowerKind{PowerInvincible, PowerSlowMotion, PowerShrink}

func (k PowerKind) String() string {
	switch k {
	case PowerInvincible:
		return "invincible"
	case PowerSlowMotion:
		return "slow"
	case PowerShrink:
		return "shrink"
	}
	return "unknown"
}

// PowerUp is a timed pickup. Elapsed counts seconds on the field; the
// pickup disappears once it reaches Lifetime. Duration is how long the
// granted effect lasts.
type PowerUp struct {
	Rect     Rect
	Kind     PowerKind
	Active   bool
	Elapsed  float64
	Lifetime float64
	Duration float64
}

// Update ages the pickup and deactivates it when its time on the field
// is up.
func (p *PowerUp) Update(dt float64) {
	if !p.Active {
		return
	}
	p.Elapsed += dt
	if p.Elapsed >= p.Lifetime {
		p.Active = false
	}
}

// Remaining is the fraction of on-field time left, in [0, 1].
func (p *PowerUp) Remaining() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	r := 1 - p.Elapsed/p.Lifetime
	if r < 0 {
		return 0
	}
	return r
}
