package component

type DeathPhase int

const (
	DeathPending DeathPhase = iota
	DeathAnimating
	DeathFading
	DeathRemoved
)

func (p DeathPhase) String() string {
	switch p {
	case DeathPending:
		return "pending"
	case DeathAnimating:
		return "animating"
	case DeathFading:
		return "fading"
	case DeathRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Death drives an actor from its killing blow to removal.
type Death struct {
	Phase        DeathPhase
	FadeDuration float64
	Elapsed      float64
	Opacity      float64
}

var DeathComponent = NewComponent[Death]()
