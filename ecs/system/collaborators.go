package system

import (
	"github.com/go-gl/mathgl/mgl64"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

// KeyState is the host's view of the keyboard, keyed by DOM-style key codes
// ("KeyW", "ArrowUp", "ShiftLeft", "Space").
type KeyState map[string]bool

// Any reports whether any of codes is held.
func (k KeyState) Any(codes []string) bool {
	for _, c := range codes {
		if k[c] {
			return true
		}
	}
	return false
}

// Scene owns the render graph. The core only adds, removes and restyles nodes.
type Scene interface {
	Add(n *component.Node)
	Remove(n *component.Node)
	Dispose(n *component.Node)
	// CloneMaterials gives the node private materials so its opacity can change.
	CloneMaterials(n *component.Node)
	SetOpacity(n *component.Node, opacity float64)
	SetCastShadow(n *component.Node, cast bool)
	UpdateHealthBar(n *component.Node, fraction float64, tier core.HealthTier)
	CameraPosition() mgl64.Vec3
	SetCamera(position, target mgl64.Vec3)
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// HUD displays player health, the live adversary count and the match result.
type HUD interface {
	PlayerHealth(current, max float64)
	AdversaryCount(n int)
	MatchOver(o Outcome)
}
