package component

import core "github.com/rishiskhare/gorillavs100men/component"

// Player holds the gorilla's tuning and its busy flags.
type Player struct {
	WalkSpeed        float64
	RunSpeed         float64
	MaxTurnSpeed     float64
	TurnAcceleration float64
	TurnDamping      float64

	AttackClip       string
	AttackTimeScale  float64
	HitFraction      float64
	RecoveryFraction float64
	Attack           core.AttackProfile
	// PushbackOnHit is the impulse speed given to struck adversaries; 0 disables pushback.
	PushbackOnHit float64

	AngularVelocity float64
	Attacking       bool
	Emoting         bool
	Defeated        bool
	HasMoved        bool
	AttackGen       uint64
	// Locomotion is the last locomotion state played; emotes return to it.
	Locomotion  string
	EmoteReturn string
}

var PlayerComponent = NewComponent[Player]()
