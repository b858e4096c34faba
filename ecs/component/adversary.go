package component

import "github.com/jakecoffman/cp"

// AdversaryPhase is the AI state of a human. Pushback is tracked separately.
type AdversaryPhase int

const (
	PhaseIdle AdversaryPhase = iota
	PhaseChase
	PhaseAttacking
	PhaseHitReacting
	PhaseDying
)

func (p AdversaryPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseChase:
		return "chase"
	case PhaseAttacking:
		return "attacking"
	case PhaseHitReacting:
		return "hit_reacting"
	case PhaseDying:
		return "dying"
	default:
		return "unknown"
	}
}

type Adversary struct {
	RunSpeed       float64
	ChaseRadius    float64
	AttackRange    float64
	StopDistance   float64
	ChaseJitter    float64
	AttackDamage   float64
	AttackCooldown float64
	HitFraction    float64
	RecoilSpeed    float64
	DeathFade      float64

	Phase         AdversaryPhase
	Cooldown      float64
	AttackClips   []string
	CurrentAttack string
	AttackGen     uint64
	Recoil        cp.Vector
}

var AdversaryComponent = NewComponent[Adversary]()
