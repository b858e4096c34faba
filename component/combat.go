package component

import "github.com/go-gl/mathgl/mgl64"

// AttackProfile is the reach and falloff of a melee swing.
type AttackProfile struct {
	Radius            float64 `yaml:"radius"`
	ConeHalfAngle     float64 `yaml:"cone_half_angle"`
	MaxDamageDistance float64 `yaml:"max_damage_distance"`
	MaxDamage         float64 `yaml:"max_damage"`
}

// Hit is one damage application between two actors.
type Hit struct {
	Amount float64
	// Source is the attacker position; recoil and pushback point away from it.
	Source mgl64.Vec3
	// Impulse is the initial pushback speed requested on the target; 0 requests none.
	Impulse float64
}
