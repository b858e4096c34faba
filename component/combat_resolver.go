package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rishiskhare/gorillavs100men/common"
)

// ResolveDamage computes melee damage on the ground plane. A target within
// MaxDamageDistance and inside the forward cone takes MaxDamage; otherwise
// damage falls off linearly to zero at Radius.
func ResolveDamage(attackerPos, attackerForward, targetPos mgl64.Vec3, p AttackProfile) float64 {
	if p.Radius <= 0 || p.MaxDamage <= 0 {
		return 0
	}
	to := common.Planar(targetPos).Sub(common.Planar(attackerPos))
	d := to.Length()
	if d > p.Radius {
		return 0
	}
	angle := common.AngleBetween(common.Planar(attackerForward), to)
	if d <= p.MaxDamageDistance && angle <= p.ConeHalfAngle {
		return p.MaxDamage
	}
	return p.MaxDamage * math.Max(0, 1-d/p.Radius)
}
