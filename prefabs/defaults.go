package prefabs

import "math"

func orDefault(v *float64, d float64) {
	if *v == 0 {
		*v = d
	}
}

func orDefaultInt(v *int, d int) {
	if *v == 0 {
		*v = d
	}
}

// Defaults fills unset fields.
func (s *ArenaSpec) Defaults() {
	orDefaultInt(&s.Humans, 100)
	orDefault(&s.SafeZone, 5)
	orDefault(&s.Spread, 50)
	orDefault(&s.CollisionRadius, 1)
	orDefaultInt(&s.TPS, 60)
	if s.SpawnScript == "" {
		s.SpawnScript = "spawn_ring.tengo"
	}
}

// Defaults fills unset fields.
func (s *GorillaSpec) Defaults() {
	if s.Name == "" {
		s.Name = "gorilla"
	}
	orDefault(&s.Health, 500)
	orDefault(&s.WalkSpeed, 6)
	orDefault(&s.RunSpeed, 12)
	orDefault(&s.MaxTurnSpeed, math.Pi)
	orDefault(&s.TurnAcceleration, 4*math.Pi)
	orDefault(&s.TurnDamping, 3*math.Pi)
	orDefault(&s.FadeDuration, 0.2)

	a := &s.Attack
	if a.Clip == "" {
		a.Clip = "AttackComboInPlace"
	}
	orDefault(&a.TimeScale, 1)
	orDefault(&a.HitFraction, 0.4)
	orDefault(&a.RecoveryFraction, 0.75)
	orDefault(&a.Radius, 5)
	orDefault(&a.ConeHalfAngle, math.Pi/6)
	orDefault(&a.MaxDamageDistance, 1)
	orDefault(&a.MaxDamage, 100)

	if s.Camera.Offset == (VecSpec{}) {
		s.Camera.Offset = VecSpec{Y: 3, Z: -6}
	}
	orDefault(&s.Camera.Height, 1.5)

	b := &s.Bindings
	if len(b.Forward) == 0 {
		b.Forward = []string{"KeyW", "ArrowUp"}
	}
	if len(b.Back) == 0 {
		b.Back = []string{"KeyS", "ArrowDown"}
	}
	if len(b.Left) == 0 {
		b.Left = []string{"KeyA", "ArrowLeft"}
	}
	if len(b.Right) == 0 {
		b.Right = []string{"KeyD", "ArrowRight"}
	}
	if len(b.Sprint) == 0 {
		b.Sprint = []string{"ShiftLeft", "ShiftRight"}
	}
	if len(b.Attack) == 0 {
		b.Attack = []string{"Space"}
	}
	if len(b.Emote) == 0 {
		b.Emote = []string{"KeyE"}
	}
}

// Defaults fills unset fields.
func (s *HumanSpec) Defaults() {
	if s.Name == "" {
		s.Name = "human"
	}
	orDefault(&s.Health, 100)
	orDefault(&s.RunSpeed, 4)
	orDefault(&s.ChaseRadius, 30)
	orDefault(&s.AttackRange, 1.8)
	orDefault(&s.StopDistance, 1.2)
	orDefault(&s.AttackDamage, 10)
	orDefault(&s.AttackCooldown, 1.5)
	orDefault(&s.HitFraction, 0.6)
	orDefault(&s.RecoilSpeed, 2)
	orDefault(&s.FadeDuration, 0.2)
	orDefault(&s.DeathFade, 2)
	orDefault(&s.Pushback.Damping, 0.9)
	orDefault(&s.Pushback.Threshold, 0.05)
	orDefault(&s.LOD.AnimDistance, 30)
	orDefault(&s.LOD.ShadowDistance, 45)
	orDefaultInt(&s.LOD.Stride, 3)
}
