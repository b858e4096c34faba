package system

import (
	"log"
	"math"

	"github.com/rishiskhare/gorillavs100men/common"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

const (
	slotPlayerHit     = "player_hit"
	slotPlayerRecover = "player_recover"
)

// PlayerControllerSystem turns input into gorilla movement, attacks and
// emotes, in that order, then advances the gorilla's blend.
type PlayerControllerSystem struct {
	Logger *log.Logger
	// OnHit applies one resolved strike to an adversary.
	OnHit func(w *ecs.World, target ecs.Entity, hit core.Hit)

	clips clipWarner
}

func NewPlayerControllerSystem(logger *log.Logger, onHit func(w *ecs.World, target ecs.Entity, hit core.Hit)) *PlayerControllerSystem {
	return &PlayerControllerSystem{Logger: logger, OnHit: onHit}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	blend, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		in = &component.Input{}
	}
	dt := w.Time().Delta

	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead() {
		s.defeat(w, e, p, blend)
		blend.Advance(dt)
		return
	}

	s.transitions(w, e, p, in, blend)
	dir := s.move(p, in, tr, dt)
	if !p.Attacking && !p.Emoting {
		s.playLocomotion(p, blend, dir, in.Sprint)
	}
	blend.Advance(dt)
}

func (s *PlayerControllerSystem) transitions(w *ecs.World, e ecs.Entity, p *component.Player, in *component.Input, blend *core.Blend) {
	attackEdge, emoteEdge := in.AttackPressed, in.EmotePressed

	if p.Emoting {
		switch {
		case in.Moving() || attackEdge || emoteEdge:
			s.endEmote(p, blend)
			// the key that broke the emote does nothing else this frame
			attackEdge, emoteEdge = false, false
		case blend.ConsumeFinished(core.ClipEmote):
			s.endEmote(p, blend)
		}
	}

	if p.Attacking && blend.ConsumeFinished(p.AttackClip) {
		s.endAttack(w, e, p.AttackGen)
	}

	switch {
	case attackEdge && !p.Attacking && !p.Emoting:
		s.startAttack(w, e, p, blend)
	case emoteEdge && !p.Attacking && !p.Emoting && !in.Moving():
		s.startEmote(p, blend)
	}
}

// move integrates turning and locomotion and returns the locomotion sign.
func (s *PlayerControllerSystem) move(p *component.Player, in *component.Input, tr *component.Transform, dt float64) float64 {
	target := 0.0
	if in.Left {
		target = p.MaxTurnSpeed
	}
	if in.Right {
		target = -p.MaxTurnSpeed
	}
	rate := p.TurnDamping
	if in.Left || in.Right {
		rate = p.TurnAcceleration
	}
	p.AngularVelocity = common.Lerp(p.AngularVelocity, target, 1-math.Exp(-rate*dt))
	tr.Yaw += p.AngularVelocity * dt

	dir := 0.0
	if in.Forward {
		dir = 1
	}
	if in.Back {
		dir = -1
	}
	if dir == 0 || dt <= 0 {
		return dir
	}
	speed := p.WalkSpeed
	if in.Sprint {
		speed = p.RunSpeed
	}
	step := tr.Forward().Mul(dir * speed * dt)
	tr.Position = tr.Position.Add(step)
	if step.Len() > 0 {
		p.HasMoved = true
	}
	return dir
}

func (s *PlayerControllerSystem) playLocomotion(p *component.Player, blend *core.Blend, dir float64, sprint bool) {
	state, scale := core.ClipIdle, 1.0
	if dir != 0 {
		state = core.ClipWalk
		if sprint {
			state = core.ClipRun
		}
		if dir < 0 {
			scale = -1
		}
	}
	p.Locomotion = state
	s.play(blend, state, core.PlayOptions{TimeScale: scale})
}

func (s *PlayerControllerSystem) play(blend *core.Blend, name string, opts core.PlayOptions) {
	if blend.Play(name, opts) {
		return
	}
	s.clips.missing(s.Logger, "player", name)
	blend.Play(core.ClipIdle, core.PlayOptions{})
}

func (s *PlayerControllerSystem) startAttack(w *ecs.World, e ecs.Entity, p *component.Player, blend *core.Blend) {
	dur, ok := blend.Duration(p.AttackClip)
	if !ok {
		s.clips.missing(s.Logger, "player", p.AttackClip)
		return
	}
	scale := p.AttackTimeScale
	if scale <= 0 {
		scale = 1
	}
	p.Attacking = true
	p.AttackGen++
	gen := p.AttackGen
	blend.Play(p.AttackClip, core.PlayOptions{Once: true, TimeScale: scale, Reset: true})

	effective := dur / scale
	d := w.Deferred()
	d.Schedule(e, slotPlayerHit, effective*p.HitFraction, func() { s.resolveHit(w, e, gen) })
	d.Schedule(e, slotPlayerRecover, effective*p.RecoveryFraction, func() { s.endAttack(w, e, gen) })
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerAttack, Entity: e})
}

// endAttack is reached from the finish notification or the recovery cutoff,
// whichever comes first; the other becomes a no-op.
func (s *PlayerControllerSystem) endAttack(w *ecs.World, e ecs.Entity, gen uint64) {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || !p.Attacking || p.AttackGen != gen {
		return
	}
	p.Attacking = false
	w.Deferred().Cancel(e, slotPlayerRecover)
	w.Deferred().Cancel(e, slotPlayerHit)
}

func (s *PlayerControllerSystem) resolveHit(w *ecs.World, e ecs.Entity, gen uint64) {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || !p.Attacking || p.AttackGen != gen || p.Defeated {
		return
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead() {
		return
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || s.OnHit == nil {
		return
	}
	origin, forward := tr.Position, tr.Forward()

	ecs.ForEach2(w, component.AdversaryComponent.Kind(), component.TransformComponent.Kind(), func(target ecs.Entity, a *component.Adversary, at *component.Transform) {
		if a.Phase == component.PhaseDying {
			return
		}
		dmg := core.ResolveDamage(origin, forward, at.Position, p.Attack)
		if dmg <= 0 {
			return
		}
		s.OnHit(w, target, core.Hit{Amount: dmg, Source: origin, Impulse: p.PushbackOnHit})
	})
}

func (s *PlayerControllerSystem) startEmote(p *component.Player, blend *core.Blend) {
	if !blend.Has(core.ClipEmote) {
		s.clips.missing(s.Logger, "player", core.ClipEmote)
		return
	}
	p.EmoteReturn = p.Locomotion
	p.Emoting = true
	blend.Play(core.ClipEmote, core.PlayOptions{Once: true, Reset: true})
}

func (s *PlayerControllerSystem) endEmote(p *component.Player, blend *core.Blend) {
	p.Emoting = false
	back := p.EmoteReturn
	if back == "" || back == core.ClipEmote {
		back = core.ClipIdle
	}
	p.EmoteReturn = ""
	s.play(blend, back, core.PlayOptions{})
}

func (s *PlayerControllerSystem) defeat(w *ecs.World, e ecs.Entity, p *component.Player, blend *core.Blend) {
	if p.Defeated {
		return
	}
	p.Defeated = true
	p.Attacking = false
	p.Emoting = false
	p.AngularVelocity = 0
	w.Deferred().CancelEntity(e)
	if !blend.Play(core.ClipDeath, core.PlayOptions{Once: true, Reset: true}) {
		s.play(blend, core.ClipIdle, core.PlayOptions{})
	}
	loggerOrDefault(s.Logger).Printf("player: defeated")
}

// DamagePlayer applies amount to the gorilla's health. The health model owns
// clamping, the HUD push and the one-shot defeat callback.
func DamagePlayer(w *ecs.World, amount float64) bool {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || !h.Damage(amount) {
		return false
	}
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Entity: e, Amount: amount})
	if h.Dead() {
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerDefeated, Entity: e})
	}
	return true
}
