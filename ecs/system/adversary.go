package system

import (
	"log"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/rishiskhare/gorillavs100men/common"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

const slotAdversaryStrike = "adversary_strike"

// AdversarySystem runs every living human once per frame in roster order:
// LOD, pushback, the AI state machine, then the blend advance.
type AdversarySystem struct {
	Logger *log.Logger
	Scene  Scene
	Roster *Roster
	Rand   *rand.Rand

	clips clipWarner
}

func NewAdversarySystem(scene Scene, roster *Roster, rng *rand.Rand, logger *log.Logger) *AdversarySystem {
	return &AdversarySystem{Logger: logger, Scene: scene, Roster: roster, Rand: rng}
}

type playerView struct {
	tr     *component.Transform
	moved  bool
	active bool
}

func (s *AdversarySystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Roster == nil {
		return
	}
	dt := w.Time().Delta
	pv := s.player(w)

	cam := mgl64.Vec3{}
	if s.Scene != nil {
		cam = s.Scene.CameraPosition()
	} else if pv.tr != nil {
		cam = pv.tr.Position
	}

	for _, e := range s.Roster.Entities() {
		a, ok := ecs.Get(w, e, component.AdversaryComponent.Kind())
		if !ok || a.Phase == component.PhaseDying {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		blend, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
		if !ok {
			continue
		}

		step := s.throttle(w, e, tr, cam, dt)
		if pb, ok := ecs.Get(w, e, component.PushbackComponent.Kind()); ok {
			integratePushback(pb, tr, dt)
		}
		s.think(w, e, a, tr, blend, pv, dt)
		if step > 0 {
			blend.Advance(step)
		}
	}
}

func (s *AdversarySystem) player(w *ecs.World) playerView {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return playerView{}
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return playerView{}
	}
	pv := playerView{tr: tr, active: true}
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		pv.moved = p.HasMoved
		pv.active = !p.Defeated
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead() {
		pv.active = false
	}
	return pv
}

func (s *AdversarySystem) think(w *ecs.World, e ecs.Entity, a *component.Adversary, tr *component.Transform, blend *core.Blend, pv playerView, dt float64) {
	if a.Cooldown > 0 {
		a.Cooldown = math.Max(0, a.Cooldown-dt)
	}

	switch a.Phase {
	case component.PhaseHitReacting:
		if blend.ConsumeFinished(core.ClipHitReact) {
			a.Phase = component.PhaseIdle
			return
		}
		tr.Position = tr.Position.Add(common.FromPlanar(a.Recoil.Mult(a.RecoilSpeed*dt), 0))
		return
	case component.PhaseAttacking:
		if blend.ConsumeFinished(a.CurrentAttack) {
			s.finishAttack(w, e, a)
		}
		return
	}

	if !pv.active {
		a.Phase = component.PhaseIdle
		s.play(blend, core.ClipIdle)
		return
	}

	tr.Yaw = common.YawToward(tr.Position, pv.tr.Position)
	dist := common.PlanarDistance(tr.Position, pv.tr.Position)

	if dist <= a.AttackRange && a.Cooldown <= 0 && len(a.AttackClips) > 0 {
		s.startAttack(w, e, a, blend)
		return
	}
	if dist < a.ChaseRadius && pv.moved && s.chase(a, tr, pv.tr.Position, dist, dt) {
		a.Phase = component.PhaseChase
		s.play(blend, core.ClipRun)
		return
	}
	a.Phase = component.PhaseIdle
	s.play(blend, core.ClipIdle)
}

const chaseEpsilon = 1e-6

// chase steps toward target and reports whether the adversary moved. It
// stops short at StopDistance.
func (s *AdversarySystem) chase(a *component.Adversary, tr *component.Transform, target mgl64.Vec3, dist, dt float64) bool {
	step := a.RunSpeed * dt
	if room := dist - a.StopDistance; step > room {
		step = room
	}
	if step <= chaseEpsilon {
		return false
	}
	dir, ok := common.Direction(common.Planar(tr.Position), common.Planar(target))
	if !ok {
		return false
	}
	if a.ChaseJitter > 0 && s.Rand != nil {
		dir = dir.Add(cp.Vector{
			X: (s.Rand.Float64() - 0.5) * a.ChaseJitter,
			Y: (s.Rand.Float64() - 0.5) * a.ChaseJitter,
		}).Normalize()
	}
	tr.Position = tr.Position.Add(common.FromPlanar(dir.Mult(step), 0))
	return true
}

func (s *AdversarySystem) play(blend *core.Blend, name string) {
	if blend.Play(name, core.PlayOptions{}) {
		return
	}
	s.clips.missing(s.Logger, "human", name)
	blend.Play(core.ClipIdle, core.PlayOptions{})
}

func (s *AdversarySystem) startAttack(w *ecs.World, e ecs.Entity, a *component.Adversary, blend *core.Blend) {
	i := 0
	if s.Rand != nil {
		i = s.Rand.Intn(len(a.AttackClips))
	}
	clip := a.AttackClips[i]
	dur, ok := blend.Duration(clip)
	if !ok {
		s.clips.missing(s.Logger, "human", clip)
		return
	}
	a.Phase = component.PhaseAttacking
	a.CurrentAttack = clip
	a.AttackGen++
	gen := a.AttackGen
	blend.Play(clip, core.PlayOptions{Once: true, Reset: true})
	w.Deferred().Schedule(e, slotAdversaryStrike, dur*a.HitFraction, func() { s.strike(w, e, gen, clip) })
}

// strike lands an attack on the gorilla if the swing that scheduled it is
// still the one in progress.
func (s *AdversarySystem) strike(w *ecs.World, e ecs.Entity, gen uint64, clip string) {
	a, ok := ecs.Get(w, e, component.AdversaryComponent.Kind())
	if !ok || a.Phase != component.PhaseAttacking || a.AttackGen != gen || a.CurrentAttack != clip {
		return
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead() {
		return
	}
	DamagePlayer(w, a.AttackDamage)
}

func (s *AdversarySystem) finishAttack(w *ecs.World, e ecs.Entity, a *component.Adversary) {
	a.Phase = component.PhaseIdle
	a.CurrentAttack = ""
	a.Cooldown = a.AttackCooldown
	w.Deferred().Cancel(e, slotAdversaryStrike)
}

func (s *AdversarySystem) cancelAttack(w *ecs.World, e ecs.Entity, a *component.Adversary) {
	a.AttackGen++
	a.CurrentAttack = ""
	w.Deferred().Cancel(e, slotAdversaryStrike)
}

// Damage applies a player strike. Lethal damage starts the death lifecycle;
// anything less staggers the target unless it is already staggering.
func (s *AdversarySystem) Damage(w *ecs.World, e ecs.Entity, hit core.Hit) {
	if s == nil || w == nil || hit.Amount <= 0 {
		return
	}
	a, ok := ecs.Get(w, e, component.AdversaryComponent.Kind())
	if !ok || a.Phase == component.PhaseDying {
		return
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || !h.Damage(hit.Amount) {
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventAdversaryHit, Entity: e, Amount: hit.Amount})
	if h.Dead() {
		s.Kill(w, e)
		return
	}
	s.updateBar(w, e, h)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	away := awayFrom(hit.Source, tr)
	if hit.Impulse > 0 {
		if pb, ok := ecs.Get(w, e, component.PushbackComponent.Kind()); ok {
			pb.Velocity = away.Mult(hit.Impulse)
			pb.Active = true
		}
	}
	if a.Phase != component.PhaseHitReacting {
		s.hitReact(w, e, a, away)
	}
}

func (s *AdversarySystem) hitReact(w *ecs.World, e ecs.Entity, a *component.Adversary, away cp.Vector) {
	blend, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || !blend.Has(core.ClipHitReact) {
		s.clips.missing(s.Logger, "human", core.ClipHitReact)
		return
	}
	s.cancelAttack(w, e, a)
	a.Cooldown = a.AttackCooldown
	a.Recoil = away
	a.Phase = component.PhaseHitReacting
	blend.Play(core.ClipHitReact, core.PlayOptions{Once: true, Reset: true})
}

// Kill moves an adversary into the death lifecycle. Repeated calls are no-ops.
func (s *AdversarySystem) Kill(w *ecs.World, e ecs.Entity) {
	if s == nil || w == nil {
		return
	}
	a, ok := ecs.Get(w, e, component.AdversaryComponent.Kind())
	if !ok || a.Phase == component.PhaseDying {
		return
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !h.Dead() {
		h.Apply(-h.Current)
	}
	s.cancelAttack(w, e, a)
	w.Deferred().CancelEntity(e)
	a.Phase = component.PhaseDying

	if pb, ok := ecs.Get(w, e, component.PushbackComponent.Kind()); ok {
		pb.Velocity = cp.Vector{}
		pb.Active = false
	}
	if bar, ok := ecs.Get(w, e, component.HealthBarComponent.Kind()); ok {
		if s.Scene != nil {
			s.Scene.Remove(bar.Node)
			s.Scene.Dispose(bar.Node)
		}
		ecs.Remove(w, e, component.HealthBarComponent.Kind())
	}
	if blend, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		blend.Stop()
	}
	death := &component.Death{Phase: component.DeathPending, FadeDuration: a.DeathFade, Opacity: 1}
	if err := ecs.Add(w, e, component.DeathComponent.Kind(), death); err != nil {
		loggerOrDefault(s.Logger).Printf("human %s: start death: %v", e, err)
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventAdversaryKilled, Entity: e})
}

func (s *AdversarySystem) updateBar(w *ecs.World, e ecs.Entity, h *core.Health) {
	if s.Scene == nil {
		return
	}
	bar, ok := ecs.Get(w, e, component.HealthBarComponent.Kind())
	if !ok {
		return
	}
	f := h.Fraction()
	s.Scene.UpdateHealthBar(bar.Node, f, core.TierFor(f))
}

// awayFrom is the ground-plane unit vector from source to the actor. When
// they coincide the actor recoils backwards along its heading.
func awayFrom(source mgl64.Vec3, tr *component.Transform) cp.Vector {
	if dir, ok := common.Direction(common.Planar(source), common.Planar(tr.Position)); ok {
		return dir
	}
	return common.Planar(tr.Forward()).Neg()
}
