package system

import (
	"log"

	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

// DeathSystem walks dead adversaries through pending, animating, fading and
// removed. Phases only move forward.
type DeathSystem struct {
	Logger *log.Logger
	Scene  Scene
	Roster *Roster
}

func NewDeathSystem(scene Scene, roster *Roster, logger *log.Logger) *DeathSystem {
	return &DeathSystem{Logger: logger, Scene: scene, Roster: roster}
}

func (s *DeathSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Time().Delta

	ecs.ForEach2(w, component.DeathComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, d *component.Death, blend *core.Blend) {
		var node *component.Node
		if r, ok := ecs.Get(w, e, component.RenderableComponent.Kind()); ok {
			node = r.Node
		}

		switch d.Phase {
		case component.DeathPending:
			if blend.Play(core.ClipDeath, core.PlayOptions{Once: true, Reset: true}) {
				d.Phase = component.DeathAnimating
			} else {
				s.beginFade(node, d)
			}
		case component.DeathAnimating:
			blend.Advance(dt)
			if blend.ConsumeFinished(core.ClipDeath) {
				s.beginFade(node, d)
			}
		case component.DeathFading:
			blend.Advance(dt)
			d.Elapsed += dt
			d.Opacity = 0
			if d.FadeDuration > 0 {
				d.Opacity = 1 - d.Elapsed/d.FadeDuration
				if d.Opacity < 0 {
					d.Opacity = 0
				}
			}
			if s.Scene != nil && node != nil {
				s.Scene.SetOpacity(node, d.Opacity)
			}
			if d.Opacity <= 0 {
				d.Phase = component.DeathRemoved
			}
		}

		if d.Phase == component.DeathRemoved {
			s.remove(w, e, node)
		}
	})
}

func (s *DeathSystem) beginFade(node *component.Node, d *component.Death) {
	if s.Scene != nil && node != nil {
		s.Scene.CloneMaterials(node)
	}
	d.Phase = component.DeathFading
	d.Elapsed = 0
	d.Opacity = 1
}

func (s *DeathSystem) remove(w *ecs.World, e ecs.Entity, node *component.Node) {
	if s.Scene != nil && node != nil {
		s.Scene.Remove(node)
		s.Scene.Dispose(node)
	}
	ecs.DestroyEntity(w, e)
	if s.Roster != nil {
		s.Roster.Remove(e)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventAdversaryRemoved, Entity: e})
}
