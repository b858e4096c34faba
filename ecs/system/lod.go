package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

// throttle updates an adversary's LOD state from its camera distance and
// returns how much animation time to advance this frame. Shadow casting is
// only touched when the shadow threshold is crossed.
func (s *AdversarySystem) throttle(w *ecs.World, e ecs.Entity, tr *component.Transform, cam mgl64.Vec3, dt float64) float64 {
	lod, ok := ecs.Get(w, e, component.LODComponent.Kind())
	if !ok {
		return dt
	}
	dist := tr.Position.Sub(cam).Len()

	far := lod.AnimDistance > 0 && dist > lod.AnimDistance
	if far != lod.Throttled {
		lod.Throttled = far
		lod.Counter = 0
	}

	shadowsOff := lod.ShadowDistance > 0 && dist > lod.ShadowDistance
	if shadowsOff != lod.ShadowsOff {
		lod.ShadowsOff = shadowsOff
		if r, ok := ecs.Get(w, e, component.RenderableComponent.Kind()); ok && s.Scene != nil {
			s.Scene.SetCastShadow(r.Node, !shadowsOff)
		}
	}

	return advanceLOD(lod, dt)
}

// advanceLOD accumulates dt and releases it every frame when near, or on one
// of every Stride frames when throttled.
func advanceLOD(lod *component.LOD, dt float64) float64 {
	lod.Pending += dt
	if lod.Throttled {
		stride := lod.Stride
		if stride < 1 {
			stride = 1
		}
		skip := lod.Counter%stride != 0
		lod.Counter++
		if skip {
			return 0
		}
	}
	step := lod.Pending
	lod.Pending = 0
	return step
}
