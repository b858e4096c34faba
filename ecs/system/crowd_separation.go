package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/rishiskhare/gorillavs100men/common"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

// CrowdSeparationSystem pushes overlapping living humans apart on the ground
// plane so the crowd does not collapse onto one spot around the gorilla.
type CrowdSeparationSystem struct {
	// Radius is the collision radius of one human.
	Radius float64
	// Strength is the fraction of an overlap resolved per frame.
	Strength float64
	Rand     *rand.Rand
}

func NewCrowdSeparationSystem(radius float64, rng *rand.Rand) *CrowdSeparationSystem {
	return &CrowdSeparationSystem{
		Radius:   radius,
		Strength: 0.5,
		Rand:     rng,
	}
}

func (cs *CrowdSeparationSystem) Update(w *ecs.World) {
	if cs == nil || w == nil || cs.Radius <= 0 {
		return
	}

	type entInfo struct {
		tr  *component.Transform
		pos cp.Vector
	}

	list := make([]entInfo, 0)
	ecs.ForEach2(w, component.AdversaryComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Adversary, tr *component.Transform) {
		if a.Phase == component.PhaseDying {
			return
		}
		list = append(list, entInfo{tr: tr, pos: common.Planar(tr.Position)})
	})

	n := len(list)
	if n < 2 {
		return
	}
	minDist := cs.Radius * 2

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// vector from j -> i (push apart)
			d := list[i].pos.Sub(list[j].pos)
			dist := d.Length()
			if dist >= minDist {
				continue
			}
			if dist == 0 {
				d = cs.nudge()
				dist = d.Length()
			}
			push := d.Mult((minDist - dist) / dist * cs.Strength * 0.5)
			list[i].pos = list[i].pos.Add(push)
			list[j].pos = list[j].pos.Sub(push)
		}
	}

	for _, it := range list {
		it.tr.Position = common.FromPlanar(it.pos, it.tr.Position.Y())
	}
}

func (cs *CrowdSeparationSystem) nudge() cp.Vector {
	if cs.Rand == nil {
		return cp.Vector{X: 1e-3}
	}
	return cp.Vector{X: (cs.Rand.Float64() - 0.5) * 1e-3, Y: (cs.Rand.Float64() - 0.5) * 1e-3}
}
