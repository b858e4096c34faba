package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
	"github.com/rishiskhare/gorillavs100men/prefabs"
)

// NewHuman builds one adversary. Attack clips are every Attack*, Punch_* and
// Kick_* clip in the resolved set.
func NewHuman(w *ecs.World, spec *prefabs.HumanSpec, clips []core.ClipDef, pos mgl64.Vec3, yaw float64, node, bar *component.Node) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("human: nil spec")
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.AdversaryTagComponent.Kind(), &component.AdversaryTag{}); err != nil {
		return 0, fmt.Errorf("human: add adversary tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.AdversaryComponent.Kind(), &component.Adversary{
		RunSpeed:       spec.RunSpeed,
		ChaseRadius:    spec.ChaseRadius,
		AttackRange:    spec.AttackRange,
		StopDistance:   spec.StopDistance,
		ChaseJitter:    spec.ChaseJitter,
		AttackDamage:   spec.AttackDamage,
		AttackCooldown: spec.AttackCooldown,
		HitFraction:    spec.HitFraction,
		RecoilSpeed:    spec.RecoilSpeed,
		DeathFade:      spec.DeathFade,
		AttackClips:    core.AttackClipNames(clips),
	}); err != nil {
		return 0, fmt.Errorf("human: add adversary: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos, Yaw: yaw}); err != nil {
		return 0, fmt.Errorf("human: add transform: %w", err)
	}

	blend := core.NewBlend(clips, spec.FadeDuration)
	blend.Play(core.ClipIdle, core.PlayOptions{})
	if err := ecs.Add(w, entity, component.AnimationComponent.Kind(), blend); err != nil {
		return 0, fmt.Errorf("human: add animation: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), core.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("human: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.PushbackComponent.Kind(), &component.Pushback{
		Damping:   spec.Pushback.Damping,
		Threshold: spec.Pushback.Threshold,
	}); err != nil {
		return 0, fmt.Errorf("human: add pushback: %w", err)
	}

	if err := ecs.Add(w, entity, component.LODComponent.Kind(), &component.LOD{
		AnimDistance:   spec.LOD.AnimDistance,
		ShadowDistance: spec.LOD.ShadowDistance,
		Stride:         spec.LOD.Stride,
	}); err != nil {
		return 0, fmt.Errorf("human: add lod: %w", err)
	}

	if node != nil {
		if err := ecs.Add(w, entity, component.RenderableComponent.Kind(), &component.Renderable{Node: node}); err != nil {
			return 0, fmt.Errorf("human: add renderable: %w", err)
		}
	}
	if bar != nil {
		if err := ecs.Add(w, entity, component.HealthBarComponent.Kind(), &component.HealthBar{Node: bar}); err != nil {
			return 0, fmt.Errorf("human: add health bar: %w", err)
		}
	}

	return entity, nil
}
