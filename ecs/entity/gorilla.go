package entity

import (
	"fmt"

	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
	"github.com/rishiskhare/gorillavs100men/prefabs"
)

// NewGorilla builds the player actor at the origin from its prefab spec and
// resolved clip set.
func NewGorilla(w *ecs.World, spec *prefabs.GorillaSpec, clips []core.ClipDef, node *component.Node) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("gorilla: nil spec")
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("gorilla: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		WalkSpeed:        spec.WalkSpeed,
		RunSpeed:         spec.RunSpeed,
		MaxTurnSpeed:     spec.MaxTurnSpeed,
		TurnAcceleration: spec.TurnAcceleration,
		TurnDamping:      spec.TurnDamping,
		AttackClip:       spec.Attack.Clip,
		AttackTimeScale:  spec.Attack.TimeScale,
		HitFraction:      spec.Attack.HitFraction,
		RecoveryFraction: spec.Attack.RecoveryFraction,
		Attack:           spec.Attack.Profile(),
		PushbackOnHit:    spec.Attack.Pushback,
		Locomotion:       core.ClipIdle,
	}); err != nil {
		return 0, fmt.Errorf("gorilla: add player: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("gorilla: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{Bindings: spec.Bindings}); err != nil {
		return 0, fmt.Errorf("gorilla: add input: %w", err)
	}

	blend := core.NewBlend(clips, spec.FadeDuration)
	blend.Play(core.ClipIdle, core.PlayOptions{})
	if err := ecs.Add(w, entity, component.AnimationComponent.Kind(), blend); err != nil {
		return 0, fmt.Errorf("gorilla: add animation: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), core.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("gorilla: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.CameraRigComponent.Kind(), &component.CameraRig{
		Offset: spec.Camera.Offset.Vec3(),
		Height: spec.Camera.Height,
	}); err != nil {
		return 0, fmt.Errorf("gorilla: add camera rig: %w", err)
	}

	if node != nil {
		if err := ecs.Add(w, entity, component.RenderableComponent.Kind(), &component.Renderable{Node: node}); err != nil {
			return 0, fmt.Errorf("gorilla: add renderable: %w", err)
		}
	}

	return entity, nil
}
