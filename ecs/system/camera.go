package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

type CameraSystem struct {
	Scene Scene
}

func NewCameraSystem(scene Scene) *CameraSystem {
	return &CameraSystem{Scene: scene}
}

// Update keeps the camera behind the gorilla. The camera sits along the rig
// offset rotated by the gorilla's heading, at whatever distance from the
// target it currently has, so zooming in the host survives the follow.
func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	rig, ok := ecs.Get(w, e, component.CameraRigComponent.Kind())
	if !ok {
		return
	}

	offset := rig.Offset
	dist := offset.Len()
	if dist < 1e-9 {
		return
	}
	target := tr.Position.Add(mgl64.Vec3{0, rig.Height, 0})
	dir := tr.Orientation().Rotate(offset.Mul(1 / dist))

	if rig.Placed {
		current := rig.Position
		if cs.Scene != nil {
			current = cs.Scene.CameraPosition()
		}
		if d := current.Sub(rig.Target).Len(); d > 1e-6 {
			dist = d
		}
	}

	rig.Target = target
	rig.Position = target.Add(dir.Mul(dist))
	rig.Placed = true
	if cs.Scene != nil {
		cs.Scene.SetCamera(rig.Position, rig.Target)
	}
}
