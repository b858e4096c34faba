package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rishiskhare/gorillavs100men/common"
)

// Transform places an actor in the arena. Actors only turn about the up axis.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
}

func (t *Transform) Orientation() mgl64.Quat {
	return common.YawQuat(t.Yaw)
}

func (t *Transform) Forward() mgl64.Vec3 {
	return common.Forward(t.Yaw)
}

var TransformComponent = NewComponent[Transform]()
