package component

import "github.com/go-gl/mathgl/mgl64"

// CameraRig follows the player from a local offset rotated by its heading.
type CameraRig struct {
	Offset mgl64.Vec3
	Height float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Placed   bool
}

var CameraRigComponent = NewComponent[CameraRig]()
