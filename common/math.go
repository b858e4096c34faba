package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Up is the world up axis; actors turn about it.
var Up = mgl64.Vec3{0, 1, 0}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Planar projects a world position onto the ground plane (x, z).
func Planar(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Z()}
}

// FromPlanar lifts a ground-plane vector back to world space at height y.
func FromPlanar(p cp.Vector, y float64) mgl64.Vec3 {
	return mgl64.Vec3{p.X, y, p.Y}
}

// YawQuat is the orientation for a heading about the up axis.
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}

// Forward is the unit heading for yaw; yaw 0 faces +z.
func Forward(yaw float64) mgl64.Vec3 {
	return YawQuat(yaw).Rotate(mgl64.Vec3{0, 0, 1})
}

// YawToward returns the heading that faces target from origin on the ground plane.
func YawToward(origin, target mgl64.Vec3) float64 {
	d := Planar(target).Sub(Planar(origin))
	return math.Atan2(d.X, d.Y)
}

// PlanarDistance is the horizontal distance between two positions.
func PlanarDistance(a, b mgl64.Vec3) float64 {
	return Planar(a).Distance(Planar(b))
}

// Direction returns the unit vector from -> to on the ground plane, or false
// when the points coincide.
func Direction(from, to cp.Vector) (cp.Vector, bool) {
	d := to.Sub(from)
	l := d.Length()
	if l < 1e-9 {
		return cp.Vector{}, false
	}
	return d.Mult(1 / l), true
}

// AngleBetween is the unsigned angle between two ground-plane vectors. A zero
// vector counts as aligned.
func AngleBetween(a, b cp.Vector) float64 {
	la, lb := a.Length(), b.Length()
	if la < 1e-9 || lb < 1e-9 {
		return 0
	}
	return math.Acos(Clamp(a.Dot(b)/(la*lb), -1, 1))
}
