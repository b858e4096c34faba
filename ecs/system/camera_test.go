package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vecNear(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestCameraFollow(t *testing.T) {
	h := newHarness(t, testGorillaSpec(), testHumanSpec())

	h.step(0.1, nil)
	if want := (mgl64.Vec3{0, 4.5, -6}); !vecNear(h.scene.cam, want) {
		t.Fatalf("expected camera at %v, got %v", want, h.scene.cam)
	}
	if want := (mgl64.Vec3{0, 1.5, 0}); !vecNear(h.scene.target, want) {
		t.Fatalf("expected target %v, got %v", want, h.scene.target)
	}

	h.transform(t, h.gorilla).Yaw = math.Pi / 2
	h.step(0.1, nil)
	if want := (mgl64.Vec3{-6, 4.5, 0}); !vecNear(h.scene.cam, want) {
		t.Fatalf("expected camera behind a gorilla facing +x at %v, got %v", want, h.scene.cam)
	}
}

func TestCameraKeepsZoom(t *testing.T) {
	h := newHarness(t, testGorillaSpec(), testHumanSpec())
	h.step(0.1, nil)

	// zoom to half distance the way the host does, by moving the camera
	h.scene.cam = mgl64.Vec3{0, 3, -3}
	h.transform(t, h.gorilla).Position = mgl64.Vec3{2, 0, 0}
	h.step(0.1, nil)

	if want := (mgl64.Vec3{2, 3, -3}); !vecNear(h.scene.cam, want) {
		t.Fatalf("expected zoomed camera at %v, got %v", want, h.scene.cam)
	}
	if want := (mgl64.Vec3{2, 1.5, 0}); !vecNear(h.scene.target, want) {
		t.Fatalf("expected target %v, got %v", want, h.scene.target)
	}
}
