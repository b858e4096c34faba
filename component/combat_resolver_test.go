package component

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func gorillaProfile() AttackProfile {
	return AttackProfile{Radius: 5, ConeHalfAngle: math.Pi / 6, MaxDamageDistance: 1, MaxDamage: 100}
}

func TestResolveDamage(t *testing.T) {
	fwd := mgl64.Vec3{0, 0, 1}
	tests := []struct {
		name   string
		target mgl64.Vec3
		want   float64
	}{
		{name: "behind_falloff", target: mgl64.Vec3{0, 0, -3}, want: 40},
		{name: "close_in_cone", target: mgl64.Vec3{0, 0, 0.5}, want: 100},
		{name: "close_outside_cone", target: mgl64.Vec3{0, 0, -0.5}, want: 90},
		{name: "height_ignored", target: mgl64.Vec3{0, 10, 0.5}, want: 100},
		{name: "edge_of_radius", target: mgl64.Vec3{5, 0, 0}, want: 0},
		{name: "out_of_radius", target: mgl64.Vec3{0, 0, 7}, want: 0},
		{name: "same_position", target: mgl64.Vec3{}, want: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveDamage(mgl64.Vec3{}, fwd, tc.target, gorillaProfile())
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestResolveDamageNonIncreasing(t *testing.T) {
	p := gorillaProfile()
	prev := math.Inf(1)
	for d := 0.0; d <= 6; d += 0.25 {
		got := ResolveDamage(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{d, 0, 0}, p)
		if got > prev {
			t.Fatalf("damage increased at distance %v: %v > %v", d, got, prev)
		}
		if got < 0 || got > p.MaxDamage {
			t.Fatalf("damage %v out of range at %v", got, d)
		}
		prev = got
	}
}
