package prefabs

import (
	"math"
	"testing"

	core "github.com/rishiskhare/gorillavs100men/component"
)

func TestLoadAllEmbedded(t *testing.T) {
	specs, err := LoadAll()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if specs.Arena.Humans != 100 {
		t.Fatalf("expected 100 humans, got %d", specs.Arena.Humans)
	}
	if len(specs.Spawn) == 0 {
		t.Fatalf("expected spawn script")
	}
	if specs.Gorilla.Health != 500 || specs.Gorilla.Attack.Clip != "AttackComboInPlace" {
		t.Fatalf("unexpected gorilla spec %+v", specs.Gorilla)
	}
	if specs.Human.AttackRange != 1.8 || specs.Human.ChaseRadius != 30 {
		t.Fatalf("unexpected human spec %+v", specs.Human)
	}

	clips, dropped := core.ResolveClips(specs.Gorilla.Clips)
	if len(dropped) != 0 {
		t.Fatalf("gorilla clips dropped: %v", dropped)
	}
	want := map[string]bool{core.ClipIdle: true, core.ClipWalk: true, core.ClipRun: true, core.ClipEmote: true, core.ClipDeath: true, "AttackComboInPlace": true}
	for _, c := range clips {
		delete(want, c.Name)
	}
	if len(want) != 0 {
		t.Fatalf("gorilla clips missing %v", want)
	}
}

func TestDefaults(t *testing.T) {
	var g GorillaSpec
	g.Defaults()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"walk", g.WalkSpeed, 6},
		{"run", g.RunSpeed, 12},
		{"max_turn", g.MaxTurnSpeed, math.Pi},
		{"attack_radius", g.Attack.Radius, 5},
		{"max_damage", g.Attack.MaxDamage, 100},
		{"cone", g.Attack.ConeHalfAngle, math.Pi / 6},
		{"camera_z", g.Camera.Offset.Z, -6},
		{"camera_height", g.Camera.Height, 1.5},
		{"recovery", g.Attack.RecoveryFraction, 0.75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, tc.got)
			}
		})
	}
	if g.TurnAcceleration <= g.TurnDamping {
		t.Fatalf("expected turn acceleration above damping")
	}

	var h HumanSpec
	h.Defaults()
	if h.RunSpeed != 4 || h.LOD.Stride != 3 || h.Pushback.Threshold <= 0 {
		t.Fatalf("unexpected human defaults %+v", h)
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := map[string]string{
		"spawn_ring.tengo":                 "scripts/spawn_ring.tengo",
		"scripts/spawn_ring.tengo":         "scripts/spawn_ring.tengo",
		"prefabs/scripts/spawn_ring.tengo": "scripts/spawn_ring.tengo",
	}
	for in, want := range tests {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestWatched(t *testing.T) {
	tests := map[string]bool{
		"prefabs/human.yaml":               true,
		"prefabs/scripts/spawn_ring.tengo": true,
		"prefabs/notes.txt":                false,
	}
	for in, want := range tests {
		if got := Watched(in); got != want {
			t.Fatalf("%s: expected %v, got %v", in, want, got)
		}
	}
}
