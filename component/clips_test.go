package component

import (
	"reflect"
	"testing"
)

func TestResolveClips(t *testing.T) {
	raw := []ClipDef{
		{Name: "loopIdle", Duration: 2},
		{Name: "Run", Duration: 0.8},
		{Name: "Punch_Right", Duration: 1.1},
		{Name: "Kick_Left", Duration: 1.3},
		{Name: "Die", Duration: 2.2},
		{Name: "Stagger", Duration: 0.6},
		{Name: "Dance", Duration: 3},
		{Name: "AttackComboInPlace", Duration: 2.4},
		{Name: "Idle_2", Duration: 2},
		{Name: "TPose", Duration: 0},
	}
	clips, dropped := ResolveClips(raw)

	var names []string
	for _, c := range clips {
		names = append(names, c.Name)
	}
	want := []string{ClipIdle, ClipRun, "Punch_Right", "Kick_Left", ClipDeath, ClipHitReact, ClipEmote, "AttackComboInPlace"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	if !reflect.DeepEqual(dropped, []string{"Idle_2", "TPose"}) {
		t.Fatalf("unexpected dropped clips %v", dropped)
	}
	if clips[4].Duration != 2.2 {
		t.Fatalf("expected durations preserved, got %v", clips[4].Duration)
	}

	attacks := AttackClipNames(clips)
	if !reflect.DeepEqual(attacks, []string{"Punch_Right", "Kick_Left", "AttackComboInPlace"}) {
		t.Fatalf("unexpected attack clips %v", attacks)
	}
}

func TestNormalizeClipName(t *testing.T) {
	tests := map[string]string{
		"loopIdle":      "Idle",
		"Loop_Walk":     "Walk",
		"LOOP Run":      "Run",
		"Idle":          "Idle",
		"AttackLoopRun": "AttackLoopRun",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			if got := NormalizeClipName(in); got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		fraction float64
		want     HealthTier
	}{
		{1, TierHigh},
		{0.66, TierHigh},
		{0.65, TierMid},
		{0.35, TierLow},
		{0.15, TierCritical},
		{0, TierCritical},
	}
	for _, tc := range tests {
		if got := TierFor(tc.fraction); got != tc.want {
			t.Fatalf("fraction %v: expected %v, got %v", tc.fraction, tc.want, got)
		}
	}
}
