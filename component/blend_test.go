package component

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testClips() []ClipDef {
	return []ClipDef{
		{Name: ClipIdle, Duration: 1, Loop: true},
		{Name: ClipWalk, Duration: 1, Loop: true},
		{Name: "Punch_Right", Duration: 1},
	}
}

func TestBlendCrossfade(t *testing.T) {
	b := NewBlend(testClips(), 0.2)
	if !b.Play(ClipIdle, PlayOptions{}) {
		t.Fatalf("expected Idle to play")
	}
	b.Advance(0.2)
	if !near(b.Weight(ClipIdle), 1) {
		t.Fatalf("expected Idle fully faded in, got %v", b.Weight(ClipIdle))
	}

	b.Play(ClipWalk, PlayOptions{})
	b.Advance(0.1)
	if !near(b.Weight(ClipWalk), 0.5) || !near(b.Weight(ClipIdle), 0.5) {
		t.Fatalf("expected half crossfade, got walk=%v idle=%v", b.Weight(ClipWalk), b.Weight(ClipIdle))
	}
	b.Advance(0.1)
	if !near(b.Weight(ClipWalk), 1) || b.Weight(ClipIdle) != 0 {
		t.Fatalf("expected crossfade complete, got walk=%v idle=%v", b.Weight(ClipWalk), b.Weight(ClipIdle))
	}
	if b.Current() != ClipWalk {
		t.Fatalf("expected current Walk, got %q", b.Current())
	}
}

func TestBlendOneShot(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T, b *Blend)
	}{
		{
			name: "finish_consumed_once",
			run: func(t *testing.T, b *Blend) {
				b.Play("Punch_Right", PlayOptions{Once: true})
				b.Advance(0.6)
				if b.ConsumeFinished("Punch_Right") {
					t.Fatalf("finished too early")
				}
				b.Advance(0.6)
				if !near(b.Time("Punch_Right"), 1) {
					t.Fatalf("expected clamp on last frame, got %v", b.Time("Punch_Right"))
				}
				if !b.ConsumeFinished("Punch_Right") {
					t.Fatalf("expected finish notification")
				}
				if b.ConsumeFinished("Punch_Right") {
					t.Fatalf("finish notification consumed twice")
				}
			},
		},
		{
			name: "transition_discards_pending",
			run: func(t *testing.T, b *Blend) {
				b.Play("Punch_Right", PlayOptions{Once: true})
				b.Advance(1.5)
				b.Play(ClipIdle, PlayOptions{})
				if b.ConsumeFinished("Punch_Right") {
					t.Fatalf("expected pending notification discarded")
				}
			},
		},
		{
			name: "replay_after_finish_restarts",
			run: func(t *testing.T, b *Blend) {
				b.Play("Punch_Right", PlayOptions{Once: true})
				b.Advance(1.5)
				b.Play("Punch_Right", PlayOptions{Once: true})
				if b.Time("Punch_Right") != 0 || !b.Playing("Punch_Right") {
					t.Fatalf("expected restart, time=%v playing=%v", b.Time("Punch_Right"), b.Playing("Punch_Right"))
				}
			},
		},
		{
			name: "reversed_starts_at_end",
			run: func(t *testing.T, b *Blend) {
				b.Play("Punch_Right", PlayOptions{Once: true, TimeScale: -1})
				if b.Time("Punch_Right") != 1 {
					t.Fatalf("expected reversed one-shot to start at its duration, got %v", b.Time("Punch_Right"))
				}
				b.Advance(0.5)
				if b.ConsumeFinished("Punch_Right") || !near(b.Time("Punch_Right"), 0.5) {
					t.Fatalf("expected halfway back, time=%v", b.Time("Punch_Right"))
				}
				b.Advance(0.6)
				if !b.ConsumeFinished("Punch_Right") || b.Time("Punch_Right") != 0 {
					t.Fatalf("expected finish clamped at 0, time=%v", b.Time("Punch_Right"))
				}
			},
		},
		{
			name: "time_scale",
			run: func(t *testing.T, b *Blend) {
				b.Play("Punch_Right", PlayOptions{Once: true, TimeScale: 2})
				b.Advance(0.5)
				if !b.ConsumeFinished("Punch_Right") {
					t.Fatalf("expected finish at double speed")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.run(t, NewBlend(testClips(), 0.2))
		})
	}
}

func TestBlendReentrantPlay(t *testing.T) {
	b := NewBlend(testClips(), 0.2)
	b.Play(ClipWalk, PlayOptions{})
	b.Advance(0.3)
	b.Play(ClipWalk, PlayOptions{})
	if !near(b.Time(ClipWalk), 0.3) {
		t.Fatalf("expected re-entrant play to be a no-op, time=%v", b.Time(ClipWalk))
	}
	b.Play(ClipWalk, PlayOptions{TimeScale: -1})
	if b.TimeScale(ClipWalk) != -1 || !near(b.Time(ClipWalk), 0.3) {
		t.Fatalf("expected time scale updated in place")
	}
	b.Play(ClipWalk, PlayOptions{Reset: true})
	if b.Time(ClipWalk) != 0 {
		t.Fatalf("expected reset, time=%v", b.Time(ClipWalk))
	}
}

func TestBlendLoopAndMissing(t *testing.T) {
	b := NewBlend(testClips(), 0.2)
	b.Play(ClipWalk, PlayOptions{})
	b.Advance(2.5)
	if !near(b.Time(ClipWalk), 0.5) {
		t.Fatalf("expected loop wrap to 0.5, got %v", b.Time(ClipWalk))
	}
	if b.ConsumeFinished(ClipWalk) {
		t.Fatalf("looping clip must not finish")
	}

	if b.Play("Backflip", PlayOptions{}) {
		t.Fatalf("expected missing clip to be rejected")
	}
	if b.Current() != ClipWalk {
		t.Fatalf("missing clip changed current state to %q", b.Current())
	}

	b.Play(ClipIdle, PlayOptions{TimeScale: -1})
	b.Advance(0.25)
	if !near(b.Time(ClipIdle), 0.75) {
		t.Fatalf("expected backwards playback, got %v", b.Time(ClipIdle))
	}
}
