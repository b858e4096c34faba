package arena

import (
	"bytes"
	"io"
	"log"
	"math/rand"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rishiskhare/gorillavs100men/common"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
	"github.com/rishiskhare/gorillavs100men/ecs/system"
	"github.com/rishiskhare/gorillavs100men/prefabs"
)

type nullScene struct {
	added int
	bars  map[uint64]float64
	cam   mgl64.Vec3
}

func (s *nullScene) Add(*component.Node)                 { s.added++ }
func (s *nullScene) Remove(*component.Node)              {}
func (s *nullScene) Dispose(*component.Node)             {}
func (s *nullScene) CloneMaterials(*component.Node)      {}
func (s *nullScene) SetOpacity(*component.Node, float64) {}
func (s *nullScene) SetCastShadow(*component.Node, bool) {}
func (s *nullScene) CameraPosition() mgl64.Vec3          { return s.cam }
func (s *nullScene) SetCamera(position, _ mgl64.Vec3)    { s.cam = position }
func (s *nullScene) UpdateHealthBar(n *component.Node, f float64, _ core.HealthTier) {
	if s.bars == nil {
		s.bars = map[uint64]float64{}
	}
	s.bars[n.ID] = f
}

type recordingHUD struct {
	health   []float64
	counts   []int
	outcomes []system.Outcome
}

func (h *recordingHUD) PlayerHealth(current, _ float64) { h.health = append(h.health, current) }
func (h *recordingHUD) AdversaryCount(n int)            { h.counts = append(h.counts, n) }
func (h *recordingHUD) MatchOver(o system.Outcome)      { h.outcomes = append(h.outcomes, o) }

func newTestArena(t *testing.T, humans int) (*Arena, *nullScene, *recordingHUD) {
	t.Helper()
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}
	scene, hud := &nullScene{}, &recordingHUD{}
	a, err := New(Options{
		Specs:  specs,
		Scene:  scene,
		HUD:    hud,
		Rand:   rand.New(rand.NewSource(7)),
		Logger: log.New(io.Discard, "", 0),
		Humans: humans,
	})
	if err != nil {
		t.Fatalf("new arena: %v", err)
	}
	return a, scene, hud
}

func TestNewArena(t *testing.T) {
	a, scene, hud := newTestArena(t, 5)

	if a.Roster().Len() != 5 {
		t.Fatalf("expected 5 humans, got %d", a.Roster().Len())
	}
	if scene.added != 1+5*2 {
		t.Fatalf("expected gorilla plus a node and bar per human, got %d", scene.added)
	}
	if len(scene.bars) != 5 {
		t.Fatalf("expected a full health bar per human, got %d", len(scene.bars))
	}
	for id, f := range scene.bars {
		if f != 1 {
			t.Fatalf("bar %d starts at %v", id, f)
		}
	}
	if len(hud.health) != 1 || hud.health[0] != 500 {
		t.Fatalf("expected initial player health 500, got %v", hud.health)
	}
	if len(hud.counts) == 0 || hud.counts[len(hud.counts)-1] != 5 {
		t.Fatalf("expected count 5 on the HUD, got %v", hud.counts)
	}

	origin := mgl64.Vec3{}
	for _, e := range a.Roster().Entities() {
		tr, ok := ecs.Get(a.World(), e, component.TransformComponent.Kind())
		if !ok {
			t.Fatalf("human %s has no transform", e)
		}
		d := common.PlanarDistance(tr.Position, origin)
		if d < 5-1e-9 || d > 55 {
			t.Fatalf("human spawned %v from the gorilla", d)
		}
		if want := common.YawToward(tr.Position, origin); !nearAngle(tr.Yaw, want) {
			t.Fatalf("human not facing the gorilla: yaw %v want %v", tr.Yaw, want)
		}
	}
}

func nearAngle(a, b float64) bool {
	d := a - b
	return d > -1e-9 && d < 1e-9
}

func TestArenaVictory(t *testing.T) {
	a, _, hud := newTestArena(t, 3)
	for _, e := range a.Roster().Entities() {
		a.DamageAdversary(e, 1000)
	}
	a.Step(1.0/60, nil)
	if a.Outcome() != system.OutcomeNone {
		t.Fatalf("match ended before the bodies faded")
	}

	var removed int
	for i := 0; i < 60*10 && a.Outcome() == system.OutcomeNone; i++ {
		a.Step(1.0/60, nil)
		for _, evt := range a.Events() {
			if evt.Type == ecs.EventAdversaryRemoved {
				removed++
			}
		}
	}
	if a.Outcome() != system.OutcomeVictory {
		t.Fatalf("expected victory, got %s", a.Outcome())
	}
	if removed != 3 {
		t.Fatalf("expected 3 removal events, got %d", removed)
	}

	a.Step(1.0/60, nil)
	if len(hud.outcomes) != 1 {
		t.Fatalf("expected one match-over, got %v", hud.outcomes)
	}
	if hud.counts[len(hud.counts)-1] != 0 {
		t.Fatalf("expected HUD count 0, got %v", hud.counts)
	}
}

func TestArenaDefeatLatches(t *testing.T) {
	a, _, hud := newTestArena(t, 2)

	if !a.DamagePlayer(200) {
		t.Fatalf("expected damage applied")
	}
	a.DamagePlayer(1000)
	if a.Outcome() != system.OutcomeDefeat {
		t.Fatalf("expected defeat, got %s", a.Outcome())
	}
	if a.DamagePlayer(10) {
		t.Fatalf("dead gorilla took damage")
	}

	for _, e := range a.Roster().Entities() {
		a.KillAdversary(e)
	}
	for i := 0; i < 60*10; i++ {
		a.Step(1.0/60, system.KeyState{"KeyW": true, "Space": true})
	}
	if a.Outcome() != system.OutcomeDefeat || len(hud.outcomes) != 1 {
		t.Fatalf("expected defeat latched, got %s %v", a.Outcome(), hud.outcomes)
	}
	if got := hud.health; len(got) != 3 || got[1] != 300 || got[2] != 0 {
		t.Fatalf("unexpected health updates %v", got)
	}

	tr, _ := ecs.Get(a.World(), a.Player(), component.TransformComponent.Kind())
	if tr.Position != (mgl64.Vec3{}) {
		t.Fatalf("defeated gorilla moved to %v", tr.Position)
	}
}

func TestSpawnLayout(t *testing.T) {
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}

	first, err := SpawnLayout(specs.Spawn, 100, 5, 50, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("spawn layout: %v", err)
	}
	second, err := SpawnLayout(specs.Spawn, 100, 5, 50, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("spawn layout: %v", err)
	}
	if len(first) != 100 {
		t.Fatalf("expected 100 positions, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("layout not deterministic at %d: %v vs %v", i, first[i], second[i])
		}
		d := first[i].Len()
		if d < 5-1e-9 || d >= 55 || first[i].Y() != 0 {
			t.Fatalf("position %d out of the ring: %v", i, first[i])
		}
	}

	if got, err := SpawnLayout(specs.Spawn, 0, 5, 50, rand.New(rand.NewSource(1))); err != nil || len(got) != 0 {
		t.Fatalf("expected empty layout for zero humans, got %v %v", got, err)
	}
}

func TestSpawnLayoutErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name   string
		script string
	}{
		{name: "syntax", script: "positions := ["},
		{name: "undefined", script: "x := 1"},
		{name: "not_a_map", script: "positions := [1, 2]"},
		{name: "missing_z", script: `positions := [{x: 1}]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := SpawnLayout([]byte(tc.script), 1, 5, 50, rng); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	id := uuid.MustParse("0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0")
	NewLogger(id, &buf).Printf("hello")
	if !strings.Contains(buf.String(), "arena[0f1e2d3c] hello") {
		t.Fatalf("unexpected log line %q", buf.String())
	}
}
