package system

import (
	"io"
	"log"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
	"github.com/rishiskhare/gorillavs100men/ecs/entity"
	"github.com/rishiskhare/gorillavs100men/prefabs"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type fakeScene struct {
	added    map[uint64]int
	removed  map[uint64]int
	disposed map[uint64]int
	cloned   map[uint64]int
	opacity  map[uint64]float64
	shadow   map[uint64][]bool
	bars     map[uint64]float64
	cam      mgl64.Vec3
	target   mgl64.Vec3
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		added:    map[uint64]int{},
		removed:  map[uint64]int{},
		disposed: map[uint64]int{},
		cloned:   map[uint64]int{},
		opacity:  map[uint64]float64{},
		shadow:   map[uint64][]bool{},
		bars:     map[uint64]float64{},
	}
}

func (s *fakeScene) Add(n *component.Node)            { s.added[n.ID]++ }
func (s *fakeScene) Remove(n *component.Node)         { s.removed[n.ID]++ }
func (s *fakeScene) Dispose(n *component.Node)        { s.disposed[n.ID]++ }
func (s *fakeScene) CloneMaterials(n *component.Node) { s.cloned[n.ID]++ }
func (s *fakeScene) SetOpacity(n *component.Node, o float64) {
	s.opacity[n.ID] = o
}
func (s *fakeScene) SetCastShadow(n *component.Node, cast bool) {
	s.shadow[n.ID] = append(s.shadow[n.ID], cast)
}
func (s *fakeScene) UpdateHealthBar(n *component.Node, fraction float64, _ core.HealthTier) {
	s.bars[n.ID] = fraction
}
func (s *fakeScene) CameraPosition() mgl64.Vec3 { return s.cam }
func (s *fakeScene) SetCamera(position, target mgl64.Vec3) {
	s.cam = position
	s.target = target
}

func testGorillaSpec() *prefabs.GorillaSpec {
	g := &prefabs.GorillaSpec{
		Attack: prefabs.AttackSpec{TimeScale: 2},
		Clips: []core.ClipDef{
			{Name: "Idle", Duration: 2, Loop: true},
			{Name: "Walk", Duration: 1, Loop: true},
			{Name: "Run", Duration: 1, Loop: true},
			{Name: "AttackComboInPlace", Duration: 2},
			{Name: "Roar", Duration: 2},
			{Name: "Death", Duration: 2},
		},
	}
	g.Defaults()
	return g
}

func testHumanSpec() *prefabs.HumanSpec {
	h := &prefabs.HumanSpec{
		Clips: []core.ClipDef{
			{Name: "Idle", Duration: 2, Loop: true},
			{Name: "Run", Duration: 0.8, Loop: true},
			{Name: "Punch_Right", Duration: 1},
			{Name: "Kick_Left", Duration: 1},
			{Name: "HitReact", Duration: 0.5},
			{Name: "Death", Duration: 1},
		},
	}
	h.Defaults()
	return h
}

type harness struct {
	w       *ecs.World
	scene   *fakeScene
	roster  *Roster
	input   *InputSystem
	adv     *AdversarySystem
	sched   *ecs.Scheduler
	nodes   entity.Nodes
	human   *prefabs.HumanSpec
	gorilla ecs.Entity

	cleared int
	counts  []int
}

func newHarness(t *testing.T, g *prefabs.GorillaSpec, h *prefabs.HumanSpec) *harness {
	t.Helper()
	hs := &harness{w: ecs.NewWorld(), scene: newFakeScene(), roster: NewRoster(), human: h}
	hs.roster.OnCount = func(n int) { hs.counts = append(hs.counts, n) }
	hs.roster.OnCleared = func() { hs.cleared++ }

	rng := rand.New(rand.NewSource(3))
	hs.input = NewInputSystem()
	hs.adv = NewAdversarySystem(hs.scene, hs.roster, rng, quietLogger())
	hs.sched = ecs.NewScheduler(
		hs.input,
		NewPlayerControllerSystem(quietLogger(), hs.adv.Damage),
		hs.adv,
		NewCrowdSeparationSystem(1, rng),
		NewDeathSystem(hs.scene, hs.roster, quietLogger()),
		NewCameraSystem(hs.scene),
	)

	clips, _ := core.ResolveClips(g.Clips)
	e, err := entity.NewGorilla(hs.w, g, clips, hs.nodes.New(component.NodeGorilla, "gorilla"))
	if err != nil {
		t.Fatalf("new gorilla: %v", err)
	}
	hs.gorilla = e
	return hs
}

func (h *harness) spawn(t *testing.T, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	clips, _ := core.ResolveClips(h.human.Clips)
	node := h.nodes.New(component.NodeHuman, "human")
	bar := h.nodes.New(component.NodeHealthBar, "bar")
	e, err := entity.NewHuman(h.w, h.human, clips, pos, 0, node, bar)
	if err != nil {
		t.Fatalf("new human: %v", err)
	}
	h.scene.Add(node)
	h.scene.Add(bar)
	h.roster.Add(e)
	return e
}

func (h *harness) step(dt float64, keys KeyState) {
	h.input.SetKeys(keys)
	h.w.Advance(dt)
	h.sched.Update(h.w)
}

func (h *harness) run(seconds, dt float64, keys KeyState) {
	n := int(math.Round(seconds / dt))
	for i := 0; i < n; i++ {
		h.step(dt, keys)
	}
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %s missing component %T", e, v)
	}
	return v
}

func (h *harness) player(t *testing.T) *component.Player {
	return mustGet(t, h.w, h.gorilla, component.PlayerComponent.Kind())
}

func (h *harness) transform(t *testing.T, e ecs.Entity) *component.Transform {
	return mustGet(t, h.w, e, component.TransformComponent.Kind())
}

func (h *harness) blend(t *testing.T, e ecs.Entity) *core.Blend {
	return mustGet(t, h.w, e, component.AnimationComponent.Kind())
}

func (h *harness) health(t *testing.T, e ecs.Entity) *core.Health {
	return mustGet(t, h.w, e, component.HealthComponent.Kind())
}

func (h *harness) adversary(t *testing.T, e ecs.Entity) *component.Adversary {
	return mustGet(t, h.w, e, component.AdversaryComponent.Kind())
}

func (h *harness) distance(t *testing.T, e ecs.Entity) float64 {
	a := h.transform(t, e).Position
	p := h.transform(t, h.gorilla).Position
	return math.Hypot(a.X()-p.X(), a.Z()-p.Z())
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
