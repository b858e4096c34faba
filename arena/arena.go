package arena

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rishiskhare/gorillavs100men/common"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
	"github.com/rishiskhare/gorillavs100men/ecs/entity"
	"github.com/rishiskhare/gorillavs100men/ecs/system"
	"github.com/rishiskhare/gorillavs100men/prefabs"
)

// Options configures a match.
type Options struct {
	Specs  *prefabs.Specs
	Scene  system.Scene
	HUD    system.HUD
	Rand   *rand.Rand
	Logger *log.Logger
	// Humans overrides the arena spec population when positive.
	Humans int
}

// Arena owns one match: the world, its systems and the end-of-match latch.
type Arena struct {
	ID uuid.UUID

	world       *ecs.World
	scheduler   *ecs.Scheduler
	input       *system.InputSystem
	adversaries *system.AdversarySystem
	roster      *system.Roster
	nodes       entity.Nodes

	specs      *prefabs.Specs
	humanClips []core.ClipDef
	scene      system.Scene
	hud        system.HUD
	rng        *rand.Rand
	logger     *log.Logger
	player     ecs.Entity
	outcome    system.Outcome
	events     []ecs.Event
}

// New builds the world, the gorilla and the initial population.
func New(opts Options) (*Arena, error) {
	if opts.Specs == nil || opts.Specs.Arena == nil || opts.Specs.Gorilla == nil || opts.Specs.Human == nil {
		return nil, fmt.Errorf("arena: incomplete specs")
	}
	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(id, nil)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	a := &Arena{
		ID:     id,
		world:  ecs.NewWorld(),
		roster: system.NewRoster(),
		specs:  opts.Specs,
		scene:  opts.Scene,
		hud:    opts.HUD,
		rng:    rng,
		logger: logger,
	}
	a.roster.OnCount = func(n int) {
		if a.hud != nil {
			a.hud.AdversaryCount(n)
		}
	}
	a.roster.OnCleared = func() { a.finish(system.OutcomeVictory) }

	a.input = system.NewInputSystem()
	a.adversaries = system.NewAdversarySystem(a.scene, a.roster, rng, logger)
	a.scheduler = ecs.NewScheduler(
		a.input,
		system.NewPlayerControllerSystem(logger, a.adversaries.Damage),
		a.adversaries,
		system.NewCrowdSeparationSystem(opts.Specs.Arena.CollisionRadius, rng),
		system.NewDeathSystem(a.scene, a.roster, logger),
		system.NewCameraSystem(a.scene),
	)

	if err := a.spawnGorilla(); err != nil {
		return nil, err
	}

	a.humanClips = a.resolveClips("human", opts.Specs.Human.Clips)
	count := opts.Humans
	if count <= 0 {
		count = opts.Specs.Arena.Humans
	}
	layout, err := SpawnLayout(opts.Specs.Spawn, count, opts.Specs.Arena.SafeZone, opts.Specs.Arena.Spread, rng)
	if err != nil {
		return nil, err
	}
	for _, pos := range layout {
		if _, err := a.Spawn(pos); err != nil {
			return nil, err
		}
	}

	logger.Printf("match started: %d humans", a.roster.Len())
	return a, nil
}

func (a *Arena) resolveClips(actor string, raw []core.ClipDef) []core.ClipDef {
	clips, dropped := core.ResolveClips(raw)
	for _, name := range dropped {
		a.logger.Printf("%s: ignoring clip %q", actor, name)
	}
	return clips
}

func (a *Arena) spawnGorilla() error {
	spec := a.specs.Gorilla
	node := a.nodes.New(component.NodeGorilla, spec.Name)
	e, err := entity.NewGorilla(a.world, spec, a.resolveClips("player", spec.Clips), node)
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	a.player = e

	h, ok := ecs.Get(a.world, e, component.HealthComponent.Kind())
	if !ok {
		return fmt.Errorf("arena: gorilla has no health")
	}
	h.OnChange = func(current, max float64) {
		if a.hud != nil {
			a.hud.PlayerHealth(current, max)
		}
	}
	h.OnDeath = func() { a.finish(system.OutcomeDefeat) }

	if a.scene != nil {
		a.scene.Add(node)
	}
	if a.hud != nil {
		a.hud.PlayerHealth(h.Current, h.Max)
	}
	return nil
}

// Spawn adds one human at pos facing the gorilla.
func (a *Arena) Spawn(pos mgl64.Vec3) (ecs.Entity, error) {
	spec := a.specs.Human
	node := a.nodes.New(component.NodeHuman, spec.Name)
	bar := a.nodes.New(component.NodeHealthBar, spec.Name+"_bar")

	yaw := 0.0
	if tr, ok := ecs.Get(a.world, a.player, component.TransformComponent.Kind()); ok {
		yaw = common.YawToward(pos, tr.Position)
	}
	e, err := entity.NewHuman(a.world, spec, a.humanClips, pos, yaw, node, bar)
	if err != nil {
		return 0, fmt.Errorf("arena: %w", err)
	}
	if a.scene != nil {
		a.scene.Add(node)
		a.scene.Add(bar)
		a.scene.UpdateHealthBar(bar, 1, core.TierFor(1))
	}
	a.roster.Add(e)
	return e, nil
}

// Step advances the match by delta seconds: deferred actions that came due,
// then input, player, adversaries, crowd separation, death and camera.
func (a *Arena) Step(delta float64, keys system.KeyState) {
	a.input.SetKeys(keys)
	a.world.Advance(delta)
	a.scheduler.Update(a.world)
	a.events = a.world.Events().Drain()
}

// DamageAdversary applies damage as if from the gorilla's position.
func (a *Arena) DamageAdversary(e ecs.Entity, amount float64) {
	src := mgl64.Vec3{}
	if tr, ok := ecs.Get(a.world, a.player, component.TransformComponent.Kind()); ok {
		src = tr.Position
	}
	a.adversaries.Damage(a.world, e, core.Hit{Amount: amount, Source: src})
}

// KillAdversary starts the death lifecycle of e directly.
func (a *Arena) KillAdversary(e ecs.Entity) {
	a.adversaries.Kill(a.world, e)
}

// DamagePlayer applies damage to the gorilla.
func (a *Arena) DamagePlayer(amount float64) bool {
	return system.DamagePlayer(a.world, amount)
}

func (a *Arena) finish(o system.Outcome) {
	if a.outcome != system.OutcomeNone {
		return
	}
	a.outcome = o
	a.logger.Printf("match over: %s", o)
	if a.hud != nil {
		a.hud.MatchOver(o)
	}
}

func (a *Arena) Outcome() system.Outcome { return a.outcome }

func (a *Arena) World() *ecs.World { return a.world }

func (a *Arena) Player() ecs.Entity { return a.player }

func (a *Arena) Roster() *system.Roster { return a.roster }

// Events returns the events raised during the last Step.
func (a *Arena) Events() []ecs.Event { return a.events }

func (a *Arena) Logger() *log.Logger { return a.logger }
