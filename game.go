package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/rishiskhare/gorillavs100men/arena"
	"github.com/rishiskhare/gorillavs100men/common"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
	"github.com/rishiskhare/gorillavs100men/ecs/system"
	"github.com/rishiskhare/gorillavs100men/prefabs"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	pixelsPerMeter    = 14.0
	minCameraDistance = 3.0
	maxCameraDistance = 40.0
	wheelZoomStep     = 0.9
	keyZoomStep       = 0.98

	gorillaRadius = 1.0
	humanRadius   = 0.45
)

type Game struct {
	frames int
	debug  bool
	humans int
	seed   int64

	specs   *prefabs.Specs
	arena   *arena.Arena
	view    *view
	hud     *hud
	watcher *prefabs.Watcher

	ui             *ebitenui.UI
	paused         bool
	shown          system.Outcome
	restartPending bool
}

func NewGame(specs *prefabs.Specs, humans int, seed int64, debug bool, watcher *prefabs.Watcher) (*Game, error) {
	g := &Game{
		debug:   debug,
		humans:  humans,
		seed:    seed,
		specs:   specs,
		watcher: watcher,
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart throws the current match away and starts a fresh one on the
// current specs.
func (g *Game) restart() error {
	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	v, h := newView(), &hud{}
	a, err := arena.New(arena.Options{
		Specs:  g.specs,
		Scene:  v,
		HUD:    h,
		Rand:   rand.New(rand.NewSource(seed)),
		Humans: g.humans,
	})
	if err != nil {
		return err
	}
	g.arena, g.view, g.hud = a, v, h
	g.ui = nil
	g.paused = false
	g.shown = system.OutcomeNone
	ebiten.SetTPS(g.specs.Arena.TPS)
	a.Logger().Printf("seed %d", seed)
	return nil
}

// reload re-reads the prefabs and restarts. A broken edit keeps the old specs.
func (g *Game) reload() {
	specs, err := prefabs.LoadAll()
	if err != nil {
		log.Printf("reload prefabs: %v", err)
	} else {
		g.specs = specs
	}
	if err := g.restart(); err != nil {
		log.Printf("restart: %v", err)
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", name)
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.arena.Outcome() == system.OutcomeNone {
		g.setPaused(!g.paused)
	}

	if g.ui != nil {
		g.ui.Update()
	}
	if g.restartPending {
		g.restartPending = false
		g.reload()
	}
	if g.paused {
		return nil
	}

	g.updateZoom()
	g.arena.Step(1/float64(ebiten.TPS()), readKeys())

	if o := g.arena.Outcome(); o != system.OutcomeNone && o != g.shown {
		g.shown = o
		title := "The humans win"
		if o == system.OutcomeVictory {
			title = "The gorilla wins"
		}
		g.ui = newOverlayUI(title, nil, g.requestRestart)
	}
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.ui = newOverlayUI("Paused", func() { g.setPaused(false) }, g.requestRestart)
	} else {
		g.ui = nil
	}
}

func (g *Game) requestRestart() { g.restartPending = true }

func (g *Game) updateZoom() {
	factor := 1.0
	if _, dy := ebiten.Wheel(); dy != 0 {
		factor *= math.Pow(wheelZoomStep, dy)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		factor *= keyZoomStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		factor /= keyZoomStep
	}
	if factor != 1 {
		g.view.zoom(factor, minCameraDistance, maxCameraDistance)
	}
}

// projection maps the ground plane to the screen, looking down with the
// camera's heading pointing up.
type projection struct {
	origin mgl64.Vec3
	fwd    cp.Vector
	right  cp.Vector
	ppm    float64
}

func (g *Game) projection() projection {
	p := projection{origin: g.view.target, fwd: cp.Vector{Y: 1}, ppm: pixelsPerMeter}
	if dir, ok := common.Direction(common.Planar(g.view.cam), common.Planar(g.view.target)); ok {
		p.fwd = dir
	}
	p.right = cp.Vector{X: -p.fwd.Y, Y: p.fwd.X}

	rest := g.specs.Gorilla.Camera.Offset.Vec3().Len()
	if d := g.view.cam.Sub(g.view.target).Len(); d > 1e-6 && rest > 0 {
		p.ppm = pixelsPerMeter * rest / d
	}
	return p
}

func (p projection) toScreen(pos mgl64.Vec3) (float32, float32) {
	d := common.Planar(pos.Sub(p.origin))
	x := baseWidth/2 + d.Dot(p.right)*p.ppm
	y := baseHeight*0.6 - d.Dot(p.fwd)*p.ppm
	return float32(x), float32(y)
}

func (p projection) scale(meters float64) float32 {
	return float32(meters * p.ppm)
}

func withAlpha(c color.RGBA, opacity float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * common.Clamp(opacity, 0, 1))}
}

func phaseColor(phase component.AdversaryPhase) color.RGBA {
	switch phase {
	case component.PhaseChase:
		return colornames.Orange
	case component.PhaseAttacking:
		return colornames.Crimson
	case component.PhaseHitReacting:
		return colornames.Yellow
	case component.PhaseDying:
		return colornames.Gray
	default:
		return colornames.Lightsteelblue
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkolivegreen)
	p := g.projection()

	cx, cy := p.toScreen(mgl64.Vec3{})
	vector.StrokeCircle(screen, cx, cy, p.scale(g.specs.Arena.SafeZone), 1, colornames.Lightgrey, true)
	vector.StrokeCircle(screen, cx, cy, p.scale(g.specs.Arena.SafeZone+g.specs.Arena.Spread), 1, colornames.Lightgrey, true)

	w := g.arena.World()
	ecs.ForEach2(w, component.RenderableComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, r *component.Renderable, tr *component.Transform) {
		sn := g.view.get(r.Node)
		if sn == nil {
			return
		}
		g.drawActor(screen, p, w, e, sn, tr)
	})

	g.hud.Draw(screen)
	if g.debug {
		g.drawDebug(screen)
	}
	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawActor(screen *ebiten.Image, p projection, w *ecs.World, e ecs.Entity, sn *sceneNode, tr *component.Transform) {
	x, y := p.toScreen(tr.Position)
	radius := humanRadius
	body := colornames.Lightsteelblue
	if sn.node.Kind == component.NodeGorilla {
		radius = gorillaRadius
		body = colornames.Saddlebrown
	} else if a, ok := ecs.Get(w, e, component.AdversaryComponent.Kind()); ok {
		body = phaseColor(a.Phase)
	}
	r := p.scale(radius)

	if sn.shadow {
		vector.DrawFilledCircle(screen, x+3, y+3, r, color.NRGBA{A: uint8(80 * sn.opacity)}, true)
	}
	vector.DrawFilledCircle(screen, x, y, r, withAlpha(body, sn.opacity), true)
	hx, hy := p.toScreen(tr.Position.Add(tr.Forward().Mul(radius * 1.6)))
	vector.StrokeLine(screen, x, y, hx, hy, 2, withAlpha(colornames.White, sn.opacity), true)

	hb, ok := ecs.Get(w, e, component.HealthBarComponent.Kind())
	if !ok {
		return
	}
	bar := g.view.get(hb.Node)
	if bar == nil {
		return
	}
	bw, bh := p.scale(1.2), float32(4)
	bx, by := x-bw/2, y-r-bh-4
	vector.FillRect(screen, bx, by, bw, bh, color.NRGBA{A: 160}, false)
	vector.FillRect(screen, bx, by, bw*float32(bar.bar), bh, bar.tier.Color(), false)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	w := g.arena.World()
	e := g.arena.Player()
	text := fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS())
	if pl, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		clip := ""
		if b, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			clip = b.Current()
		}
		text += fmt.Sprintf("\nClip: %s\nAttacking: %v  Emoting: %v  Defeated: %v\nTurn rate: %.2f",
			clip, pl.Attacking, pl.Emoting, pl.Defeated, pl.AngularVelocity)
	}
	text += fmt.Sprintf("\nDeferred: %d", w.Deferred().Len())
	ebitenutil.DebugPrintAt(screen, text, 10, baseHeight-90)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

var _ system.Scene = (*view)(nil)
var _ system.HUD = (*hud)(nil)
