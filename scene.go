package main

import (
	"github.com/go-gl/mathgl/mgl64"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

type sceneNode struct {
	node    *component.Node
	opacity float64
	shadow  bool
	private bool
	bar     float64
	tier    core.HealthTier
}

// view is the host render graph: what the arena has added, and how each node
// is styled. Positions are read from the world at draw time.
type view struct {
	nodes  map[uint64]*sceneNode
	cam    mgl64.Vec3
	target mgl64.Vec3
}

func newView() *view {
	return &view{nodes: make(map[uint64]*sceneNode)}
}

func (v *view) Add(n *component.Node) {
	if n == nil {
		return
	}
	v.nodes[n.ID] = &sceneNode{node: n, opacity: 1, shadow: true, bar: 1}
}

func (v *view) Remove(n *component.Node) {
	if n == nil {
		return
	}
	delete(v.nodes, n.ID)
}

// Dispose releases what Remove left behind. The debug view keeps nothing
// outside the node map.
func (v *view) Dispose(n *component.Node) {}

func (v *view) CloneMaterials(n *component.Node) {
	if sn := v.get(n); sn != nil {
		sn.private = true
	}
}

func (v *view) SetOpacity(n *component.Node, opacity float64) {
	if sn := v.get(n); sn != nil && sn.private {
		sn.opacity = opacity
	}
}

func (v *view) SetCastShadow(n *component.Node, cast bool) {
	if sn := v.get(n); sn != nil {
		sn.shadow = cast
	}
}

func (v *view) UpdateHealthBar(n *component.Node, fraction float64, tier core.HealthTier) {
	if sn := v.get(n); sn != nil {
		sn.bar = fraction
		sn.tier = tier
	}
}

func (v *view) CameraPosition() mgl64.Vec3 { return v.cam }

func (v *view) SetCamera(position, target mgl64.Vec3) {
	v.cam = position
	v.target = target
}

// zoom scales the camera's distance to its target, clamped to [lo, hi].
func (v *view) zoom(factor, lo, hi float64) {
	off := v.cam.Sub(v.target)
	d := off.Len()
	if d < 1e-9 {
		return
	}
	nd := d * factor
	if nd < lo {
		nd = lo
	}
	if nd > hi {
		nd = hi
	}
	v.cam = v.target.Add(off.Mul(nd / d))
}

func (v *view) get(n *component.Node) *sceneNode {
	if n == nil {
		return nil
	}
	return v.nodes[n.ID]
}
