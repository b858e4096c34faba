package system

import (
	"github.com/jakecoffman/cp"
	"github.com/rishiskhare/gorillavs100men/common"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

// integratePushback moves tr by the impulse, then decays it once per tick.
func integratePushback(pb *component.Pushback, tr *component.Transform, dt float64) {
	if !pb.Active {
		return
	}
	tr.Position = tr.Position.Add(common.FromPlanar(pb.Velocity.Mult(dt), 0))
	pb.Velocity = pb.Velocity.Mult(pb.Damping)
	if pb.Velocity.Length() < pb.Threshold {
		pb.Velocity = cp.Vector{}
		pb.Active = false
	}
}
