package component

import "github.com/jakecoffman/cp"

// Pushback is a single decaying ground-plane impulse.
type Pushback struct {
	Velocity  cp.Vector
	Active    bool
	Damping   float64
	Threshold float64
}

var PushbackComponent = NewComponent[Pushback]()
