package component

// LOD throttles far-away adversaries.
type LOD struct {
	AnimDistance   float64
	ShadowDistance float64
	Stride         int

	Throttled  bool
	ShadowsOff bool
	Counter    int
	// Pending is animation time withheld on skipped frames.
	Pending float64
}

var LODComponent = NewComponent[LOD]()
