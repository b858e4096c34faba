package component

import "math"

// ClipDef describes a named animation clip supplied by the asset collaborator.
type ClipDef struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop"`
}

// PlayOptions controls how Blend.Play enters a state.
type PlayOptions struct {
	// Once plays the clip a single time and clamps on the last frame. A
	// reversed one-shot starts at the end and clamps at 0.
	Once bool
	// TimeScale defaults to 1; negative values play backwards.
	TimeScale float64
	// Reset restarts the clip even when it is already the playing state.
	Reset bool
}

type clipTrack struct {
	def     ClipDef
	time    float64
	scale   float64
	weight  float64
	target  float64
	once    bool
	running bool
}

// Blend crossfades between named clip states for one actor. Exactly one state
// is current; the previous one fades out over FadeDuration while the new one
// fades in. One-shot states raise a finish notification that is consumed once.
type Blend struct {
	FadeDuration float64

	tracks   map[string]*clipTrack
	current  string
	finished map[string]bool
}

// NewBlend creates a controller over the given clips.
func NewBlend(clips []ClipDef, fade float64) *Blend {
	b := &Blend{
		FadeDuration: fade,
		tracks:       make(map[string]*clipTrack, len(clips)),
		finished:     make(map[string]bool),
	}
	for _, c := range clips {
		if c.Name == "" {
			continue
		}
		b.tracks[c.Name] = &clipTrack{def: c, scale: 1}
	}
	return b
}

// Has reports whether a clip named name exists.
func (b *Blend) Has(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.tracks[name]
	return ok
}

// Duration returns the clip length in seconds.
func (b *Blend) Duration(name string) (float64, bool) {
	if b == nil {
		return 0, false
	}
	t, ok := b.tracks[name]
	if !ok {
		return 0, false
	}
	return t.def.Duration, true
}

// Current returns the active state name ("" when stopped).
func (b *Blend) Current() string {
	if b == nil {
		return ""
	}
	return b.current
}

// Play transitions to name. It returns false when the clip does not exist,
// leaving the current state untouched.
func (b *Blend) Play(name string, opts PlayOptions) bool {
	if b == nil {
		return false
	}
	in, ok := b.tracks[name]
	if !ok {
		return false
	}
	scale := opts.TimeScale
	if scale == 0 {
		scale = 1
	}

	if name == b.current && in.running && !opts.Reset {
		in.scale = scale
		return true
	}

	if b.current != "" && b.current != name {
		if out, ok := b.tracks[b.current]; ok {
			out.target = 0
		}
		delete(b.finished, b.current)
	}

	in.time = 0
	if scale < 0 {
		in.time = in.def.Duration
	}
	in.scale = scale
	in.once = opts.Once
	in.running = true
	in.target = 1
	delete(b.finished, name)
	b.current = name
	return true
}

// Stop fades out the current state and leaves the controller without one.
func (b *Blend) Stop() {
	if b == nil || b.current == "" {
		return
	}
	if t, ok := b.tracks[b.current]; ok {
		t.target = 0
	}
	delete(b.finished, b.current)
	b.current = ""
}

// Advance moves every active track forward by dt seconds.
func (b *Blend) Advance(dt float64) {
	if b == nil || dt <= 0 {
		return
	}
	for name, t := range b.tracks {
		if !t.running && t.weight == 0 {
			continue
		}
		b.fade(t, dt)
		if t.running {
			b.step(name, t, dt)
		}
		if t.target == 0 && t.weight == 0 {
			t.running = false
		}
	}
}

func (b *Blend) fade(t *clipTrack, dt float64) {
	if b.FadeDuration <= 0 {
		t.weight = t.target
		return
	}
	step := dt / b.FadeDuration
	if t.weight < t.target {
		t.weight = math.Min(t.target, t.weight+step)
	} else if t.weight > t.target {
		t.weight = math.Max(t.target, t.weight-step)
	}
}

func (b *Blend) step(name string, t *clipTrack, dt float64) {
	d := t.def.Duration
	t.time += dt * t.scale
	if !t.once {
		if d > 0 {
			t.time = math.Mod(t.time, d)
			if t.time < 0 {
				t.time += d
			}
		}
		return
	}
	done := false
	if t.scale >= 0 && t.time >= d {
		t.time = d
		done = true
	} else if t.scale < 0 && t.time <= 0 {
		t.time = 0
		done = true
	}
	if !done {
		return
	}
	t.running = false
	if name == b.current {
		b.finished[name] = true
	}
}

// ConsumeFinished reports, exactly once, that the one-shot state name reached
// its end while current.
func (b *Blend) ConsumeFinished(name string) bool {
	if b == nil || !b.finished[name] {
		return false
	}
	delete(b.finished, name)
	return true
}

// Playing reports whether name is current and still advancing.
func (b *Blend) Playing(name string) bool {
	if b == nil || name != b.current {
		return false
	}
	t, ok := b.tracks[name]
	return ok && t.running
}

// Weight returns the blend weight of name in [0, 1].
func (b *Blend) Weight(name string) float64 {
	if b == nil {
		return 0
	}
	if t, ok := b.tracks[name]; ok {
		return t.weight
	}
	return 0
}

// Time returns the playhead of name in seconds.
func (b *Blend) Time(name string) float64 {
	if b == nil {
		return 0
	}
	if t, ok := b.tracks[name]; ok {
		return t.time
	}
	return 0
}

// TimeScale returns the playback rate of name.
func (b *Blend) TimeScale(name string) float64 {
	if b == nil {
		return 0
	}
	if t, ok := b.tracks[name]; ok {
		return t.scale
	}
	return 0
}
