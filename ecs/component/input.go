package component

// KeyBindings maps actions to key codes. Any listed code triggers the action.
type KeyBindings struct {
	Forward []string `yaml:"forward"`
	Back    []string `yaml:"back"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Sprint  []string `yaml:"sprint"`
	Attack  []string `yaml:"attack"`
	Emote   []string `yaml:"emote"`
}

// Input stores per-frame input state for an entity.
type Input struct {
	Bindings KeyBindings

	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Sprint  bool
	Attack  bool
	Emote   bool

	// Rising edges this frame.
	AttackPressed bool
	EmotePressed  bool
}

// Moving reports whether any locomotion or turn key is held.
func (in *Input) Moving() bool {
	return in.Forward || in.Back || in.Left || in.Right
}

var InputComponent = NewComponent[Input]()
