package system

import (
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
)

// InputSystem copies the host key state into Input components and derives
// rising edges for the one-shot actions.
type InputSystem struct {
	keys KeyState
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// SetKeys replaces the key state read on the next Update.
func (i *InputSystem) SetKeys(keys KeyState) {
	i.keys = keys
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		b := input.Bindings
		attack := i.keys.Any(b.Attack)
		emote := i.keys.Any(b.Emote)

		input.AttackPressed = attack && !input.Attack
		input.EmotePressed = emote && !input.Emote
		input.Forward = i.keys.Any(b.Forward)
		input.Back = i.keys.Any(b.Back)
		input.Left = i.keys.Any(b.Left)
		input.Right = i.keys.Any(b.Right)
		input.Sprint = i.keys.Any(b.Sprint)
		input.Attack = attack
		input.Emote = emote
	})
}
