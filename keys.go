package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rishiskhare/gorillavs100men/ecs/system"
)

// hostKeys is every key the host reports to the arena, by DOM code.
var hostKeys = map[ebiten.Key]string{
	ebiten.KeyW:          "KeyW",
	ebiten.KeyA:          "KeyA",
	ebiten.KeyS:          "KeyS",
	ebiten.KeyD:          "KeyD",
	ebiten.KeyE:          "KeyE",
	ebiten.KeyQ:          "KeyQ",
	ebiten.KeyF:          "KeyF",
	ebiten.KeyJ:          "KeyJ",
	ebiten.KeyK:          "KeyK",
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyShiftLeft:  "ShiftLeft",
	ebiten.KeyShiftRight: "ShiftRight",
	ebiten.KeySpace:      "Space",
	ebiten.KeyEnter:      "Enter",
}

const stickDeadzone = 0.2

// readKeys samples the keyboard and the first gamepad. The gamepad is folded
// into the default bindings' codes.
func readKeys() system.KeyState {
	keys := make(system.KeyState, len(hostKeys))
	for k, code := range hostKeys {
		if ebiten.IsKeyPressed(k) {
			keys[code] = true
		}
	}

	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return keys
	}
	id := gamepads[0]
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Abs(y) > stickDeadzone {
		if y < 0 {
			keys["KeyW"] = true
		} else {
			keys["KeyS"] = true
		}
	}
	if math.Abs(x) > stickDeadzone {
		if x < 0 {
			keys["KeyA"] = true
		} else {
			keys["KeyD"] = true
		}
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
		keys["Space"] = true
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft) {
		keys["KeyE"] = true
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft) {
		keys["ShiftLeft"] = true
	}
	return keys
}
