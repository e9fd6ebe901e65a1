package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/system"
)

type keyBinding struct {
	button  movement.Button
	key     ebiten.Key
	gamepad ebiten.StandardGamepadButton
}

var keyBindings = []keyBinding{
	{movement.ButtonLeft, ebiten.KeyArrowLeft, ebiten.StandardGamepadButtonLeftLeft},
	{movement.ButtonRight, ebiten.KeyArrowRight, ebiten.StandardGamepadButtonLeftRight},
	{movement.ButtonUp, ebiten.KeyArrowUp, ebiten.StandardGamepadButtonLeftTop},
	{movement.ButtonDown, ebiten.KeyArrowDown, ebiten.StandardGamepadButtonLeftBottom},
}

// ebitenKeys polls arrow keys and the first gamepad's d-pad. Ebiten does not
// order edges within a tick, so releases are reported before presses and a
// press in the same tick wins.
type ebitenKeys struct{}

func (ebitenKeys) Edges(dst []system.KeyEdge) []system.KeyEdge {
	pad, hasPad := firstGamepad()
	for _, b := range keyBindings {
		released := inpututil.IsKeyJustReleased(b.key)
		if hasPad {
			released = released || inpututil.IsStandardGamepadButtonJustReleased(pad, b.gamepad)
		}
		if released {
			dst = append(dst, system.KeyEdge{Button: b.button, Edge: movement.Release})
		}
	}
	for _, b := range keyBindings {
		pressed := inpututil.IsKeyJustPressed(b.key)
		if hasPad {
			pressed = pressed || inpututil.IsStandardGamepadButtonJustPressed(pad, b.gamepad)
		}
		if pressed {
			dst = append(dst, system.KeyEdge{Button: b.button, Edge: movement.Press})
		}
	}
	return dst
}

func firstGamepad() (ebiten.GamepadID, bool) {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return 0, false
	}
	return gamepads[0], true
}
