package system

import "github.com/milk9111/platformer/movement"

// World is the per-frame state shared by systems: one character, its input
// and the renderer-facing outputs of the last step.
type World struct {
	Input     *movement.InputState
	Character *movement.Character

	DT      float64
	Tick    int
	Elapsed float64

	Sprite    movement.SpriteSelector
	Transform movement.Transform
}

func NewWorld(c *movement.Character) *World {
	w := &World{
		Input:     movement.NewInputState(),
		Character: c,
	}
	if c != nil {
		w.Sprite = c.Sprite()
		w.Transform = c.Transform()
	}
	return w
}
