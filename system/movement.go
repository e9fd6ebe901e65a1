package system

import (
	"github.com/milk9111/platformer/movement"
	"github.com/rs/zerolog"
)

// MovementSystem steps the character with the current action.
type MovementSystem struct {
	logger   zerolog.Logger
	attached *movement.Character
}

func NewMovementSystem(logger zerolog.Logger) *MovementSystem {
	return &MovementSystem{logger: logger}
}

func (m *MovementSystem) Update(w *World) {
	if w == nil || w.Character == nil || w.Input == nil {
		return
	}
	if m.attached != w.Character {
		m.attach(w)
	}
	w.Character.Update(w.Input.Current(), w.DT)
}

// attach installs a transition logger on a newly seen character, e.g. after
// a prefab reload swapped it out.
func (m *MovementSystem) attach(w *World) {
	c := w.Character
	c.SetTransitionHook(func(from, to movement.MovementState) {
		m.logger.Debug().
			Int("tick", w.Tick).
			Stringer("from", from).
			Stringer("to", to).
			Stringer("action", w.Input.Current()).
			Msg("state transition")
	})
	m.attached = c
}

// AnimationSystem publishes the sprite and model transform for the renderer.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *World) {
	if w == nil || w.Character == nil {
		return
	}
	w.Sprite = w.Character.Sprite()
	w.Transform = w.Character.Transform()
}
