package movement

import "github.com/jakecoffman/cp"

// CharacterBody is the kinematic state of a character. Only the movement
// state machine mutates it.
type CharacterBody struct {
	Position cp.Vector
	Velocity cp.Vector

	Gravity           cp.Vector
	WalkLeftVelocity  cp.Vector
	WalkRightVelocity cp.Vector
	JumpVelocity      cp.Vector
}

// integratePosition applies the current velocity over dt.
func (b *CharacterBody) integratePosition(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Mult(dt))
}

// integrateBallistic moves with the current velocity, then applies gravity.
func (b *CharacterBody) integrateBallistic(dt float64) {
	b.integratePosition(dt)
	b.Velocity = b.Velocity.Add(b.Gravity.Mult(dt))
}

func (b *CharacterBody) stop() {
	b.Velocity = cp.Vector{}
}

// Transform is the model transform handed to the renderer: translation by
// position, then the fixed per-character scale. FlipX mirrors sprites drawn
// facing right.
type Transform struct {
	X, Y, Z        float64
	ScaleX, ScaleY float64
	FlipX          bool
}
