package movement

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

type (
	entryBehavior        func(c *Character)
	continuationBehavior func(c *Character, dt float64)
)

// entryBehaviors run once on the frame a state is entered.
var entryBehaviors = map[MovementState]entryBehavior{
	Stand:     (*Character).enterStill,
	WalkLeft:  (*Character).enterWalkLeft,
	WalkRight: (*Character).enterWalkRight,
	JumpUp:    (*Character).enterJumpUp,
	JumpLeft:  (*Character).enterJumpLeft,
	JumpRight: (*Character).enterJumpRight,
	Fall:      (*Character).enterFall,
	Duck:      (*Character).enterStill,
}

// continuationBehaviors run every frame the state is unchanged.
var continuationBehaviors = map[MovementState]continuationBehavior{
	Stand:     (*Character).holdStill,
	WalkLeft:  (*Character).continueWalk,
	WalkRight: (*Character).continueWalk,
	JumpUp:    (*Character).continueJump,
	JumpLeft:  (*Character).continueJump,
	JumpRight: (*Character).continueJump,
	Fall:      (*Character).continueFall,
	Duck:      (*Character).holdStill,
}

// TransitionHook observes state changes, including the physics driven
// jump to fall and landing edges.
type TransitionHook func(from, to MovementState)

// Character owns one avatar's movement state, body and animation cursor.
// It is not safe for concurrent use.
type Character struct {
	state  MovementState
	body   CharacterBody
	cursor AnimationCursor
	walk   WalkSequence
	table  *TransitionTable
	scale  cp.Vector

	// held is the last horizontal edge seen, used to pick the landing state.
	// It is not the live button state: releasing Left while Right is down
	// still leaves LeftRelease here.
	held        ButtonAction
	facingRight bool

	hook TransitionHook
}

func NewCharacter(cfg Config) (*Character, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Character{
		state: Stand,
		body: CharacterBody{
			Position:          cfg.Start,
			Gravity:           cfg.Gravity,
			WalkLeftVelocity:  cfg.WalkLeftVelocity,
			WalkRightVelocity: cfg.WalkRightVelocity,
			JumpVelocity:      cfg.JumpVelocity,
		},
		cursor: AnimationCursor{PhaseInterval: cfg.PhaseInterval},
		walk:   cfg.Walk,
		table:  cfg.Table,
		scale:  cfg.Scale,
		held:   LeftRelease,
	}, nil
}

func (c *Character) SetTransitionHook(hook TransitionHook) {
	c.hook = hook
}

// Update advances the character by one frame. dt must be a finite,
// non-negative number of seconds.
func (c *Character) Update(action ButtonAction, dt float64) {
	mustAction(action)
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic(fmt.Sprintf("movement: invalid frame delta %v", dt))
	}
	if action.Horizontal() {
		c.held = action
	}

	next := c.table.Next(c.state, action)
	if next == c.state {
		continuationBehaviors[c.state](c, dt)
		return
	}
	c.enter(next)
}

func (c *Character) enter(next MovementState) {
	prev := c.state
	c.state = next
	entryBehaviors[next](c)
	if c.hook != nil {
		c.hook(prev, next)
	}
}

func (c *Character) enterStill() {
	c.body.stop()
}

func (c *Character) enterWalkLeft() {
	c.cursor.reset()
	c.body.Velocity = c.body.WalkLeftVelocity
	c.facingRight = false
}

func (c *Character) enterWalkRight() {
	c.cursor.reset()
	c.body.Velocity = c.body.WalkRightVelocity
	c.facingRight = true
}

func (c *Character) enterJumpUp() {
	c.body.Velocity = c.body.JumpVelocity
}

func (c *Character) enterJumpLeft() {
	c.body.Velocity = c.body.JumpVelocity.Add(c.body.WalkLeftVelocity)
}

func (c *Character) enterJumpRight() {
	c.body.Velocity = c.body.JumpVelocity.Add(c.body.WalkRightVelocity)
}

// enterFall keeps the velocity carried over from the jump.
func (c *Character) enterFall() {}

func (c *Character) holdStill(float64) {
	c.body.stop()
}

func (c *Character) continueWalk(dt float64) {
	c.cursor.advance(dt, c.walk.Len())
	c.body.integratePosition(dt)
}

// continueJump integrates the jump and switches to Fall within the same
// update once the vertical velocity turns negative, so the next update
// already runs the fall continuation.
func (c *Character) continueJump(dt float64) {
	c.body.integrateBallistic(dt)
	if c.body.Velocity.Y < 0 {
		c.enter(Fall)
	}
}

func (c *Character) continueFall(dt float64) {
	c.body.integrateBallistic(dt)
	if c.body.Position.Y >= 0 {
		return
	}
	c.body.Position.Y = 0
	c.body.stop()
	switch c.held {
	case LeftPress:
		c.enter(WalkLeft)
	case RightPress:
		c.enter(WalkRight)
	default:
		c.enter(Stand)
	}
}

func (c *Character) State() MovementState {
	return c.state
}

func (c *Character) Body() CharacterBody {
	return c.body
}

func (c *Character) Cursor() AnimationCursor {
	return c.cursor
}

// Held is the last horizontal action, LeftRelease when nothing was pressed.
func (c *Character) Held() ButtonAction {
	return c.held
}

func (c *Character) WalkSequence() WalkSequence {
	return c.walk
}

// Sprite selects the sprite for the current state and walk phase.
func (c *Character) Sprite() SpriteSelector {
	return CurrentSprite(c.walk, c.state, c.cursor.WalkPhaseIndex)
}

// Transform returns the model transform for the renderer. Facing sticks to
// the last walking direction.
func (c *Character) Transform() Transform {
	return Transform{
		X:      c.body.Position.X,
		Y:      c.body.Position.Y,
		ScaleX: c.scale.X,
		ScaleY: c.scale.Y,
		FlipX:  c.facingRight,
	}
}
