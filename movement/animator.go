package movement

import (
	"errors"
	"fmt"
)

// SpriteSelector names the sprite the renderer should bind for a frame.
type SpriteSelector uint8

const (
	SpriteIdle SpriteSelector = iota
	SpriteLeft1
	SpriteLeft2
	SpriteRight1
	SpriteRight2
	SpriteJump
	SpriteFall
	SpriteDuck

	numSprites
)

var spriteNames = [numSprites]string{
	SpriteIdle:   "idle",
	SpriteLeft1:  "left1",
	SpriteLeft2:  "left2",
	SpriteRight1: "right1",
	SpriteRight2: "right2",
	SpriteJump:   "jump",
	SpriteFall:   "fall",
	SpriteDuck:   "duck",
}

// Sprites returns every selector in declaration order.
func Sprites() []SpriteSelector {
	out := make([]SpriteSelector, 0, numSprites)
	for s := SpriteIdle; s < numSprites; s++ {
		out = append(out, s)
	}
	return out
}

func (s SpriteSelector) Valid() bool {
	return s < numSprites
}

// WalkFrame reports whether the sprite may appear in a walk sequence.
func (s SpriteSelector) WalkFrame() bool {
	return s <= SpriteRight2
}

func (s SpriteSelector) String() string {
	if !s.Valid() {
		return fmt.Sprintf("SpriteSelector(%d)", uint8(s))
	}
	return spriteNames[s]
}

func ParseSpriteSelector(name string) (SpriteSelector, error) {
	for s, n := range spriteNames {
		if n == name {
			return SpriteSelector(s), nil
		}
	}
	return 0, fmt.Errorf("movement: unknown sprite %q", name)
}

var (
	ErrEmptyWalkSequence    = errors.New("movement: walk sequence is empty")
	ErrWalkSequenceMismatch = errors.New("movement: walk sequences differ in length")
	ErrNotWalkFrame         = errors.New("movement: sprite is not a walk frame")
)

// WalkSequence holds the cyclic sprite order for each walking direction.
type WalkSequence struct {
	left  []SpriteSelector
	right []SpriteSelector
}

func NewWalkSequence(left, right []SpriteSelector) (WalkSequence, error) {
	if len(left) == 0 || len(right) == 0 {
		return WalkSequence{}, ErrEmptyWalkSequence
	}
	if len(left) != len(right) {
		return WalkSequence{}, fmt.Errorf("%w: left=%d right=%d", ErrWalkSequenceMismatch, len(left), len(right))
	}
	for _, seq := range [][]SpriteSelector{left, right} {
		for i, s := range seq {
			if !s.WalkFrame() {
				return WalkSequence{}, fmt.Errorf("%w: %s at %d", ErrNotWalkFrame, s, i)
			}
		}
	}
	return WalkSequence{
		left:  append([]SpriteSelector(nil), left...),
		right: append([]SpriteSelector(nil), right...),
	}, nil
}

// DefaultWalkSequence is the eight phase stride of the walk cycle art.
func DefaultWalkSequence() WalkSequence {
	seq, err := NewWalkSequence(
		[]SpriteSelector{SpriteIdle, SpriteLeft1, SpriteLeft2, SpriteLeft1, SpriteIdle, SpriteRight1, SpriteRight2, SpriteRight1},
		[]SpriteSelector{SpriteIdle, SpriteRight1, SpriteRight2, SpriteRight1, SpriteIdle, SpriteLeft1, SpriteLeft2, SpriteLeft1},
	)
	if err != nil {
		panic(err)
	}
	return seq
}

// Len is the number of walk phases.
func (w WalkSequence) Len() int {
	return len(w.left)
}

func (w WalkSequence) Left() []SpriteSelector {
	return append([]SpriteSelector(nil), w.left...)
}

func (w WalkSequence) Right() []SpriteSelector {
	return append([]SpriteSelector(nil), w.right...)
}

// AnimationCursor tracks progress through the walk sequence.
type AnimationCursor struct {
	WalkPhaseIndex int
	FrameTimer     float64
	PhaseInterval  float64
}

func (c *AnimationCursor) reset() {
	c.WalkPhaseIndex = 0
	c.FrameTimer = 0
}

// advance accumulates dt and steps one phase once the timer passes the
// interval, wrapping strictly at numPhases.
func (c *AnimationCursor) advance(dt float64, numPhases int) {
	c.FrameTimer += dt
	if c.FrameTimer > c.PhaseInterval {
		c.FrameTimer = 0
		c.WalkPhaseIndex = (c.WalkPhaseIndex + 1) % numPhases
	}
}

// CurrentSprite picks the sprite for a state. Walking states index into the
// sequence for their direction; walkPhaseIndex must be in [0, seq.Len()).
func CurrentSprite(seq WalkSequence, state MovementState, walkPhaseIndex int) SpriteSelector {
	mustState(state)
	switch state {
	case WalkLeft:
		return seq.at(seq.left, walkPhaseIndex)
	case WalkRight:
		return seq.at(seq.right, walkPhaseIndex)
	case JumpUp, JumpLeft, JumpRight:
		return SpriteJump
	case Fall:
		return SpriteFall
	case Duck:
		return SpriteDuck
	}
	return SpriteIdle
}

func (w WalkSequence) at(frames []SpriteSelector, i int) SpriteSelector {
	if i < 0 || i >= len(frames) {
		panic(fmt.Sprintf("movement: walk phase %d out of range [0, %d)", i, len(frames)))
	}
	return frames[i]
}
