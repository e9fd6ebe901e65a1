package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentSpriteFixedStates(t *testing.T) {
	seq := DefaultWalkSequence()
	cases := []struct {
		state MovementState
		want  SpriteSelector
	}{
		{Stand, SpriteIdle},
		{JumpUp, SpriteJump},
		{JumpLeft, SpriteJump},
		{JumpRight, SpriteJump},
		{Fall, SpriteFall},
		{Duck, SpriteDuck},
	}
	for _, c := range cases {
		t.Run(c.state.String(), func(t *testing.T) {
			assert.Equal(t, c.want, CurrentSprite(seq, c.state, 0))
		})
	}
}

func TestCurrentSpriteWalkSequences(t *testing.T) {
	seq := DefaultWalkSequence()
	left := seq.Left()
	right := seq.Right()
	for i := 0; i < seq.Len(); i++ {
		assert.Equal(t, left[i], CurrentSprite(seq, WalkLeft, i))
		assert.Equal(t, right[i], CurrentSprite(seq, WalkRight, i))
	}

	assert.Panics(t, func() { CurrentSprite(seq, WalkLeft, seq.Len()) })
	assert.Panics(t, func() { CurrentSprite(seq, WalkRight, -1) })
	assert.Panics(t, func() { CurrentSprite(seq, numStates, 0) })
}

func TestNewWalkSequence(t *testing.T) {
	_, err := NewWalkSequence(nil, []SpriteSelector{SpriteIdle})
	assert.ErrorIs(t, err, ErrEmptyWalkSequence)

	_, err = NewWalkSequence([]SpriteSelector{SpriteIdle}, []SpriteSelector{SpriteIdle, SpriteLeft1})
	assert.ErrorIs(t, err, ErrWalkSequenceMismatch)

	_, err = NewWalkSequence([]SpriteSelector{SpriteJump}, []SpriteSelector{SpriteIdle})
	assert.ErrorIs(t, err, ErrNotWalkFrame)

	left := []SpriteSelector{SpriteIdle, SpriteLeft1}
	seq, err := NewWalkSequence(left, []SpriteSelector{SpriteIdle, SpriteRight1})
	require.NoError(t, err)
	left[1] = SpriteLeft2
	assert.Equal(t, SpriteLeft1, CurrentSprite(seq, WalkLeft, 1))
}

func TestAnimationCursorWrapsAtLength(t *testing.T) {
	c := AnimationCursor{PhaseInterval: 0.1}
	const phases = 3
	seen := make([]int, 0, 8)
	for i := 0; i < 8; i++ {
		c.advance(0.11, phases)
		seen = append(seen, c.WalkPhaseIndex)
		require.GreaterOrEqual(t, c.WalkPhaseIndex, 0)
		require.Less(t, c.WalkPhaseIndex, phases)
	}
	assert.Equal(t, []int{1, 2, 0, 1, 2, 0, 1, 2}, seen)
}
