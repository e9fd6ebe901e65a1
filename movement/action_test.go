package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		button Button
		edge   Edge
		want   ButtonAction
	}{
		{ButtonLeft, Press, LeftPress},
		{ButtonLeft, Release, LeftRelease},
		{ButtonRight, Press, RightPress},
		{ButtonRight, Release, RightRelease},
		{ButtonUp, Press, UpPress},
		{ButtonUp, Release, UpRelease},
		{ButtonDown, Press, DownPress},
		{ButtonDown, Release, DownRelease},
	}
	for _, c := range cases {
		t.Run(c.want.String(), func(t *testing.T) {
			assert.Equal(t, c.want, Normalize(c.button, c.edge))
		})
	}

	assert.Panics(t, func() { Normalize(ButtonDown+1, Press) })
	assert.Panics(t, func() { Normalize(ButtonLeft, Release+1) })
}

func TestInputStateLastEdgeWins(t *testing.T) {
	in := NewInputState()
	assert.Equal(t, LeftRelease, in.Current())

	in.Push(ButtonRight, Press)
	in.Push(ButtonUp, Press)
	assert.Equal(t, UpPress, in.Current())

	in.Set(DownRelease)
	assert.Equal(t, DownRelease, in.Current())
	assert.Panics(t, func() { in.Set(numActions) })
}

func TestParseButtonAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseButtonAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseButtonAction("jump")
	assert.Error(t, err)
}
