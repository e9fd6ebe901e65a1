package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableIsTotal(t *testing.T) {
	table := DefaultTable()
	require.NoError(t, table.Validate())

	for _, a := range Actions() {
		for _, s := range States() {
			next := table.Next(s, a)
			assert.Truef(t, next.Valid(), "%s/%s -> %s", a, s, next)
		}
	}
	assert.Len(t, table.Entries(), len(Actions())*len(States()))
}

func TestNewTransitionTableRejectsGaps(t *testing.T) {
	cases := []struct {
		name    string
		entries func() []Transition
	}{
		{"empty", func() []Transition { return nil }},
		{"missing_duck_column", func() []Transition {
			var out []Transition
			for _, e := range DefaultTransitions() {
				if e.From != Duck {
					out = append(out, e)
				}
			}
			return out
		}},
		{"out_of_domain_target", func() []Transition {
			out := DefaultTransitions()
			out[0].To = numStates
			return out
		}},
		{"conflict", func() []Transition {
			out := DefaultTransitions()
			return append(out, Transition{Action: LeftPress, From: Stand, To: Duck})
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			table, err := NewTransitionTable(c.entries())
			require.Error(t, err)
			assert.Nil(t, table)
		})
	}
}

func TestDefaultTablePolicy(t *testing.T) {
	table := DefaultTable()
	cases := []struct {
		from   MovementState
		action ButtonAction
		want   MovementState
	}{
		{Stand, LeftPress, WalkLeft},
		{WalkRight, LeftPress, WalkLeft},
		{Duck, LeftPress, WalkLeft},
		{WalkLeft, LeftRelease, Stand},
		{WalkRight, LeftRelease, WalkRight},
		{WalkLeft, RightRelease, WalkLeft},
		{Stand, UpPress, JumpUp},
		{WalkLeft, UpPress, JumpLeft},
		{WalkRight, UpPress, JumpRight},
		{Duck, UpPress, JumpUp},
		{Stand, DownPress, Duck},
		{WalkLeft, DownPress, Duck},
		{WalkRight, DownPress, Duck},
		{Duck, DownRelease, Stand},
		{Duck, LeftRelease, Duck},
	}
	for _, c := range cases {
		t.Run(c.from.String()+"/"+c.action.String(), func(t *testing.T) {
			assert.Equal(t, c.want, table.Next(c.from, c.action))
		})
	}
}

func TestAirborneStatesIgnoreInput(t *testing.T) {
	table := DefaultTable()
	for _, s := range States() {
		if !s.Airborne() {
			continue
		}
		for _, a := range Actions() {
			assert.Equalf(t, s, table.Next(s, a), "%s/%s", s, a)
		}
	}
}

func TestNextPanicsOnInvalidInput(t *testing.T) {
	table := DefaultTable()
	assert.Panics(t, func() { table.Next(numStates, LeftPress) })
	assert.Panics(t, func() { table.Next(Stand, numActions) })
}
