package movement

import (
	"errors"
	"fmt"
)

var ErrIncompleteTable = errors.New("movement: transition table is not total")

type transitionKey struct {
	action ButtonAction
	state  MovementState
}

// Transition is a single table row entry.
type Transition struct {
	Action ButtonAction
	From   MovementState
	To     MovementState
}

// TransitionTable maps every (action, state) pair to the next state.
type TransitionTable struct {
	next map[transitionKey]MovementState
}

// NewTransitionTable builds a table from explicit entries and rejects it
// unless every pair in the domain is mapped to a valid state.
func NewTransitionTable(entries []Transition) (*TransitionTable, error) {
	t := &TransitionTable{next: make(map[transitionKey]MovementState, len(entries))}
	var errs []error
	for _, e := range entries {
		if !e.Action.Valid() || !e.From.Valid() || !e.To.Valid() {
			errs = append(errs, fmt.Errorf("invalid entry %s/%s -> %s", e.Action, e.From, e.To))
			continue
		}
		key := transitionKey{action: e.Action, state: e.From}
		if prev, ok := t.next[key]; ok && prev != e.To {
			errs = append(errs, fmt.Errorf("conflicting entry %s/%s: %s and %s", e.Action, e.From, prev, e.To))
			continue
		}
		t.next[key] = e.To
	}
	if err := t.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

// Validate reports every unmapped pair.
func (t *TransitionTable) Validate() error {
	var missing []error
	for _, a := range Actions() {
		for _, s := range States() {
			if _, ok := t.next[transitionKey{action: a, state: s}]; !ok {
				missing = append(missing, fmt.Errorf("%s/%s unmapped", a, s))
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrIncompleteTable, errors.Join(missing...))
}

// Next returns the state reached from state on action. A miss is a contract
// violation since tables are only built through NewTransitionTable.
func (t *TransitionTable) Next(state MovementState, action ButtonAction) MovementState {
	mustState(state)
	mustAction(action)
	next, ok := t.next[transitionKey{action: action, state: state}]
	if !ok {
		panic(fmt.Sprintf("movement: no transition for %s/%s", action, state))
	}
	return next
}

// Entries lists the table in action-major, state-minor order.
func (t *TransitionTable) Entries() []Transition {
	out := make([]Transition, 0, len(t.next))
	for _, a := range Actions() {
		for _, s := range States() {
			out = append(out, Transition{Action: a, From: s, To: t.Next(s, a)})
		}
	}
	return out
}

// row expands one action's targets, given in States() order.
func row(a ButtonAction, targets ...MovementState) []Transition {
	out := make([]Transition, 0, len(targets))
	for i, to := range targets {
		out = append(out, Transition{Action: a, From: MovementState(i), To: to})
	}
	return out
}

// DefaultTransitions is the platformer policy. Airborne columns map to
// themselves on every action; only physics moves them on. Releasing down
// while ducking always stands, even when a direction is still held.
func DefaultTransitions() []Transition {
	var entries []Transition
	//                          Stand      WalkLeft   WalkRight  JumpUp  JumpLeft  JumpRight  Fall  Duck
	entries = append(entries, row(LeftPress, WalkLeft, WalkLeft, WalkLeft, JumpUp, JumpLeft, JumpRight, Fall, WalkLeft)...)
	entries = append(entries, row(LeftRelease, Stand, Stand, WalkRight, JumpUp, JumpLeft, JumpRight, Fall, Duck)...)
	entries = append(entries, row(RightPress, WalkRight, WalkRight, WalkRight, JumpUp, JumpLeft, JumpRight, Fall, WalkRight)...)
	entries = append(entries, row(RightRelease, Stand, WalkLeft, Stand, JumpUp, JumpLeft, JumpRight, Fall, Duck)...)
	entries = append(entries, row(UpPress, JumpUp, JumpLeft, JumpRight, JumpUp, JumpLeft, JumpRight, Fall, JumpUp)...)
	entries = append(entries, row(UpRelease, Stand, WalkLeft, WalkRight, JumpUp, JumpLeft, JumpRight, Fall, Duck)...)
	entries = append(entries, row(DownPress, Duck, Duck, Duck, JumpUp, JumpLeft, JumpRight, Fall, Duck)...)
	entries = append(entries, row(DownRelease, Stand, WalkLeft, WalkRight, JumpUp, JumpLeft, JumpRight, Fall, Stand)...)
	return entries
}

// DefaultTable builds the default policy. It panics if the policy itself is
// not total.
func DefaultTable() *TransitionTable {
	t, err := NewTransitionTable(DefaultTransitions())
	if err != nil {
		panic(err)
	}
	return t
}
