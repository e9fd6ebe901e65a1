package movement

import "fmt"

// MovementState is the discrete mode governing a character's physics and
// animation. Exactly one is active per character.
type MovementState uint8

const (
	Stand MovementState = iota
	WalkLeft
	WalkRight
	JumpUp
	JumpLeft
	JumpRight
	Fall
	Duck

	numStates
)

var stateNames = [numStates]string{
	Stand:     "stand",
	WalkLeft:  "walk_left",
	WalkRight: "walk_right",
	JumpUp:    "jump_up",
	JumpLeft:  "jump_left",
	JumpRight: "jump_right",
	Fall:      "fall",
	Duck:      "duck",
}

// States returns every movement state in declaration order.
func States() []MovementState {
	out := make([]MovementState, 0, numStates)
	for s := Stand; s < numStates; s++ {
		out = append(out, s)
	}
	return out
}

func (s MovementState) Valid() bool {
	return s < numStates
}

func (s MovementState) String() string {
	if !s.Valid() {
		return fmt.Sprintf("MovementState(%d)", uint8(s))
	}
	return stateNames[s]
}

// Airborne reports whether the state ignores button input.
func (s MovementState) Airborne() bool {
	switch s {
	case JumpUp, JumpLeft, JumpRight, Fall:
		return true
	}
	return false
}

func (s MovementState) Grounded() bool {
	return s.Valid() && !s.Airborne()
}

func mustState(s MovementState) {
	if !s.Valid() {
		panic(fmt.Sprintf("movement: invalid state %d", uint8(s)))
	}
}

// ParseMovementState resolves names such as "walk_left".
func ParseMovementState(name string) (MovementState, error) {
	for s, n := range stateNames {
		if n == name {
			return MovementState(s), nil
		}
	}
	return 0, fmt.Errorf("movement: unknown state %q", name)
}
