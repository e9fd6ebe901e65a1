package movement

import "fmt"

// Button is one of the four directional inputs.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// Edge is the direction of a button transition.
type Edge uint8

const (
	Press Edge = iota
	Release
)

func (e Edge) String() string {
	switch e {
	case Press:
		return "press"
	case Release:
		return "release"
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// ButtonAction is the most recent discrete input edge. There is no "no input"
// value: the last edge stays current until another one arrives.
type ButtonAction uint8

const (
	LeftPress ButtonAction = iota
	LeftRelease
	RightPress
	RightRelease
	UpPress
	UpRelease
	DownPress
	DownRelease

	numActions
)

var actionNames = [numActions]string{
	LeftPress:    "left_press",
	LeftRelease:  "left_release",
	RightPress:   "right_press",
	RightRelease: "right_release",
	UpPress:      "up_press",
	UpRelease:    "up_release",
	DownPress:    "down_press",
	DownRelease:  "down_release",
}

// Actions returns every button action in declaration order.
func Actions() []ButtonAction {
	out := make([]ButtonAction, 0, numActions)
	for a := LeftPress; a < numActions; a++ {
		out = append(out, a)
	}
	return out
}

func (a ButtonAction) Valid() bool {
	return a < numActions
}

func (a ButtonAction) String() string {
	if !a.Valid() {
		return fmt.Sprintf("ButtonAction(%d)", uint8(a))
	}
	return actionNames[a]
}

// Horizontal reports whether the action is a left or right edge.
func (a ButtonAction) Horizontal() bool {
	return a <= RightRelease
}

// ParseButtonAction resolves names such as "left_press".
func ParseButtonAction(name string) (ButtonAction, error) {
	for a, n := range actionNames {
		if n == name {
			return ButtonAction(a), nil
		}
	}
	return 0, fmt.Errorf("movement: unknown button action %q", name)
}

// Normalize maps a raw press/release of a directional button to its action.
func Normalize(b Button, e Edge) ButtonAction {
	if b > ButtonDown {
		panic(fmt.Sprintf("movement: invalid button %d", uint8(b)))
	}
	if e > Release {
		panic(fmt.Sprintf("movement: invalid edge %d", uint8(e)))
	}
	return ButtonAction(uint8(b)*2 + uint8(e))
}

// InputState holds the current button action for one character. Edges are
// applied in arrival order, so the last one in a frame wins.
type InputState struct {
	current ButtonAction
}

// NewInputState starts with LeftRelease, the resting action.
func NewInputState() *InputState {
	return &InputState{current: LeftRelease}
}

func (in *InputState) Push(b Button, e Edge) ButtonAction {
	in.current = Normalize(b, e)
	return in.current
}

func (in *InputState) Set(a ButtonAction) {
	mustAction(a)
	in.current = a
}

func (in *InputState) Current() ButtonAction {
	return in.current
}

func mustAction(a ButtonAction) {
	if !a.Valid() {
		panic(fmt.Sprintf("movement: invalid button action %d", uint8(a)))
	}
}
