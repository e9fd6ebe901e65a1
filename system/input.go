package system

import "github.com/milk9111/platformer/movement"

// KeyEdge is a raw press or release of a directional button.
type KeyEdge struct {
	Button movement.Button
	Edge   movement.Edge
}

// KeySource reports the edges observed since the previous frame, in arrival
// order, appended to dst.
type KeySource interface {
	Edges(dst []KeyEdge) []KeyEdge
}

// InputSystem normalizes polled key edges into the world's current action.
// When several edges arrive in one frame the last one wins.
type InputSystem struct {
	keys KeySource
	buf  []KeyEdge
}

func NewInputSystem(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys, buf: make([]KeyEdge, 0, 8)}
}

func (i *InputSystem) Update(w *World) {
	if i == nil || i.keys == nil || w == nil || w.Input == nil {
		return
	}
	i.buf = i.keys.Edges(i.buf[:0])
	for _, e := range i.buf {
		w.Input.Push(e.Button, e.Edge)
	}
}
