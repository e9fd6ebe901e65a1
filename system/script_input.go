package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/prefabs"
	"github.com/rs/zerolog"
)

// inputDispatchScript is appended to every input script. Scripts define
// input(frame, t) and return an action name, or nothing to keep the current
// action.
const inputDispatchScript = `
__action = input(__frame, __time)
`

// InputScript is a compiled tengo input driver.
type InputScript struct {
	name     string
	compiled *tengo.Compiled
}

func LoadInputScript(name string) (*InputScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("system: load script %s: %w", name, err)
	}
	return CompileInputScript(name, src)
}

func CompileInputScript(name string, src []byte) (*InputScript, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), inputDispatchScript...))
	_ = script.Add("__frame", 0)
	_ = script.Add("__time", 0.0)
	_ = script.Add("__action", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: compile script %s: %w", name, err)
	}
	return &InputScript{name: name, compiled: compiled}, nil
}

func (s *InputScript) Name() string {
	return s.name
}

// Next runs the script for one frame. ok is false when the script returned
// no action.
func (s *InputScript) Next(frame int, t float64) (action movement.ButtonAction, ok bool, err error) {
	if err := s.compiled.Set("__frame", frame); err != nil {
		return 0, false, err
	}
	if err := s.compiled.Set("__time", t); err != nil {
		return 0, false, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, false, fmt.Errorf("system: run script %s: %w", s.name, err)
	}

	v := s.compiled.Get("__action")
	if v.IsUndefined() {
		return 0, false, nil
	}
	name := v.String()
	if name == "" {
		return 0, false, nil
	}
	action, err = movement.ParseButtonAction(name)
	if err != nil {
		return 0, false, fmt.Errorf("system: script %s frame %d: %w", s.name, frame, err)
	}
	return action, true, nil
}

// ScriptInputSystem drives the world's input from an input script. A script
// that fails is disabled after logging the error once.
type ScriptInputSystem struct {
	script   *InputScript
	logger   zerolog.Logger
	disabled bool
}

func NewScriptInputSystem(script *InputScript, logger zerolog.Logger) *ScriptInputSystem {
	return &ScriptInputSystem{script: script, logger: logger}
}

func (s *ScriptInputSystem) Update(w *World) {
	if s == nil || s.script == nil || s.disabled || w == nil || w.Input == nil {
		return
	}
	action, ok, err := s.script.Next(w.Tick, w.Elapsed)
	if err != nil {
		s.logger.Error().Err(err).Str("script", s.script.Name()).Msg("input script failed, disabling")
		s.disabled = true
		return
	}
	if ok {
		w.Input.Set(action)
	}
}

// SetScript swaps the running script, re-enabling the system.
func (s *ScriptInputSystem) SetScript(script *InputScript) {
	s.script = script
	s.disabled = false
}
