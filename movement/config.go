package movement

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var ErrInvalidConfig = errors.New("movement: invalid config")

// Config holds the fixed per-character constants.
type Config struct {
	Start cp.Vector
	Scale cp.Vector

	Gravity           cp.Vector
	WalkLeftVelocity  cp.Vector
	WalkRightVelocity cp.Vector
	JumpVelocity      cp.Vector

	PhaseInterval float64
	Walk          WalkSequence
	Table         *TransitionTable
}

func DefaultConfig() Config {
	return Config{
		Scale:             cp.Vector{X: 0.1, Y: 0.1},
		Gravity:           cp.Vector{X: 0, Y: -4.905},
		WalkLeftVelocity:  cp.Vector{X: -0.2, Y: 0},
		WalkRightVelocity: cp.Vector{X: 0.2, Y: 0},
		JumpVelocity:      cp.Vector{X: 0, Y: 2.5},
		PhaseInterval:     0.1,
		Walk:              DefaultWalkSequence(),
		Table:             DefaultTable(),
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.PhaseInterval <= 0 {
		errs = append(errs, fmt.Errorf("phase interval must be positive, got %v", c.PhaseInterval))
	}
	if c.Gravity.Y >= 0 {
		errs = append(errs, fmt.Errorf("gravity must point down, got %v", c.Gravity.Y))
	}
	if c.JumpVelocity.Y <= 0 {
		errs = append(errs, fmt.Errorf("jump velocity must point up, got %v", c.JumpVelocity.Y))
	}
	// Characters start in Stand, which never applies gravity.
	if c.Start.Y != 0 {
		errs = append(errs, fmt.Errorf("start position must be on the ground, got y=%v", c.Start.Y))
	}
	if c.Scale.X <= 0 || c.Scale.Y <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %v", c.Scale))
	}
	if c.Walk.Len() == 0 {
		errs = append(errs, ErrEmptyWalkSequence)
	}
	if c.Table == nil {
		errs = append(errs, errors.New("transition table is nil"))
	} else if err := c.Table.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
