package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/movement"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const CharacterFile = "character.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type WalkSequenceSpec struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// TransitionSpec overrides one entry of the default transition table.
type TransitionSpec struct {
	Action string `yaml:"action"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

type RenderSpec struct {
	PixelsPerUnit float64               `yaml:"pixels_per_unit"`
	GroundY       float64               `yaml:"ground_y"`
	SpritePixels  int                   `yaml:"sprite_pixels"`
	MaxFrameDelta float64               `yaml:"max_frame_delta"`
	Background    *YAMLColor            `yaml:"background"`
	Sprites       map[string]*YAMLColor `yaml:"sprites"`
}

type CharacterSpec struct {
	Name          string           `yaml:"name"`
	Start         Vec2Spec         `yaml:"start"`
	Scale         Vec2Spec         `yaml:"scale"`
	Gravity       Vec2Spec         `yaml:"gravity"`
	WalkSpeed     float64          `yaml:"walk_speed"`
	JumpSpeed     float64          `yaml:"jump_speed"`
	PhaseInterval float64          `yaml:"phase_interval"`
	WalkSequence  WalkSequenceSpec `yaml:"walk_sequence"`
	Transitions   []TransitionSpec `yaml:"transitions"`
	Render        RenderSpec       `yaml:"render"`
}

func LoadCharacterSpec(filename string) (*CharacterSpec, error) {
	if filename == "" {
		filename = CharacterFile
	}
	spec, err := LoadSpec[CharacterSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// MovementConfig converts the prefab into movement constants. Walking left
// and right use the same speed mirrored on X.
func (s *CharacterSpec) MovementConfig() (movement.Config, error) {
	cfg := movement.DefaultConfig()
	cfg.Start = s.Start.Vector()
	cfg.Scale = s.Scale.Vector()
	cfg.Gravity = s.Gravity.Vector()
	cfg.WalkLeftVelocity = cp.Vector{X: -s.WalkSpeed}
	cfg.WalkRightVelocity = cp.Vector{X: s.WalkSpeed}
	cfg.JumpVelocity = cp.Vector{Y: s.JumpSpeed}
	cfg.PhaseInterval = s.PhaseInterval

	left, err := parseSprites(s.WalkSequence.Left)
	if err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: walk_sequence.left: %w", err)
	}
	right, err := parseSprites(s.WalkSequence.Right)
	if err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: walk_sequence.right: %w", err)
	}
	if cfg.Walk, err = movement.NewWalkSequence(left, right); err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: walk_sequence: %w", err)
	}

	if cfg.Table, err = s.transitionTable(); err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: transitions: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return cfg, nil
}

func (s *CharacterSpec) transitionTable() (*movement.TransitionTable, error) {
	entries := movement.DefaultTransitions()
	if len(s.Transitions) == 0 {
		return movement.NewTransitionTable(entries)
	}

	var errs []error
	for i, o := range s.Transitions {
		action, err := movement.ParseButtonAction(o.Action)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		from, err := movement.ParseMovementState(o.From)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		to, err := movement.ParseMovementState(o.To)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		for j := range entries {
			if entries[j].Action == action && entries[j].From == from {
				entries[j].To = to
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return movement.NewTransitionTable(entries)
}

func parseSprites(names []string) ([]movement.SpriteSelector, error) {
	out := make([]movement.SpriteSelector, 0, len(names))
	for _, name := range names {
		s, err := movement.ParseSpriteSelector(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

var defaultSpriteColors = map[movement.SpriteSelector]color.Color{
	movement.SpriteIdle:   colornames.Wheat,
	movement.SpriteLeft1:  colornames.Goldenrod,
	movement.SpriteLeft2:  colornames.Darkgoldenrod,
	movement.SpriteRight1: colornames.Khaki,
	movement.SpriteRight2: colornames.Darkkhaki,
	movement.SpriteJump:   colornames.Skyblue,
	movement.SpriteFall:   colornames.Steelblue,
	movement.SpriteDuck:   colornames.Indianred,
}

// SpriteColors returns a placeholder color for every sprite selector,
// falling back to built in colors for sprites the prefab leaves out.
func (r RenderSpec) SpriteColors() (map[movement.SpriteSelector]color.Color, error) {
	out := make(map[movement.SpriteSelector]color.Color, len(defaultSpriteColors))
	for s, c := range defaultSpriteColors {
		out[s] = c
	}
	for name, c := range r.Sprites {
		s, err := movement.ParseSpriteSelector(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: render.sprites: %w", err)
		}
		if c != nil && c.Color != nil {
			out[s] = c.Color
		}
	}
	return out, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if !strings.HasPrefix(value.Value, "#") {
		named, ok := colornames.Map[strings.ToLower(value.Value)]
		if !ok {
			return fmt.Errorf("unknown color name: %s", value.Value)
		}
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(255)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.Color = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
