package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedCharacterSpec(t *testing.T) {
	spec, err := LoadCharacterSpec("")
	require.NoError(t, err)
	assert.Equal(t, "gary", spec.Name)

	cfg, err := spec.MovementConfig()
	require.NoError(t, err)

	def := movement.DefaultConfig()
	assert.Equal(t, def.Gravity, cfg.Gravity)
	assert.Equal(t, def.WalkLeftVelocity, cfg.WalkLeftVelocity)
	assert.Equal(t, def.WalkRightVelocity, cfg.WalkRightVelocity)
	assert.Equal(t, def.JumpVelocity, cfg.JumpVelocity)
	assert.Equal(t, def.PhaseInterval, cfg.PhaseInterval)
	assert.Equal(t, def.Walk, cfg.Walk)
	assert.Equal(t, def.Table.Entries(), cfg.Table.Entries())
}

func TestMovementConfigErrors(t *testing.T) {
	base := func() CharacterSpec {
		spec, err := LoadCharacterSpec("")
		require.NoError(t, err)
		return *spec
	}

	cases := []struct {
		name   string
		mutate func(*CharacterSpec)
	}{
		{"unknown_walk_sprite", func(s *CharacterSpec) { s.WalkSequence.Left[0] = "cartwheel" }},
		{"jump_in_walk", func(s *CharacterSpec) { s.WalkSequence.Right[0] = "jump" }},
		{"uneven_sequences", func(s *CharacterSpec) { s.WalkSequence.Left = s.WalkSequence.Left[:3] }},
		{"bad_override_action", func(s *CharacterSpec) {
			s.Transitions = []TransitionSpec{{Action: "spin", From: "stand", To: "duck"}}
		}},
		{"bad_override_state", func(s *CharacterSpec) {
			s.Transitions = []TransitionSpec{{Action: "down_release", From: "duck", To: "crawl"}}
		}},
		{"zero_interval", func(s *CharacterSpec) { s.PhaseInterval = 0 }},
		{"gravity_up", func(s *CharacterSpec) { s.Gravity.Y = 9.8 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := base()
			tc.mutate(&spec)
			_, err := spec.MovementConfig()
			assert.Error(t, err)
		})
	}
}

func TestTransitionOverride(t *testing.T) {
	spec, err := LoadCharacterSpec("")
	require.NoError(t, err)
	spec.Transitions = []TransitionSpec{{Action: "down_release", From: "duck", To: "walk_left"}}

	cfg, err := spec.MovementConfig()
	require.NoError(t, err)
	assert.Equal(t, movement.WalkLeft, cfg.Table.Next(movement.Duck, movement.DownRelease))
	assert.Equal(t, movement.Stand, cfg.Table.Next(movement.Stand, movement.DownRelease))
}

func TestLoadPrefersFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("name: custom\nwalk_speed: 0.5\nscale: {x: 1, y: 2}\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	spec, err := LoadCharacterSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", spec.Name)
	assert.Equal(t, 0.5, spec.WalkSpeed)
	assert.Equal(t, cp.Vector{X: 1, Y: 2}, spec.Scale.Vector())

	_, err = LoadCharacterSpec(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: `"#ff8000"`, want: color.RGBA{R: 255, G: 128, A: 255}},
		{in: `"#ff800080"`, want: color.RGBA{R: 255, G: 128, A: 128}},
		{in: `SkyBlue`, want: colornames.Skyblue},
		{in: `"#fff"`, wantErr: true},
		{in: `notacolor`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Color)
		})
	}
}

func TestSpriteColorsFillsDefaults(t *testing.T) {
	r := RenderSpec{Sprites: map[string]*YAMLColor{"jump": {Color: colornames.Red}}}
	colors, err := r.SpriteColors()
	require.NoError(t, err)
	assert.Len(t, colors, len(movement.Sprites()))
	assert.Equal(t, colornames.Red, colors[movement.SpriteJump])
	assert.Equal(t, colornames.Wheat, colors[movement.SpriteIdle])

	r.Sprites["cape"] = &YAMLColor{Color: colornames.Red}
	_, err = r.SpriteColors()
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"demo", "demo.tengo", "scripts/demo.tengo", "prefabs/scripts/demo.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "input := func")
	}
}
