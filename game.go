package main

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
	"github.com/rs/zerolog/log"
)

const (
	baseWidth  = 900
	baseHeight = 900
)

type Options struct {
	Config string
	Script string
	Watch  bool
	Debug  bool
}

type Game struct {
	opts Options

	world     *system.World
	scheduler *system.Scheduler
	scripts   *system.ScriptInputSystem
	clock     *system.Clock
	renderer  *renderer
	watcher   *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadCharacterSpec(opts.Config)
	if err != nil {
		return nil, err
	}
	character, err := buildCharacter(spec, nil)
	if err != nil {
		return nil, err
	}
	rend, err := newRenderer(spec.Render)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:     opts,
		world:    system.NewWorld(character),
		clock:    system.NewClock(spec.Render.MaxFrameDelta),
		renderer: rend,
	}

	g.scheduler = system.NewScheduler()
	if opts.Script != "" {
		script, err := system.LoadInputScript(opts.Script)
		if err != nil {
			return nil, err
		}
		g.scripts = system.NewScriptInputSystem(script, log.Logger)
		g.scheduler.Add(g.scripts)
	}
	g.scheduler.Add(system.NewInputSystem(ebitenKeys{}))
	g.scheduler.Add(system.NewMovementSystem(log.Logger))
	g.scheduler.Add(system.NewAnimationSystem())

	if opts.Watch {
		g.watcher = newPrefabWatcher(opts.Config)
	}

	log.Info().Str("character", spec.Name).Str("script", opts.Script).Bool("watch", g.watcher != nil).Msg("game ready")
	return g, nil
}

// buildCharacter creates a character from the prefab. When prev is set the new
// character starts on the ground below the previous one.
func buildCharacter(spec *prefabs.CharacterSpec, prev *movement.Character) (*movement.Character, error) {
	cfg, err := spec.MovementConfig()
	if err != nil {
		return nil, err
	}
	if prev != nil {
		pos := prev.Body().Position
		cfg.Start = cp.Vector{X: pos.X}
	}
	return movement.NewCharacter(cfg)
}

func newPrefabWatcher(config string) *prefabs.Watcher {
	dirs := []string{"prefabs", filepath.Join("prefabs", "scripts")}
	if dir := filepath.Dir(config); config != "" && dir != "." {
		dirs = append(dirs, dir)
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Warn().Err(err).Strs("dirs", dirs).Msg("prefab watcher unavailable")
		return nil
	}
	return w
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollReloads()
	g.scheduler.Step(g.world, g.clock.Tick())
	return nil
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn().Err(err).Msg("prefab watcher error")
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.SpecChanged:
		config := g.opts.Config
		if config == "" {
			config = prefabs.CharacterFile
		}
		if filepath.Base(change.Path) != filepath.Base(config) {
			return
		}
		if err := g.reloadCharacter(); err != nil {
			log.Error().Err(err).Str("path", change.Path).Msg("character reload failed")
			return
		}
		log.Info().Str("path", change.Path).Msg("character reloaded")
	case prefabs.ScriptChanged:
		if g.scripts == nil {
			return
		}
		script, err := system.LoadInputScript(g.opts.Script)
		if err != nil {
			log.Error().Err(err).Str("path", change.Path).Msg("script reload failed")
			return
		}
		g.scripts.SetScript(script)
		log.Info().Str("path", change.Path).Msg("script reloaded")
	}
}

func (g *Game) reloadCharacter() error {
	spec, err := prefabs.LoadCharacterSpec(g.opts.Config)
	if err != nil {
		return err
	}
	character, err := buildCharacter(spec, g.world.Character)
	if err != nil {
		return err
	}
	rend, err := newRenderer(spec.Render)
	if err != nil {
		return err
	}
	g.renderer.Dispose()
	g.renderer = rend
	g.clock.SetMax(spec.Render.MaxFrameDelta)
	g.world.Character = character
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)

	if g.opts.Debug {
		body := g.world.Character.Body()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f\nstate: %s\naction: %s\nsprite: %s\npos: (%.3f, %.3f)\nvel: (%.3f, %.3f)",
			ebiten.ActualFPS(),
			g.world.Character.State(),
			g.world.Input.Current(),
			g.world.Sprite,
			body.Position.X, body.Position.Y,
			body.Velocity.X, body.Velocity.Y,
		))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	g.renderer.Dispose()
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
