package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug  bool    `help:"Log every state transition."`
	Trace  bool    `help:"Print one line per frame to standard output."`
	Config string  `help:"Character prefab (name under prefabs/ or a path)." default:"character.yaml"`
	Script string  `help:"Input script under prefabs/scripts." default:"demo"`
	Frames int     `help:"Number of frames to simulate." default:"480"`
	DT     float64 `name:"dt" help:"Fixed frame delta in seconds." default:"0.0166666667"`
}

func run(out io.Writer) error {
	if CLI.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", CLI.Frames)
	}
	if !(CLI.DT >= 0) {
		return fmt.Errorf("dt must not be negative, got %v", CLI.DT)
	}

	spec, err := prefabs.LoadCharacterSpec(CLI.Config)
	if err != nil {
		return err
	}
	cfg, err := spec.MovementConfig()
	if err != nil {
		return err
	}
	character, err := movement.NewCharacter(cfg)
	if err != nil {
		return err
	}
	script, err := system.LoadInputScript(CLI.Script)
	if err != nil {
		return err
	}

	world := system.NewWorld(character)
	scheduler := system.NewScheduler(
		system.NewScriptInputSystem(script, log.Logger),
		system.NewMovementSystem(log.Logger),
		system.NewAnimationSystem(),
	)

	if CLI.Trace {
		fmt.Fprintln(out, "frame\ttime\taction\tstate\tsprite\tx\ty\tvx\tvy\tphase")
	}
	transitions := 0
	prev := character.State()
	for i := 0; i < CLI.Frames; i++ {
		scheduler.Step(world, CLI.DT)
		if s := world.Character.State(); s != prev {
			transitions++
			prev = s
		}
		if CLI.Trace {
			body := world.Character.Body()
			fmt.Fprintf(out, "%d\t%.4f\t%s\t%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%d\n",
				world.Tick, world.Elapsed, world.Input.Current(), world.Character.State(), world.Sprite,
				body.Position.X, body.Position.Y, body.Velocity.X, body.Velocity.Y,
				world.Character.Cursor().WalkPhaseIndex)
		}
	}

	body := world.Character.Body()
	log.Info().
		Str("character", spec.Name).
		Str("script", script.Name()).
		Int("frames", world.Tick).
		Int("state_changes", transitions).
		Stringer("state", world.Character.State()).
		Float64("x", body.Position.X).
		Float64("y", body.Position.Y).
		Msg("simulation finished")
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("simulate"),
		kong.Description("Run the movement state machine headless against a scripted input."),
		kong.UsageOnError(),
	)
	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}
