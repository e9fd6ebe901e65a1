package main

import (
	"errors"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug  bool   `help:"Enable debug logging and the on-screen state overlay."`
	Watch  bool   `help:"Reload the character prefab and input script when they change on disk."`
	Config string `help:"Character prefab (name under prefabs/ or a path)." default:"character.yaml"`
	Script string `help:"Drive input from a tengo script under prefabs/scripts (attract mode)."`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("platformer"),
		kong.Description("a 2D platformer avatar driven by a movement state machine"),
		kong.UsageOnError(),
	)

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	game, err := NewGame(Options{
		Config: CLI.Config,
		Script: CLI.Script,
		Watch:  CLI.Watch,
		Debug:  CLI.Debug,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not start game")
	}
	defer game.Close()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Platformer")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
