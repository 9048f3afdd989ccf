package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vancomm/mines/internal/app"
	"github.com/vancomm/mines/internal/command"
	"github.com/vancomm/mines/internal/mines"
	"github.com/vancomm/mines/internal/render"
	"github.com/vancomm/mines/internal/session"
)

var (
	gameSeed string
	randSeed uint64
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play in the terminal. Commands are read one per line:

  o X Y    open a cell
  f X Y    cycle flag / mark / unknown
  c X Y    chord a satisfied number
  n [GAME] new game, GAME is a preset or W:H:M
  p, u     pause, resume
  g        redraw

Examples:
  mines play --game expert
  mines play --game 20:10:30 --seed 42`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}

	playCmd.Flags().StringVarP(&gameSeed, "game", "g", "", "Preset name or W:H:M (default from config)")
	playCmd.Flags().Uint64Var(&randSeed, "seed", 0, "Random seed, 0 for a random one (default from config)")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	params := cfg.Game.Params()
	if gameSeed != "" {
		var err error
		if params, err = mines.ParseSeed(gameSeed); err != nil {
			return err
		}
	}
	seed := cfg.Seed
	if randSeed != 0 {
		seed = randSeed
	}

	game, err := session.New(params, app.RandSource(seed)(), nil)
	if err != nil {
		return err
	}
	return play(cmd.Context().Done(), game, cmd.InOrStdin(), cmd.OutOrStdout())
}

func play(done <-chan struct{}, game *session.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, render.Snapshot(game.Snapshot()))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-done:
			return nil
		default:
		}
		for _, line := range command.Lines(scanner.Text()) {
			cmd, err := command.Parse(line)
			if err == nil {
				err = command.Execute(game, cmd)
			}
			if err != nil {
				fmt.Fprintf(out, "%s: %s\n", line, err)
			}
		}
		fmt.Fprintln(out, render.Snapshot(game.Snapshot()))
	}
	return scanner.Err()
}
