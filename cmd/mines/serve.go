package main

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/mines/internal/app"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve single-player games over websockets",
		Long: `Serve single-player games over websockets.

Each connection to /v1/game/connect owns one session. Messages are
newline separated commands, replies are JSON snapshots.

Examples:
  mines serve -c config.json
  MINES_ADDR=:9000 mines serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("starting up, mode = ", cfg.Mode)
			return app.New(log, cfg).Start(cmd.Context())
		},
	})
}
