package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/mines/internal/config"
)

var (
	log = logrus.New()

	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper engine with a terminal and a websocket shell",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return setupLogging()
	},
	SilenceUsage: true,
}

func init() {
	const usage = "config file path"
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", usage)
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
