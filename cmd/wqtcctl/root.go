package main

import (
	"os"

	"github.com/spf13/cobra"

	"wqtc-api/internal/config"
	"wqtc-api/internal/logger"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "wqtcctl",
	Short: "Administrative tasks for the WQTC API",
	Long: `wqtcctl - administrative tasks for the WQTC API

Reads the same environment (and .env file) as the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Configure(cfg.LogLevel)
		appConfig = cfg
		return nil
	},
}

// appConfig is loaded before any subcommand runs.
var appConfig *config.Config

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("wqtcctl {{.Version}}\n")
}
