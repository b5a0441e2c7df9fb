// Command server runs the dormshare API.
//
// Usage:
//
//	server [serve] [-c config.yml]   start the HTTP server (default)
//	server migrate [-c config.yml]   apply database migrations and exit
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/dormshare/internal/config"
	"github.com/mmynk/dormshare/pkg/logging"
)

func main() {
	var (
		configPath string
		cfg        *config.Config
	)

	rootCmd := &cobra.Command{
		Use:           "server",
		Short:         "Household expense, chore and board API",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			logging.SetupWithOptions(logging.Options{
				Level: logging.ParseLevel(cfg.LogLevel),
				JSON:  cfg.IsProduction(),
			})
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	load := func() *config.Config { return cfg }
	serve := serveCommand(load)
	rootCmd.RunE = serve.RunE
	rootCmd.AddCommand(serve, migrateCommand(load))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
