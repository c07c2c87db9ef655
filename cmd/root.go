// Package cmd wires the mentoring backend commands: serve (default), migrate and seed.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mentoring_backend/internals/configs"
	"mentoring_backend/internals/logging"
)

const serviceName = "mentoring-backend"

// NewRootCommand builds the command tree. Running it without a subcommand serves HTTP.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mentoring",
		Short:         "Mentoring program CRM backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			bootstrap()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newSeedCommand())
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logging.L().Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap loads the env and builds the logger; every command needs both.
func bootstrap() {
	fromFile := configs.LoadEnv()
	logging.Setup(logging.Config{
		Level:       configs.App.LogLevel,
		Format:      configs.App.LogFormat,
		ServiceName: serviceName,
		Environment: configs.App.Environment,
	})
	logging.L().Debug().Bool("dotenv", fromFile).Msg("configuration loaded")
}
