// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/config"
	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"
)

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg is the resolved application configuration, populated before any
	// command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expenseninja",
		Short: "A WhatsApp expense bot that categorizes and tracks expenses.",
		Long: `expenseninja is a WhatsApp expense bot. It records expenses sent as chat
messages, classifies each one against a fixed category set and answers
aggregation queries like "how much did I spend on coffee".`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expenseninja!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to initialize configuration")
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetDefaultLogger(Log)
		},
	}

	// Specific classify command flags
	Text string

	// Specific export command flags
	Output string
)

// Init initializes the root command and all flags
func Init() {
	// Flags are registered by each subcommand's init; nothing shared yet.
}
