package cmd

import (
	"os"

	logger "saltpass/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "saltpass",
		Short: "SaltPass - deterministic password derivation from a master secret",
		Long: `SaltPass derives strong passwords from a master secret you memorize and a
public feature identifier (like a domain name). Nothing derived is ever
stored: the same secret and identifier always reproduce the same password.

The feature catalog (identifiers and metadata only) is kept on disk in TOML
or JSON, optionally encrypted with a key derived from the master secret.

Run 'saltpass init' to set up, 'saltpass features add' to register an
identifier, and 'saltpass generate' to derive a password.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing saltpass with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(FeaturesCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
