package cmd

import (
	"github.com/spf13/cobra"
)

// FeaturesCmd groups the catalog management subcommands.
var FeaturesCmd = &cobra.Command{
	Use:   "features",
	Short: "Manage the feature catalog",
	Long: `Manages the catalog of feature identifiers used for password derivation.

The catalog stores only public metadata: names, identifiers, algorithms,
timestamps, and hints. It never stores passwords or the master secret.`,
}

func init() {
	FeaturesCmd.AddCommand(featuresAddCmd)
	FeaturesCmd.AddCommand(featuresListCmd)
	FeaturesCmd.AddCommand(featuresRemoveCmd)
	FeaturesCmd.AddCommand(featuresSetAlgorithmCmd)
}
