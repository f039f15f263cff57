package cmd

import (
	"fmt"

	"saltpass/internal/configs"
	"saltpass/internal/store"
	"saltpass/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	initFormat    string
	initEncrypted bool
)

func init() {
	initCmd.Flags().StringVarP(&initFormat, "format", "f", "toml", "catalog serialization format (toml or json)")
	initCmd.Flags().BoolVarP(&initEncrypted, "encrypted", "e", false, "encrypt the catalog at rest")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the SaltPass data directory and config",
	Long: `Creates the SaltPass data directory (default ~/.saltpass, override with
SALTPASS_HOME) and writes the initial configuration. Running init again is
safe; existing configuration is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, ok := store.FormatFromName(initFormat)
		if !ok {
			return Logger.ErrorfAndReturn("unknown format %q (expected toml or json)", initFormat)
		}

		config, err := configs.Ensure()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize config: %v", err)
		}

		if cmd.Flags().Changed("format") {
			config.Store.Format = format.String()
		}
		if cmd.Flags().Changed("encrypted") {
			config.Store.Encrypted = initEncrypted
		}
		if err := configs.Save(config); err != nil {
			return Logger.ErrorfAndReturn("failed to save config: %v", err)
		}

		storePath, err := config.StorePath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve store path: %v", err)
		}

		// Greet the operator with ASCII art using go-figure
		fmt.Println()
		banner := figure.NewColorFigure("SaltPass", "alligator2", "green", true)
		banner.Print()
		fmt.Println()

		fmt.Println(color.GreenString("✓") + " SaltPass initialized")
		fmt.Println("    store:     " + ui.Path.Sprint(storePath))
		fmt.Println("    format:    " + config.Store.Format)
		fmt.Printf("    encrypted: %t\n", config.Store.Encrypted)
		fmt.Println(ui.Info.Sprint("→") + " Add your first feature with " + ui.Code.Sprint("saltpass features add"))
		return nil
	},
}
