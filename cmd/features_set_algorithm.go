package cmd

import (
	"fmt"

	"saltpass/internal/audit"
	"saltpass/internal/configs"
	"saltpass/internal/password"
	"saltpass/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var setAlgorithmYes bool

func init() {
	featuresSetAlgorithmCmd.Flags().BoolVarP(&setAlgorithmYes, "yes", "y", false,
		"acknowledge that the derived password for this identifier will change")
}

var featuresSetAlgorithmCmd = &cobra.Command{
	Use:   "set-algorithm <identifier> <algorithm>",
	Short: "Change the derivation algorithm for a feature",
	Long: `Changes the derivation algorithm recorded for a feature.

The algorithm is part of the derivation input: changing it produces a
DIFFERENT password for the same identifier and master secret. Because of
that, this command refuses to run without --yes.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := args[0]

		alg, err := password.ParseAlgorithm(args[1])
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		if !setAlgorithmYes {
			Logger.WarnfUser("Changing the algorithm changes the password derived for %s", identifier)
			fmt.Println("Re-run with " + ui.Code.Sprint("--yes") + " to accept that any password previously derived under the old algorithm becomes unreachable from the catalog entry.")
			return nil
		}

		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		st, err := config.OpenStore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open store: %v", err)
		}
		if st.Encrypted() {
			sec, err := readMasterSecret()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read master secret: %v", err)
			}
			defer sec.Release()
			st.SetSecret(sec)
		}

		cat, err := st.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load feature catalog: %v", err)
		}

		if err := cat.SetAlgorithm(identifier, alg); err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}
		if err := st.Save(cat); err != nil {
			return Logger.ErrorfAndReturn("failed to save feature catalog: %v", err)
		}

		audit.Log(audit.Entry{
			StoreUUID:  config.Store.UUID,
			Operation:  "features.set-algorithm",
			Identifier: identifier,
			Algorithm:  alg.String(),
		})

		fmt.Println(color.GreenString("✓") + " Algorithm for " + ui.Highlight.Sprint(identifier) +
			" set to " + ui.Highlight.Sprint(alg.String()))
		return nil
	},
}
