package cmd

import (
	"fmt"

	"saltpass/internal/audit"
	"saltpass/internal/configs"
	"saltpass/internal/ui"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var removeYes bool

func init() {
	featuresRemoveCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip the confirmation prompt")
}

var featuresRemoveCmd = &cobra.Command{
	Use:   "remove <identifier>",
	Short: "Remove a feature from the catalog",
	Long: `Removes a feature identifier from the catalog. The password for the
identifier can still be re-derived later by adding it back with the same
algorithm; removal only forgets the metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := args[0]

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

		feature, err := cat.Find(identifier)
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		if !removeYes {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Remove %s", feature.Label()),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := cat.Remove(identifier); err != nil {
			return Logger.ErrorfAndReturn("failed to remove feature: %v", err)
		}
		if err := st.Save(cat); err != nil {
			return Logger.ErrorfAndReturn("failed to save feature catalog: %v", err)
		}

		audit.Log(audit.Entry{
			StoreUUID:  config.Store.UUID,
			Operation:  "features.remove",
			Identifier: identifier,
		})

		fmt.Println(color.GreenString("✓") + " Feature " + ui.Highlight.Sprint(feature.Name) + " removed")
		return nil
	},
}
