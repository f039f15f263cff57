package cmd

import (
	"fmt"

	"saltpass/internal/configs"
	"saltpass/internal/ui"

	"github.com/spf13/cobra"
)

var featuresListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the features in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		features := cat.List()
		if len(features) == 0 {
			fmt.Println("No features stored yet. Add one with " + ui.Code.Sprint("saltpass features add"))
			return nil
		}

		fmt.Printf("Features in %s:\n\n", ui.Path.Sprint(st.Path()))
		for i, f := range features {
			fmt.Printf("%d. %s %s\n", i+1, f.Name, ui.Muted.Sprintf("%s, %s", f.Identifier, f.Algorithm))
			if f.Hint != "" {
				fmt.Printf("   Hint: %s\n", f.Hint)
			}
			fmt.Printf("   Created: %s\n", f.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}
