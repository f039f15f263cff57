package cmd

import (
	"fmt"

	"saltpass/internal/audit"
	"saltpass/internal/configs"
	"saltpass/internal/secret"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the feature catalog as TOML",
	Long: `Prints the full feature catalog as TOML regardless of the on-disk format,
decrypting it first if the store is encrypted. Useful for backups and for
inspecting what the tool has stored — which is only public metadata.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		st, err := config.OpenStore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open store: %v", err)
		}

		var sec *secret.Secret
		if st.Encrypted() {
			sec, err = readMasterSecret()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read master secret: %v", err)
			}
			defer sec.Release()
			st.SetSecret(sec)
		}

		rendered, err := st.ExportTOML()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to export catalog: %v", err)
		}

		audit.Log(audit.Entry{
			StoreUUID: config.Store.UUID,
			Operation: "export",
		})

		fmt.Print(rendered)
		return nil
	},
}
