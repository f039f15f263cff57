package cmd

import (
	"os"
	"strings"

	"saltpass/internal/audit"
	"saltpass/internal/configs"
	"saltpass/internal/store"
	"saltpass/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Store the feature catalog in plaintext again",
	Long: `Converts an encrypted feature catalog back to its plaintext form. Requires
the master secret the store was encrypted under; a wrong secret fails the
authentication check and the store is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		if !config.Store.Encrypted {
			Logger.WarnfUser("Store is not encrypted")
			return nil
		}

		sec, err := readMasterSecret()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read master secret: %v", err)
		}
		defer sec.Release()

		encStore, err := config.OpenStore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open store: %v", err)
		}
		encStore.SetSecret(sec)

		cat, err := encStore.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open encrypted store: %v", err)
		}

		spinner, cleanup := startSpinner("Decrypting store...", verbose)
		defer cleanup()

		plainPath := strings.TrimSuffix(encStore.Path(), ".enc")
		plainStore := store.New(plainPath, config.StoreFormat(), false)
		if err := plainStore.Save(cat); err != nil {
			return Logger.ErrorfAndReturn("failed to write plaintext store: %v", err)
		}

		if plainPath != encStore.Path() {
			if err := os.Remove(encStore.Path()); err != nil && !os.IsNotExist(err) {
				Logger.Warnf("Failed to remove encrypted store at %s: %v", encStore.Path(), err)
			}
		}

		config.Store.Encrypted = false
		if config.Store.Path != "" {
			config.Store.Path = plainPath
		}
		if err := configs.Save(config); err != nil {
			return Logger.ErrorfAndReturn("failed to save config: %v", err)
		}

		audit.Log(audit.Entry{
			StoreUUID: config.Store.UUID,
			Operation: "decrypt",
			Count:     cat.Len(),
		})

		spinner.FinalMSG = color.GreenString("✓") + " Store decrypted to " + ui.Path.Sprint(plainPath) + "\n" +
			ui.Warning.Sprint("!") + " Feature identifiers are now readable on disk"
		return nil
	},
}
