package cmd

import (
	"bytes"
	"os"

	"saltpass/internal/audit"
	"saltpass/internal/configs"
	"saltpass/internal/secret"
	"saltpass/internal/store"
	"saltpass/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt the feature catalog at rest",
	Long: `Converts the on-disk feature catalog to its encrypted form. The encryption
key is derived from your master secret; there is no separate password and
no recovery if the secret is lost.

The secret is prompted twice to guard against locking the store with a typo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		if config.Store.Encrypted {
			Logger.WarnfUser("Store is already encrypted")
			return nil
		}

		sec, err := readMasterSecret()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read master secret: %v", err)
		}
		defer sec.Release()

		confirm, err := secret.ReadInteractive("Confirm your master secret (hidden): ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read confirmation: %v", err)
		}
		match := bytes.Equal(sec.Bytes(), confirm.Bytes())
		confirm.Release()
		if !match {
			return Logger.ErrorfAndReturn("secrets do not match, store left untouched")
		}

		plainStore, err := config.OpenStore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open store: %v", err)
		}
		cat, err := plainStore.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load feature catalog: %v", err)
		}

		spinner, cleanup := startSpinner("Encrypting store...", verbose)
		defer cleanup()

		encPath := plainStore.Path() + ".enc"
		encStore := store.New(encPath, config.StoreFormat(), true)
		encStore.SetSecret(sec)
		if err := encStore.Save(cat); err != nil {
			return Logger.ErrorfAndReturn("failed to write encrypted store: %v", err)
		}

		if err := os.Remove(plainStore.Path()); err != nil && !os.IsNotExist(err) {
			Logger.Warnf("Failed to remove plaintext store at %s: %v", plainStore.Path(), err)
		}

		config.Store.Encrypted = true
		if config.Store.Path != "" {
			config.Store.Path = encPath
		}
		if err := configs.Save(config); err != nil {
			return Logger.ErrorfAndReturn("failed to save config: %v", err)
		}

		audit.Log(audit.Entry{
			StoreUUID: config.Store.UUID,
			Operation: "encrypt",
			Count:     cat.Len(),
		})

		spinner.FinalMSG = color.GreenString("✓") + " Store encrypted at " + ui.Path.Sprint(encPath) + "\n" +
			ui.Info.Sprint("→") + " Keep your master secret safe: it is the only way to open this store"
		return nil
	},
}
