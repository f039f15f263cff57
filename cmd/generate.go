package cmd

import (
	"fmt"

	"saltpass/internal/audit"
	"saltpass/internal/catalog"
	"saltpass/internal/password"
	"saltpass/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	generateLength    int
	generateAlgorithm string
	generateCopy      bool
	generateShow      bool
)

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 0, "password length (12-64, default from config)")
	generateCmd.Flags().StringVarP(&generateAlgorithm, "algorithm", "a", "", "override the feature's derivation algorithm for this run")
	generateCmd.Flags().BoolVarP(&generateCopy, "copy", "c", true, "copy the password to the clipboard")
	generateCmd.Flags().BoolVar(&generateShow, "show", true, "print the password to the terminal")
}

var generateCmd = &cobra.Command{
	Use:   "generate [identifier]",
	Short: "Derive the password for a feature",
	Long: `Derives a password from your master secret and a feature identifier.
With no identifier argument, an interactive picker lists the catalog.

The password is printed and optionally copied to the clipboard; it is never
written to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sec, err := readMasterSecret()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read master secret: %v", err)
		}
		defer sec.Release()

		config, st, err := openConfiguredStore(sec)
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		cat, err := st.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load feature catalog: %v", err)
		}

		var feature catalog.Feature
		if len(args) == 1 {
			feature, err = cat.Find(args[0])
			if err != nil {
				return Logger.ErrorfAndReturn("unknown feature %q (add it with %s): %v",
					args[0], ui.Code.Sprint("saltpass features add"), err)
			}
		} else {
			feature, err = pickFeature(cat)
			if err != nil {
				return Logger.ErrorfAndReturn("%v", err)
			}
		}

		alg := feature.Algorithm
		if generateAlgorithm != "" {
			alg, err = password.ParseAlgorithm(generateAlgorithm)
			if err != nil {
				return Logger.ErrorfAndReturn("%v", err)
			}
			if alg != feature.Algorithm {
				Logger.WarnfUser("Overriding algorithm %s with %s: the derived password will differ from the one stored under %s",
					feature.Algorithm, alg, feature.Identifier)
			}
		}

		length := generateLength
		if length == 0 {
			length = config.Defaults.Length
		}

		spinner, cleanup := startSpinner("Deriving password...", verbose)
		defer cleanup()

		derived, err := password.Generate(sec, feature.Identifier, alg, length)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to derive password: %v", err)
		}

		audit.Log(audit.Entry{
			StoreUUID:  config.Store.UUID,
			Operation:  "generate",
			Identifier: feature.Identifier,
			Algorithm:  alg.String(),
			Length:     length,
		})

		finalMessage := color.GreenString("✓") + " Derived password for " + ui.Highlight.Sprint(feature.Label()) + "\n"
		if generateShow {
			finalMessage += "    " + ui.Password.Sprint(derived) + "\n"
		}

		shouldCopy := generateCopy && config.Defaults.Clipboard
		if cmd.Flags().Changed("copy") {
			shouldCopy = generateCopy
		}
		if shouldCopy {
			if err := clipboard.WriteAll(derived); err != nil {
				Logger.Warnf("Failed to copy password to clipboard: %v", err)
			} else {
				finalMessage += ui.Info.Sprint("→") + " Password copied to clipboard\n"
			}
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}

// pickFeature presents an interactive selector over the catalog.
func pickFeature(cat *catalog.Catalog) (catalog.Feature, error) {
	features := cat.List()
	if len(features) == 0 {
		return catalog.Feature{}, fmt.Errorf("no features in the catalog yet (add one with `saltpass features add`)")
	}

	labels := make([]string, len(features))
	for i, f := range features {
		labels[i] = f.Label()
	}

	prompt := promptui.Select{
		Label: "Select a feature",
		Items: labels,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return catalog.Feature{}, fmt.Errorf("selection cancelled: %w", err)
	}
	return features[i], nil
}
