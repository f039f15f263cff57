package cmd

import (
	"fmt"
	"strings"

	"saltpass/internal/audit"
	"saltpass/internal/catalog"
	"saltpass/internal/configs"
	"saltpass/internal/password"
	"saltpass/internal/ui"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	addName       string
	addIdentifier string
	addAlgorithm  string
	addHint       string
)

func init() {
	featuresAddCmd.Flags().StringVarP(&addName, "name", "n", "", "display name (e.g. GitHub)")
	featuresAddCmd.Flags().StringVarP(&addIdentifier, "identifier", "i", "", "stable identifier used for derivation (e.g. github.com)")
	featuresAddCmd.Flags().StringVarP(&addAlgorithm, "algorithm", "a", "", "derivation algorithm (default from config)")
	featuresAddCmd.Flags().StringVar(&addHint, "hint", "", "optional hint shown in listings")
}

var featuresAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a feature to the catalog",
	Long: `Adds a feature identifier to the catalog. Values not given as flags are
prompted for interactively. Identifiers must be unique (case-sensitive).

Choose the algorithm carefully: changing it later changes every password
derived for the identifier.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		name, err := promptIfEmpty(addName, "Feature name (e.g. GitHub)")
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		identifier, err := promptIfEmpty(addIdentifier, "Feature identifier (e.g. github.com)")
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}
		if strings.TrimSpace(identifier) == "" {
			return Logger.ErrorfAndReturn("identifier must not be empty")
		}

		alg := config.DefaultAlgorithm()
		if addAlgorithm != "" {
			alg, err = password.ParseAlgorithm(addAlgorithm)
			if err != nil {
				return Logger.ErrorfAndReturn("%v", err)
			}
		} else if !cmd.Flags().Changed("algorithm") && isInteractive() {
			alg, err = pickAlgorithm(alg)
			if err != nil {
				return Logger.ErrorfAndReturn("%v", err)
			}
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

		feature := catalog.NewFeature(name, identifier, alg, addHint)
		if err := cat.Add(feature); err != nil {
			return Logger.ErrorfAndReturn("failed to add feature: %v", err)
		}

		if err := st.Save(cat); err != nil {
			return Logger.ErrorfAndReturn("failed to save feature catalog: %v", err)
		}

		audit.Log(audit.Entry{
			StoreUUID:  config.Store.UUID,
			Operation:  "features.add",
			Identifier: identifier,
			Algorithm:  alg.String(),
		})

		fmt.Println(color.GreenString("✓") + " Feature " + ui.Highlight.Sprint(name) +
			" added with identifier " + ui.Highlight.Sprint(identifier) +
			" " + ui.Muted.Sprintf("algorithm: %s", alg))
		return nil
	},
}

// promptIfEmpty returns value, prompting interactively when it is empty.
func promptIfEmpty(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	if !isInteractive() {
		return "", fmt.Errorf("%s required (pass it as a flag when not running interactively)", strings.ToLower(label))
	}
	prompt := promptui.Prompt{Label: label}
	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return result, nil
}

// pickAlgorithm presents the supported algorithms, with the cursor on the
// configured default.
func pickAlgorithm(def password.Algorithm) (password.Algorithm, error) {
	algorithms := password.Algorithms()
	items := make([]string, len(algorithms))
	cursor := 0
	for i, a := range algorithms {
		items[i] = a.String()
		if a.MemoryHard() {
			items[i] += " (memory-hard, slower)"
		}
		if a == def {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:     "Derivation algorithm",
		Items:     items,
		CursorPos: cursor,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return algorithms[i], nil
}
