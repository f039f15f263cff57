package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"saltpass/internal/configs"
	"saltpass/internal/secret"
	"saltpass/internal/store"
	"saltpass/internal/ui"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines: the cleanup
// function calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// readMasterSecret prompts for the master secret with hidden input. The
// caller must defer Release() on the returned handle.
func readMasterSecret() (*secret.Secret, error) {
	return secret.ReadInteractive("Enter your master secret (hidden): ")
}

// isInteractive reports whether prompts can be shown.
func isInteractive() bool {
	return secret.IsTerminal()
}

// openConfiguredStore loads the config and opens the store it describes,
// attaching sec when the store is encrypted at rest. sec may be nil for
// commands that only touch a plain store.
func openConfiguredStore(sec *secret.Secret) (*configs.Config, *store.Store, error) {
	config, err := configs.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := config.OpenStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	if st.Encrypted() {
		if sec == nil {
			return nil, nil, fmt.Errorf("store is encrypted but no master secret was provided")
		}
		st.SetSecret(sec)
	}

	return config, st, nil
}
