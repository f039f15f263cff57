package secret

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadInteractive prompts the user for the master secret without echoing
// input, and wraps the result in a Secret. Returns an error if stdin is not
// a terminal, so the secret can never be sourced from a pipe by accident.
func ReadInteractive(prompt string) (*Secret, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read master secret: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read master secret: %w", err)
	}

	return New(raw)
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
