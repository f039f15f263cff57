// Package errors defines sentinel errors for SaltPass operations.
//
// These errors are checked with errors.Is() throughout the codebase.
// Functions wrap them with additional context using fmt.Errorf and %w,
// so callers can both match the category and read the details.
//
// The taxonomy is deliberately small: every user-visible failure maps to
// exactly one category, except that a wrong master secret and a corrupted
// encrypted store are intentionally merged under ErrAuthenticationFailure
// so the tool never leaks which of the two occurred.
package errors
