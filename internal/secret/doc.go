// Package secret manages the in-memory master secret for a SaltPass session.
//
// The master secret is the single value the operator memorizes. It is read
// once from the terminal (hidden input), held in a Secret handle for the
// lifetime of the command, and wiped before the process exits. No code path
// writes it to disk, the audit log, or command output.
//
// # Lifecycle
//
//	sec, err := secret.ReadInteractive("Enter your master secret: ")
//	if err != nil { ... }
//	defer sec.Release()
//
// Release overwrites the backing bytes synchronously; it does not rely on
// garbage-collection timing. Every command that obtains a Secret defers
// Release so the wipe happens on normal return and on error paths alike.
//
// Consumers never receive an owned copy: Bytes() returns a borrowed view
// that is only valid until Release. The derivation and store packages use
// the view for the duration of a single call and wipe any derived
// intermediate material with Wipe().
package secret
