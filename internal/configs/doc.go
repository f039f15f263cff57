// Package configs manages SaltPass configuration.
//
// Configuration is stored in TOML format at $SALTPASS_HOME/config.toml
// (default ~/.saltpass/config.toml) and holds only non-secret preferences:
//
//   - Store settings: serialization format, encrypted-at-rest flag, an
//     optional path override, and a generated store UUID identifying the
//     installation in the audit log.
//   - Generation defaults: password length, derivation algorithm, and
//     whether generated passwords are copied to the clipboard.
//
// The master secret never appears here, and neither do derived passwords.
//
// Tests point SALTPASS_HOME at a temporary directory to isolate state.
package configs
