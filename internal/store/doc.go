// Package store persists the feature catalog to disk.
//
// Two serialization formats are supported, TOML (default, human-readable)
// and JSON, with the format inferred from configuration rather than file
// content. Either format can additionally be encrypted at rest.
//
// # Encrypted stores
//
// An encrypted store file holds a single opaque blob: a version prefix
// followed by base64 of nonce || ciphertext || tag from AES-256-GCM. The
// symmetric key is derived from the master secret via scrypt under a fixed
// domain-separation salt; no key material is stored anywhere. Opening the
// store with the wrong secret fails the GCM tag check and is reported with
// the same error as a corrupted or tampered file.
//
// A fresh random nonce is generated per write. This is the only use of
// randomness in SaltPass; password derivation itself is fully
// deterministic.
package store
