// Package password implements the derivation pipeline at the heart of
// SaltPass: (master secret, feature identifier, algorithm, length) in,
// policy-compliant password out.
//
// # Pipeline
//
// Derivation happens in two pure stages:
//
//  1. Derive produces 32 bytes of raw key material using the selected
//     algorithm with the master secret as the key/password and the feature
//     identifier as the message/salt.
//  2. Format encodes those bytes into a printable password of the requested
//     length and deterministically enforces the character-class policy
//     (at least one uppercase letter, digit, and special character).
//
// Both stages are deterministic: there is no randomness anywhere in the
// pipeline, so a password can always be re-derived from the same inputs and
// nothing needs to be stored.
//
// # Algorithms
//
// Five algorithms are supported: hmac-sha256 (fast keyed hash, the
// default), argon2i, argon2id, pbkdf2, and scrypt. The memory-hard ones
// block the calling goroutine for the duration of derivation; that is the
// security property, not a defect. Cost parameters are pinned constants
// because changing them changes every derived password.
//
// Identifiers shorter than 8 bytes are expanded to their SHA-256 digest
// before use as a salt, so short identifiers like "io" still satisfy every
// algorithm's salt minimum without losing determinism.
package password
