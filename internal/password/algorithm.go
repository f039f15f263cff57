package password

import (
	"fmt"

	saltpasserrors "saltpass/internal/errors"
)

// Algorithm selects one of the supported key-derivation algorithms. The set
// is closed: derivation dispatches over it exhaustively and rejects anything
// else, so a typo in a stored catalog can never silently fall back to a
// different algorithm.
type Algorithm string

const (
	// HmacSha256 is a keyed hash of the identifier. Fast, and the default.
	HmacSha256 Algorithm = "hmac-sha256"

	// Argon2i is the side-channel-resistant Argon2 variant.
	Argon2i Algorithm = "argon2i"

	// Argon2id is the hybrid Argon2 variant recommended for new features.
	Argon2id Algorithm = "argon2id"

	// Pbkdf2 is PBKDF2 over HMAC-SHA256.
	Pbkdf2 Algorithm = "pbkdf2"

	// Scrypt is the scrypt memory-hard function.
	Scrypt Algorithm = "scrypt"
)

// Derivation cost constants. These are part of the derivation contract:
// changing any of them changes every password derived under the affected
// algorithm, so they are pinned here and never configurable per call.
const (
	argon2iTime   = 3
	argon2idTime  = 1
	argon2Memory  = 64 * 1024 // KiB
	argon2Threads = 4
	pbkdf2Iters   = 600_000
	scryptN       = 32768
	scryptR       = 8
	scryptP       = 1
	derivedKeyLen = 32
	minSaltLen    = 8
)

// Algorithms returns the supported algorithm tags in a stable order,
// suitable for interactive pickers and help text.
func Algorithms() []Algorithm {
	return []Algorithm{HmacSha256, Argon2i, Argon2id, Pbkdf2, Scrypt}
}

// Default returns the algorithm used when the operator does not choose one.
func Default() Algorithm {
	return HmacSha256
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case HmacSha256, Argon2i, Argon2id, Pbkdf2, Scrypt:
		return true
	}
	return false
}

// String returns the stable tag used in stored catalogs and CLI flags.
func (a Algorithm) String() string {
	return string(a)
}

// MemoryHard reports whether derivation under a is deliberately slow and
// memory-intensive. Callers use this to decide whether to show a spinner.
func (a Algorithm) MemoryHard() bool {
	switch a {
	case Argon2i, Argon2id, Scrypt:
		return true
	}
	return false
}

// ParseAlgorithm maps a tag string to an Algorithm.
func ParseAlgorithm(tag string) (Algorithm, error) {
	a := Algorithm(tag)
	if !a.Valid() {
		return "", fmt.Errorf("%w: unknown algorithm %q", saltpasserrors.ErrAlgorithmParameter, tag)
	}
	return a, nil
}
