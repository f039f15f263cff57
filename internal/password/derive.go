package password

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	saltpasserrors "saltpass/internal/errors"
	"saltpass/internal/secret"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Derive produces 32 bytes of raw key material from the master secret, the
// feature identifier, and the chosen algorithm. It is a pure function of its
// inputs: no randomness is involved, so the same (secret, identifier,
// algorithm) triple always yields the same bytes, across runs and restarts.
//
// The caller owns the returned slice and should wipe it with secret.Wipe
// once the formatted password has been produced.
func Derive(sec *secret.Secret, identifier string, alg Algorithm) ([]byte, error) {
	key := sec.Bytes()
	if key == nil {
		return nil, fmt.Errorf("%w: secret has been released", saltpasserrors.ErrEmptySecret)
	}
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier must not be empty", saltpasserrors.ErrAlgorithmParameter)
	}

	switch alg {
	case HmacSha256:
		mac := hmac.New(sha256.New, key)
		mac.Write([]byte(identifier))
		return mac.Sum(nil), nil

	case Argon2i:
		salt := saltFor(identifier)
		return argon2.Key(key, salt, argon2iTime, argon2Memory, argon2Threads, derivedKeyLen), nil

	case Argon2id:
		salt := saltFor(identifier)
		return argon2.IDKey(key, salt, argon2idTime, argon2Memory, argon2Threads, derivedKeyLen), nil

	case Pbkdf2:
		salt := saltFor(identifier)
		return pbkdf2.Key(key, salt, pbkdf2Iters, derivedKeyLen, sha256.New), nil

	case Scrypt:
		salt := saltFor(identifier)
		raw, err := scrypt.Key(key, salt, scryptN, scryptR, scryptP, derivedKeyLen)
		if err != nil {
			return nil, fmt.Errorf("%w: scrypt: %v", saltpasserrors.ErrAlgorithmParameter, err)
		}
		return raw, nil

	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", saltpasserrors.ErrAlgorithmParameter, alg)
	}
}

// saltFor returns the salt bytes for a feature identifier. Identifiers of at
// least minSaltLen bytes are used verbatim. Shorter ones are expanded to
// their full SHA-256 digest so every algorithm sees a salt that satisfies
// its minimum, while staying deterministic per identifier.
func saltFor(identifier string) []byte {
	if len(identifier) >= minSaltLen {
		return []byte(identifier)
	}
	sum := sha256.Sum256([]byte(identifier))
	return sum[:]
}
