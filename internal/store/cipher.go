package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	saltpasserrors "saltpass/internal/errors"
	"saltpass/internal/secret"

	"golang.org/x/crypto/scrypt"
)

// Encrypted stores are AES-256-GCM blobs. The symmetric key is derived from
// the master secret with scrypt under a fixed domain-separation salt, so the
// store key can never collide with any password derived for a feature, and
// the same secret always opens the same store.
const (
	blobPrefix = "SALTPASS1."

	storeKDFSalt = "saltpass/store/v1"
	storeScryptN = 32768
	storeScryptR = 8
	storeScryptP = 1
	storeKeyLen  = 32
)

// deriveStoreKey derives the 32-byte store key from the master secret.
// The caller wipes the returned key after use.
func deriveStoreKey(sec *secret.Secret) ([]byte, error) {
	raw := sec.Bytes()
	if raw == nil {
		return nil, fmt.Errorf("%w: secret has been released", saltpasserrors.ErrEmptySecret)
	}
	key, err := scrypt.Key(raw, []byte(storeKDFSalt), storeScryptN, storeScryptR, storeScryptP, storeKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive store key: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// Encrypt seals a serialized catalog under a key derived from the master
// secret. Every call uses a fresh random nonce, so encrypting the same
// catalog twice produces different blobs. The result is an opaque armored
// blob: version prefix, then base64 of nonce || ciphertext || tag.
func Encrypt(plaintext []byte, sec *secret.Secret) ([]byte, error) {
	key, err := deriveStoreKey(sec)
	if err != nil {
		return nil, err
	}
	defer secret.Wipe(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return []byte(blobPrefix + base64.StdEncoding.EncodeToString(sealed)), nil
}

// Decrypt opens an encrypted store blob. Any failure - wrong secret,
// truncated file, flipped bit, bad armor - comes back as the same bare
// ErrAuthenticationFailure. The caller must not be able to tell a wrong
// secret from a corrupted file.
func Decrypt(blob []byte, sec *secret.Secret) ([]byte, error) {
	key, err := deriveStoreKey(sec)
	if err != nil {
		return nil, err
	}
	defer secret.Wipe(key)

	armored := string(blob)
	if !strings.HasPrefix(armored, blobPrefix) {
		return nil, saltpasserrors.ErrAuthenticationFailure
	}

	sealed, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(armored, blobPrefix))
	if err != nil {
		return nil, saltpasserrors.ErrAuthenticationFailure
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, saltpasserrors.ErrAuthenticationFailure
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, saltpasserrors.ErrAuthenticationFailure
	}

	return plaintext, nil
}
