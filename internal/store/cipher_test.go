package store

import (
	"bytes"
	"errors"
	"testing"

	saltpasserrors "saltpass/internal/errors"
	"saltpass/internal/secret"
)

func testSecret(t *testing.T, value string) *secret.Secret {
	t.Helper()
	sec, err := secret.New([]byte(value))
	if err != nil {
		t.Fatalf("Failed to create secret: %v", err)
	}
	t.Cleanup(sec.Release)
	return sec
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	sec := testSecret(t, "correct-horse")
	plaintext := []byte(`[[features]]
name = "GitHub"
identifier = "github.com"
`)

	blob, err := Encrypt(plaintext, sec)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if bytes.Contains(blob, []byte("github.com")) {
		t.Fatalf("Ciphertext contains plaintext")
	}

	got, err := Decrypt(blob, sec)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("Round trip mismatch: %q vs %q", got, plaintext)
	}
}

func TestDecrypt_WrongSecretFailsClosed(t *testing.T) {
	secA := testSecret(t, "correct-horse")
	secB := testSecret(t, "wrong-horse")

	blob, err := Encrypt([]byte("catalog"), secA)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	got, err := Decrypt(blob, secB)
	if !errors.Is(err, saltpasserrors.ErrAuthenticationFailure) {
		t.Fatalf("Expected ErrAuthenticationFailure, got: %v", err)
	}
	if got != nil {
		t.Errorf("Decrypt with wrong secret returned data: %q", got)
	}
}

func TestDecrypt_TamperedBlob(t *testing.T) {
	sec := testSecret(t, "correct-horse")

	blob, err := Encrypt([]byte("catalog"), sec)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Flip a character inside the armored payload.
	tampered := append([]byte{}, blob...)
	i := len(tampered) - 2
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	if _, err := Decrypt(tampered, sec); !errors.Is(err, saltpasserrors.ErrAuthenticationFailure) {
		t.Errorf("Expected ErrAuthenticationFailure for tampered blob, got: %v", err)
	}
}

func TestDecrypt_MalformedBlobs(t *testing.T) {
	sec := testSecret(t, "correct-horse")

	malformed := [][]byte{
		nil,
		[]byte(""),
		[]byte("not an encrypted store"),
		[]byte(blobPrefix),                // Header only.
		[]byte(blobPrefix + "!!!not-b64"), // Bad armor.
		[]byte(blobPrefix + "QUJD"),       // Shorter than a nonce.
	}

	for _, blob := range malformed {
		if _, err := Decrypt(blob, sec); !errors.Is(err, saltpasserrors.ErrAuthenticationFailure) {
			t.Errorf("Decrypt(%q): expected ErrAuthenticationFailure, got: %v", blob, err)
		}
	}
}

func TestEncrypt_FreshNoncePerWrite(t *testing.T) {
	sec := testSecret(t, "correct-horse")
	plaintext := []byte("catalog")

	first, err := Encrypt(plaintext, sec)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	second, err := Encrypt(plaintext, sec)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Errorf("Two encryptions of the same plaintext produced identical blobs")
	}
}

func TestEncrypt_ReleasedSecret(t *testing.T) {
	sec, err := secret.New([]byte("correct-horse"))
	if err != nil {
		t.Fatalf("Failed to create secret: %v", err)
	}
	sec.Release()

	if _, err := Encrypt([]byte("catalog"), sec); !errors.Is(err, saltpasserrors.ErrEmptySecret) {
		t.Errorf("Expected ErrEmptySecret, got: %v", err)
	}
}
