package secret

import (
	"errors"
	"testing"

	saltpasserrors "saltpass/internal/errors"
)

func TestNew_EmptySecret(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, saltpasserrors.ErrEmptySecret) {
		t.Fatalf("Expected ErrEmptySecret, got: %v", err)
	}

	_, err = New([]byte{})
	if !errors.Is(err, saltpasserrors.ErrEmptySecret) {
		t.Fatalf("Expected ErrEmptySecret for empty slice, got: %v", err)
	}
}

func TestBytes_BorrowedView(t *testing.T) {
	raw := []byte("correct-horse")
	sec, err := New(raw)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	defer sec.Release()

	if string(sec.Bytes()) != "correct-horse" {
		t.Errorf("Bytes() = %q, want %q", sec.Bytes(), "correct-horse")
	}
}

func TestRelease_WipesBackingMemory(t *testing.T) {
	raw := []byte("correct-horse")
	sec, err := New(raw)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	sec.Release()

	// The original buffer must be zeroed, not just dereferenced.
	for i, b := range raw {
		if b != 0 {
			t.Fatalf("Backing byte %d not wiped: %d", i, b)
		}
	}
	if sec.Bytes() != nil {
		t.Errorf("Bytes() after Release should return nil")
	}
	if !sec.Released() {
		t.Errorf("Released() should report true after Release")
	}
}

func TestRelease_Idempotent(t *testing.T) {
	sec, err := New([]byte("secret"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	sec.Release()
	sec.Release() // Must not panic or misbehave.

	if sec.Bytes() != nil {
		t.Errorf("Bytes() after double Release should return nil")
	}
}

func TestWipe(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	Wipe(buf)
	for i, b := range buf {
		if b != 0 {
			t.Errorf("Byte %d not wiped: %d", i, b)
		}
	}
}
