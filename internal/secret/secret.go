package secret

import (
	saltpasserrors "saltpass/internal/errors"
)

// Secret holds the master secret in memory for the duration of a session.
// It is never serialized and its backing bytes are overwritten with zeros
// on Release. Consumers borrow the bytes via Bytes() for the duration of a
// single derivation call and must not retain the slice.
type Secret struct {
	value    []byte
	released bool
}

// New creates a Secret that takes ownership of raw. The caller must not
// use raw after passing it in; Release will wipe it.
func New(raw []byte) (*Secret, error) {
	if len(raw) == 0 {
		return nil, saltpasserrors.ErrEmptySecret
	}
	return &Secret{value: raw}, nil
}

// Bytes returns a read-only view of the secret bytes, or nil if the secret
// has been released. The returned slice aliases the internal buffer: do not
// modify it, and do not hold it past the borrowing call.
func (s *Secret) Bytes() []byte {
	if s.released {
		return nil
	}
	return s.value
}

// Released reports whether the secret has been wiped.
func (s *Secret) Released() bool {
	return s.released
}

// Release overwrites the backing memory with zeros and marks the secret
// unusable. It is safe to call more than once. Callers defer this on every
// path that creates a Secret.
func (s *Secret) Release() {
	if s.released {
		return
	}
	Wipe(s.value)
	s.value = nil
	s.released = true
}

// Wipe overwrites b with zeros. Used for intermediate key material (derived
// raw bytes, symmetric keys) that must not outlive the call that produced it.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
