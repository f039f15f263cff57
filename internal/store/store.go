package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"saltpass/internal/catalog"
	saltpasserrors "saltpass/internal/errors"
	"saltpass/internal/secret"
)

// storedCatalog is the serialization shape shared by both formats.
type storedCatalog struct {
	Features []catalog.Feature `toml:"features" json:"features"`
}

// Store persists a feature catalog to a single file, in TOML or JSON,
// optionally passed through the encrypted store adapter. It holds no
// catalog state itself; callers Load, mutate, and Save.
type Store struct {
	path      string
	format    Format
	encrypted bool
	sec       *secret.Secret
}

// New creates a store for the given file path.
func New(path string, format Format, encrypted bool) *Store {
	return &Store{path: path, format: format, encrypted: encrypted}
}

// SetSecret attaches the master secret used to encrypt and decrypt the
// store. The store borrows the handle; it never releases it.
func (s *Store) SetSecret(sec *secret.Secret) {
	s.sec = sec
}

// Path returns the file backing this store.
func (s *Store) Path() string {
	return s.path
}

// Encrypted reports whether the store is encrypted at rest.
func (s *Store) Encrypted() bool {
	return s.encrypted
}

// DefaultPath returns the conventional store location,
// $SALTPASS_HOME/features.<ext> (with .enc appended for encrypted stores),
// creating the directory if needed. SALTPASS_HOME defaults to ~/.saltpass.
func DefaultPath(format Format, encrypted bool) (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	ext := format.Extension()
	if encrypted {
		ext += ".enc"
	}
	return filepath.Join(dir, "features."+ext), nil
}

// HomeDir returns the SaltPass data directory without creating it.
func HomeDir() (string, error) {
	if dir := os.Getenv("SALTPASS_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".saltpass"), nil
}

// Load reads the catalog from disk. A missing file yields an empty catalog,
// so a fresh installation works without an init step. Decryption failures
// surface as ErrAuthenticationFailure, malformed content as ErrSerialization.
func (s *Store) Load() (*catalog.Catalog, error) {
	content, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return catalog.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if s.encrypted {
		if s.sec == nil {
			return nil, fmt.Errorf("%w: no secret attached to encrypted store", saltpasserrors.ErrEmptySecret)
		}
		content, err = Decrypt(content, s.sec)
		if err != nil {
			return nil, err
		}
	}

	return decodeCatalog(content, s.format)
}

// Save writes the catalog to disk atomically enough for a single local
// operator: serialize, optionally encrypt, then write with 0600.
func (s *Store) Save(c *catalog.Catalog) error {
	content, err := encodeCatalog(c, s.format)
	if err != nil {
		return err
	}

	if s.encrypted {
		if s.sec == nil {
			return fmt.Errorf("%w: no secret attached to encrypted store", saltpasserrors.ErrEmptySecret)
		}
		content, err = Encrypt(content, s.sec)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

// ExportTOML loads the catalog (decrypting if necessary) and renders it as
// TOML regardless of the on-disk format, for viewing and backup.
func (s *Store) ExportTOML() (string, error) {
	c, err := s.Load()
	if err != nil {
		return "", err
	}
	return RenderTOML(c)
}

// RenderTOML renders an in-memory catalog as TOML.
func RenderTOML(c *catalog.Catalog) (string, error) {
	content, err := encodeCatalog(c, TOML)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func encodeCatalog(c *catalog.Catalog, format Format) ([]byte, error) {
	stored := storedCatalog{Features: c.List()}

	switch format {
	case JSON:
		data, err := json.MarshalIndent(stored, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", saltpasserrors.ErrSerialization, err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(stored); err != nil {
			return nil, fmt.Errorf("%w: %v", saltpasserrors.ErrSerialization, err)
		}
		return buf.Bytes(), nil
	}
}

func decodeCatalog(content []byte, format Format) (*catalog.Catalog, error) {
	var stored storedCatalog

	switch format {
	case JSON:
		if err := json.Unmarshal(content, &stored); err != nil {
			return nil, fmt.Errorf("%w: %v", saltpasserrors.ErrSerialization, err)
		}
	default:
		if err := toml.Unmarshal(content, &stored); err != nil {
			return nil, fmt.Errorf("%w: %v", saltpasserrors.ErrSerialization, err)
		}
	}

	for _, f := range stored.Features {
		if !f.Algorithm.Valid() {
			return nil, fmt.Errorf("%w: feature %q has unknown algorithm %q",
				saltpasserrors.ErrSerialization, f.Identifier, f.Algorithm)
		}
	}

	c, err := catalog.FromFeatures(stored.Features)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", saltpasserrors.ErrSerialization, err)
	}
	return c, nil
}
