package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"saltpass/internal/password"
	"saltpass/internal/store"
)

// Config is the persisted SaltPass configuration, stored as TOML at
// $SALTPASS_HOME/config.toml. It holds only non-secret preferences.
type Config struct {
	Store    StoreConfig    `toml:"store"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// StoreConfig describes where and how the feature catalog is persisted.
type StoreConfig struct {
	UUID      string `toml:"store_uuid"`
	Format    string `toml:"format"`
	Encrypted bool   `toml:"encrypted"`
	Path      string `toml:"path,omitempty"` // Empty means the default location.
}

// DefaultsConfig holds per-operator generation preferences.
type DefaultsConfig struct {
	Length    int    `toml:"length"`
	Algorithm string `toml:"algorithm"`
	Clipboard bool   `toml:"clipboard"`
}

// NewConfig returns a config with generated identity and sensible defaults.
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			UUID:   uuid.New().String(),
			Format: store.TOML.String(),
		},
		Defaults: DefaultsConfig{
			Length:    16,
			Algorithm: password.Default().String(),
			Clipboard: true,
		},
	}
}

func configPath() (string, error) {
	dir, err := store.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration, returning defaults if no file exists yet.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewConfig(), nil
	}

	config := &Config{}
	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.applyFallbacks()

	return config, nil
}

// Save writes the configuration to disk.
func Save(config *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Ensure loads the config and persists it if it did not exist or was
// missing its store UUID, so every installation ends up with a stable
// identity.
func Ensure() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	_, statErr := os.Stat(path)

	config, err := Load()
	if err != nil {
		return nil, err
	}

	dirty := os.IsNotExist(statErr)
	if config.Store.UUID == "" {
		config.Store.UUID = uuid.New().String()
		dirty = true
	}
	if dirty {
		if err := Save(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// applyFallbacks fills zero values left by hand-edited config files.
func (c *Config) applyFallbacks() {
	if c.Store.Format == "" {
		c.Store.Format = store.TOML.String()
	}
	if c.Defaults.Length == 0 {
		c.Defaults.Length = 16
	}
	if c.Defaults.Algorithm == "" {
		c.Defaults.Algorithm = password.Default().String()
	}
}

// StoreFormat resolves the configured serialization format.
func (c *Config) StoreFormat() store.Format {
	format, ok := store.FormatFromName(c.Store.Format)
	if !ok {
		return store.TOML
	}
	return format
}

// StorePath resolves the configured store file location, falling back to
// the conventional default when no explicit path is set.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	return store.DefaultPath(c.StoreFormat(), c.Store.Encrypted)
}

// OpenStore builds the store described by this config.
func (c *Config) OpenStore() (*store.Store, error) {
	path, err := c.StorePath()
	if err != nil {
		return nil, err
	}
	return store.New(path, c.StoreFormat(), c.Store.Encrypted), nil
}

// DefaultAlgorithm resolves the configured default derivation algorithm.
func (c *Config) DefaultAlgorithm() password.Algorithm {
	alg, err := password.ParseAlgorithm(c.Defaults.Algorithm)
	if err != nil {
		return password.Default()
	}
	return alg
}
