package configs

import (
	"os"
	"path/filepath"
	"testing"

	"saltpass/internal/password"
	"saltpass/internal/store"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	t.Setenv("SALTPASS_HOME", t.TempDir())

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.Store.Format != "toml" {
		t.Errorf("Default format = %q, want toml", config.Store.Format)
	}
	if config.Defaults.Length != 16 {
		t.Errorf("Default length = %d, want 16", config.Defaults.Length)
	}
	if config.DefaultAlgorithm() != password.HmacSha256 {
		t.Errorf("Default algorithm = %q", config.DefaultAlgorithm())
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("SALTPASS_HOME", t.TempDir())

	config := NewConfig()
	config.Store.Format = "json"
	config.Store.Encrypted = true
	config.Defaults.Length = 24
	config.Defaults.Algorithm = "argon2id"

	if err := Save(config); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Store.UUID != config.Store.UUID {
		t.Errorf("UUID not preserved: %q vs %q", loaded.Store.UUID, config.Store.UUID)
	}
	if loaded.StoreFormat() != store.JSON {
		t.Errorf("Format not preserved: %q", loaded.Store.Format)
	}
	if !loaded.Store.Encrypted {
		t.Errorf("Encrypted flag not preserved")
	}
	if loaded.Defaults.Length != 24 {
		t.Errorf("Length not preserved: %d", loaded.Defaults.Length)
	}
	if loaded.DefaultAlgorithm() != password.Argon2id {
		t.Errorf("Algorithm not preserved: %q", loaded.Defaults.Algorithm)
	}
}

func TestEnsure_GeneratesStoreUUID(t *testing.T) {
	t.Setenv("SALTPASS_HOME", t.TempDir())

	config, err := Ensure()
	if err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if config.Store.UUID == "" {
		t.Fatalf("Ensure left the store UUID empty")
	}

	// A second Ensure must keep the same identity.
	again, err := Ensure()
	if err != nil {
		t.Fatalf("Second Ensure failed: %v", err)
	}
	if again.Store.UUID != config.Store.UUID {
		t.Errorf("Store UUID changed across Ensure calls")
	}
}

func TestLoad_HandEditedConfigGetsFallbacks(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SALTPASS_HOME", tmpDir)

	// A minimal hand-written config missing most fields.
	content := "[store]\nstore_uuid = \"abc\"\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.Store.Format != "toml" {
		t.Errorf("Missing format not defaulted: %q", config.Store.Format)
	}
	if config.Defaults.Length != 16 {
		t.Errorf("Missing length not defaulted: %d", config.Defaults.Length)
	}
	if config.DefaultAlgorithm() != password.HmacSha256 {
		t.Errorf("Missing algorithm not defaulted: %q", config.DefaultAlgorithm())
	}
}

func TestStorePath_Override(t *testing.T) {
	t.Setenv("SALTPASS_HOME", t.TempDir())

	config := NewConfig()
	config.Store.Path = "/tmp/custom/features.toml"

	path, err := config.StorePath()
	if err != nil {
		t.Fatalf("StorePath failed: %v", err)
	}
	if path != "/tmp/custom/features.toml" {
		t.Errorf("StorePath = %q, want the override", path)
	}
}

func TestStoreFormat_UnknownFallsBackToTOML(t *testing.T) {
	config := NewConfig()
	config.Store.Format = "yaml"

	if config.StoreFormat() != store.TOML {
		t.Errorf("Unknown format should fall back to TOML")
	}
}
