package configs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SaveTOML writes data to a TOML file, creating parent directories as
// needed. The config never holds secret material, but 0600 keeps catalog
// locations and preferences private to the operator anyway.
func SaveTOML(path string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML decodes a TOML file into data.
func LoadTOML(path string, data interface{}) error {
	_, err := toml.DecodeFile(path, data)
	return err
}
