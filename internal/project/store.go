package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/floorcomposer/floorcomposer/internal/catalog"
)

// DefaultProfilesPath returns the default file path for user-imported
// deck profiles.
func DefaultProfilesPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.json"), nil
}

// SaveProfiles writes user-imported deck profiles to a JSON file,
// creating missing parent directories.
func SaveProfiles(path string, profiles []catalog.DeckProfile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProfiles reads user-imported deck profiles from a JSON file. A
// missing file yields an empty list with no error.
func LoadProfiles(path string) ([]catalog.DeckProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []catalog.DeckProfile{}, nil
		}
		return nil, err
	}
	var profiles []catalog.DeckProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// LoadCatalog builds the working catalog: built-in products plus any
// user-imported profiles from the given path.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	c := catalog.New()
	profiles, err := LoadProfiles(path)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		c.Add(p)
	}
	return c, nil
}
