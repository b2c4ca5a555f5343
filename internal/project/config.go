// Package project persists user-level application state: configuration
// and imported deck profiles, stored as JSON under the platform config
// directory.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// maxRecentFiles bounds the recent output list in the config file.
const maxRecentFiles = 10

// AppConfig holds application-level settings.
type AppConfig struct {
	CanvasWidth    int      `json:"canvas_width"`
	CanvasHeight   int      `json:"canvas_height"`
	Margin         int      `json:"margin"`
	DefaultProfile string   `json:"default_profile"`
	DefaultDepth   float64  `json:"default_depth_m"`
	OutputDir      string   `json:"output_dir"`
	RecentFiles    []string `json:"recent_files"`
}

// DefaultAppConfig returns the configuration used when no config file
// exists yet.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		CanvasWidth:    800,
		CanvasHeight:   600,
		Margin:         50,
		DefaultProfile: "cofraplus 60+",
		DefaultDepth:   0.12,
		OutputDir:      ".",
		RecentFiles:    []string{},
	}
}

// AddRecentFile prepends a path to the recent output list, deduplicating
// and keeping the list bounded.
func (c *AppConfig) AddRecentFile(path string) {
	files := []string{path}
	for _, f := range c.RecentFiles {
		if f != path {
			files = append(files, f)
		}
	}
	if len(files) > maxRecentFiles {
		files = files[:maxRecentFiles]
	}
	c.RecentFiles = files
}

// DefaultConfigDir returns the application's directory under the
// platform config directory.
func DefaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "floorcomposer"), nil
}

// DefaultConfigPath returns the default path for the config file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SaveAppConfig persists an AppConfig to the given path as JSON,
// creating missing parent directories.
func SaveAppConfig(path string, config AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path. A missing file
// yields DefaultAppConfig with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	if config.RecentFiles == nil {
		config.RecentFiles = []string{}
	}
	return config, nil
}
