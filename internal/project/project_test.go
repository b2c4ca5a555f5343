package project

import (
	"path/filepath"
	"testing"

	"github.com/floorcomposer/floorcomposer/internal/catalog"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultAppConfig()
	cfg.CanvasWidth = 1200
	cfg.DefaultProfile = "cofrastra 40"
	cfg.DefaultDepth = 0.15
	cfg.RecentFiles = []string{"/tmp/a.svg", "/tmp/b.dxf"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.CanvasWidth != 1200 {
		t.Errorf("expected CanvasWidth=1200, got %d", loaded.CanvasWidth)
	}
	if loaded.DefaultProfile != "cofrastra 40" {
		t.Errorf("expected cofrastra 40, got %q", loaded.DefaultProfile)
	}
	if len(loaded.RecentFiles) != 2 {
		t.Errorf("expected 2 recent files, got %d", len(loaded.RecentFiles))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "nonexistent", "config.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := DefaultAppConfig()
	if cfg.CanvasWidth != defaults.CanvasWidth || cfg.DefaultProfile != defaults.DefaultProfile {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestAddRecentFile(t *testing.T) {
	cfg := DefaultAppConfig()
	for _, f := range []string{"a", "b", "c", "a"} {
		cfg.AddRecentFile(f)
	}
	if len(cfg.RecentFiles) != 3 {
		t.Fatalf("expected 3 recent files, got %d", len(cfg.RecentFiles))
	}
	if cfg.RecentFiles[0] != "a" || cfg.RecentFiles[1] != "c" {
		t.Errorf("unexpected order: %v", cfg.RecentFiles)
	}

	for i := 0; i < 20; i++ {
		cfg.AddRecentFile(filepath.Join("out", string(rune('a'+i))))
	}
	if len(cfg.RecentFiles) != maxRecentFiles {
		t.Errorf("recent list should be bounded at %d, got %d", maxRecentFiles, len(cfg.RecentFiles))
	}
}

func TestSaveAndLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	profiles := []catalog.DeckProfile{
		{Reference: "hibond 55", Manufacturer: "Dimond", ProfileWidth: 0.940, WaveWidth: 0.188, BottomWidth: 0.050, TopWidth: 0.120, Height: 0.055},
	}
	if err := SaveProfiles(path, profiles); err != nil {
		t.Fatalf("SaveProfiles failed: %v", err)
	}

	loaded, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Reference != "hibond 55" {
		t.Errorf("unexpected profiles: %+v", loaded)
	}
}

func TestLoadProfilesMissingFile(t *testing.T) {
	profiles, err := LoadProfiles(filepath.Join(t.TempDir(), "profiles.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("expected empty list, got %+v", profiles)
	}
}

func TestLoadCatalogMergesUserProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := SaveProfiles(path, []catalog.DeckProfile{
		{Reference: "hibond 55", ProfileWidth: 0.940, WaveWidth: 0.188, BottomWidth: 0.050, TopWidth: 0.120, Height: 0.055},
	}); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.List()) != 4 {
		t.Errorf("expected 3 built-in + 1 imported profiles, got %d", len(c.List()))
	}
	if _, err := c.Get("Hibond 55"); err != nil {
		t.Errorf("imported profile not found: %v", err)
	}
}
