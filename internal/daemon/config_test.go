package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("SPIRITHUB_HOME", t.TempDir())

	cfg := DefaultConfig()
	if cfg.API.Port != 8321 {
		t.Errorf("API.Port = %d, want 8321", cfg.API.Port)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Errorf("Store.Driver = %q, want sqlite", cfg.Store.Driver)
	}
	if cfg.Region.Default != "om" {
		t.Errorf("Region.Default = %q, want om", cfg.Region.Default)
	}
	if !cfg.Geo.Enabled {
		t.Error("Geo.Enabled should default to true")
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("SPIRITHUB_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("missing config file should yield defaults, got host %q", cfg.API.Host)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("SPIRITHUB_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 9000
	cfg.Store.Driver = "postgres"
	cfg.Geo.Enabled = false

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.API.Port != 9000 {
		t.Errorf("API.Port = %d, want 9000", loaded.API.Port)
	}
	if loaded.Store.Driver != "postgres" {
		t.Errorf("Store.Driver = %q, want postgres", loaded.Store.Driver)
	}
	if loaded.Geo.Enabled {
		t.Error("Geo.Enabled should round-trip as false")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SPIRITHUB_HOME", home)

	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should fail on malformed TOML")
	}
}
