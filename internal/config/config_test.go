package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "light" || cfg.WeekStart != "monday" || cfg.DBPath != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "db_path: /tmp/x.db\ntheme: dark\nweek_start: sunday\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.Theme != "dark" || cfg.WeekStart != "sunday" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadNormalizesUnknownValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("theme: neon\nweek_start: saturday\n"), 0o644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "light" || cfg.WeekStart != "monday" {
		t.Fatalf("unknown values should fall back: %+v", cfg)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte(":\n\t- bad"), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
