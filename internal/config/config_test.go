package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScrambleLength != 25 {
		t.Errorf("ScrambleLength = %d, want 25", cfg.ScrambleLength)
	}
	if cfg.Method != "cfop" {
		t.Errorf("Method = %q, want cfop", cfg.Method)
	}
	if cfg.Optimized {
		t.Error("Optimized should default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "db_path: /tmp/test.db\noptimized: true\nscramble_length: 30\nmethod: beginner\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if !cfg.Optimized {
		t.Error("Optimized should be true")
	}
	if cfg.ScrambleLength != 30 {
		t.Errorf("ScrambleLength = %d, want 30", cfg.ScrambleLength)
	}
	if cfg.Method != "beginner" {
		t.Errorf("Method = %q, want beginner", cfg.Method)
	}
}

func TestLoad_BadScrambleLengthFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scramble_length: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScrambleLength != 25 {
		t.Errorf("ScrambleLength = %d, want fallback 25", cfg.ScrambleLength)
	}
}
