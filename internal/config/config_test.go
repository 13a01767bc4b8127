package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", cfg.MaxDepth, DefaultMaxDepth)
	}
	if cfg.ScrambleMoves != DefaultScrambleMoves {
		t.Errorf("ScrambleMoves = %d, want %d", cfg.ScrambleMoves, DefaultScrambleMoves)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"max_depth": 11, "scramble_moves": 12, "db_path": "/tmp/cube.db"}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxDepth != 11 {
		t.Errorf("MaxDepth = %d, want 11", cfg.MaxDepth)
	}
	if cfg.ScrambleMoves != 12 {
		t.Errorf("ScrambleMoves = %d, want 12", cfg.ScrambleMoves)
	}
	if cfg.DBPath != "/tmp/cube.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"max_depth": 10}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxDepth != 10 {
		t.Errorf("MaxDepth = %d, want 10", cfg.MaxDepth)
	}
	if cfg.ScrambleMoves != DefaultScrambleMoves {
		t.Errorf("ScrambleMoves = %d, want default %d", cfg.ScrambleMoves, DefaultScrambleMoves)
	}
}
