package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expectedDir := filepath.Join(home, DefaultConfigDirName)
	if got := DefaultConfigDir(); got != expectedDir {
		t.Fatalf("DefaultConfigDir() = %q, want %q", got, expectedDir)
	}

	expectedConfig := filepath.Join(expectedDir, DefaultConfigFileName)
	if got := DefaultConfigPath(); got != expectedConfig {
		t.Fatalf("DefaultConfigPath() = %q, want %q", got, expectedConfig)
	}

	expectedLog := filepath.Join(expectedDir, DefaultLogFileName)
	if got := DefaultLogPath(); got != expectedLog {
		t.Fatalf("DefaultLogPath() = %q, want %q", got, expectedLog)
	}
}

func TestLoaderExplicitConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "efitui.yaml")
	data := "console:\n  firmware: memory\n  columns: 40\n  rows: 12\n  keys: [down, q]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := NewLoader()
	loader.SetConfigFile(path)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Console.Columns != 40 || cfg.Console.Rows != 12 {
		t.Fatalf("geometry = %dx%d, want 40x12", cfg.Console.Columns, cfg.Console.Rows)
	}
	if len(cfg.Console.Keys) != 2 || cfg.Console.Keys[1] != "q" {
		t.Fatalf("Console.Keys = %v, want [down q]", cfg.Console.Keys)
	}
	if !cfg.Console.CursorToggle {
		t.Fatalf("Console.CursorToggle default lost")
	}
}
