package config

import (
	"testing"
)

func TestDefaultConfigUsesConstants(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()

	if cfg.Console.Firmware != DefaultFirmware {
		t.Fatalf("Console.Firmware = %q, want %q", cfg.Console.Firmware, DefaultFirmware)
	}
	if cfg.Console.Columns != DefaultColumns {
		t.Fatalf("Console.Columns = %d, want %d", cfg.Console.Columns, DefaultColumns)
	}
	if cfg.Console.Rows != DefaultRows {
		t.Fatalf("Console.Rows = %d, want %d", cfg.Console.Rows, DefaultRows)
	}
	if !cfg.Console.CursorToggle {
		t.Fatalf("Console.CursorToggle = false, want true")
	}
	if cfg.Log.File != DefaultLogPath() {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, DefaultLogPath())
	}
}

func TestConsoleValidate(t *testing.T) {
	cfg := DefaultConfig().Console
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	cfg.Firmware = "uefi"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown firmware")
	}
	cfg.Firmware = FirmwareMemory
	cfg.Rows = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty memory geometry")
	}
}

func TestLoaderReadsEnvAndFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("EFITUI_CONSOLE_FIRMWARE", FirmwareMemory)

	loader := NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Console.Firmware != FirmwareMemory {
		t.Fatalf("Console.Firmware = %q, want %q", cfg.Console.Firmware, FirmwareMemory)
	}
	if cfg.Console.Rows != DefaultRows {
		t.Fatalf("Console.Rows = %d, want %d", cfg.Console.Rows, DefaultRows)
	}
}
