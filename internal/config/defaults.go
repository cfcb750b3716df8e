package config

import "fmt"

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Console: ConsoleConfig{
			Firmware:     DefaultFirmware,
			Columns:      DefaultColumns,
			Rows:         DefaultRows,
			CursorToggle: true,
			Keys:         []string{},
		},
		Log: LogConfig{
			File: DefaultLogPath(),
		},
	}
}

// Validate checks the console settings.
func (c ConsoleConfig) Validate() error {
	switch c.Firmware {
	case FirmwareHost, FirmwareMemory:
	default:
		return fmt.Errorf("unknown firmware %q (want %q or %q)", c.Firmware, FirmwareHost, FirmwareMemory)
	}
	if c.Firmware == FirmwareMemory && (c.Columns <= 0 || c.Rows <= 0) {
		return fmt.Errorf("memory firmware needs a positive geometry, got %dx%d", c.Columns, c.Rows)
	}
	return nil
}
