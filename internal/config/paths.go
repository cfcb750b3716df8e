package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the default efitui config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultConfigDirName
	}
	return filepath.Join(home, DefaultConfigDirName)
}

// DefaultConfigPath returns the default efitui config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultConfigFileName)
}

// DefaultLogPath returns the default efitui log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultLogFileName)
}
