package efitui

import "pkt.systems/efitui/internal/config"

// Config mirrors the efitui configuration.
type Config = config.Config

// ConsoleConfig selects and shapes the firmware console.
type ConsoleConfig = config.ConsoleConfig

// LogConfig configures the log file.
type LogConfig = config.LogConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = config.DefaultConfigDirName
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = config.DefaultConfigFileName
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = config.DefaultLogFileName

	// FirmwareHost drives the controlling terminal.
	FirmwareHost = config.FirmwareHost
	// FirmwareMemory emulates a console in memory.
	FirmwareMemory = config.FirmwareMemory
	// DefaultFirmware is the firmware used when none is configured.
	DefaultFirmware = config.DefaultFirmware
	// DefaultColumns is the memory firmware column count.
	DefaultColumns = config.DefaultColumns
	// DefaultRows is the memory firmware row count.
	DefaultRows = config.DefaultRows
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}

// DefaultConfig returns default efitui configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	return config.DefaultConfigDir()
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default log path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}
