package config

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".efitui"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "efitui.log"

	// FirmwareHost drives the controlling terminal.
	FirmwareHost = "host"
	// FirmwareMemory emulates a console in memory.
	FirmwareMemory = "memory"
	// DefaultFirmware is the firmware used when none is configured.
	DefaultFirmware = FirmwareHost

	// DefaultColumns is the column count of the default text mode (mode 0).
	DefaultColumns = 80
	// DefaultRows is the row count of the default text mode.
	DefaultRows = 25
)
