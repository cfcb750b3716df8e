package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for efitui.
type Config struct {
	Console ConsoleConfig `mapstructure:"console" yaml:"console"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// ConsoleConfig selects and shapes the firmware console.
type ConsoleConfig struct {
	Firmware     string   `mapstructure:"firmware" yaml:"firmware"`
	Columns      int      `mapstructure:"columns" yaml:"columns"`
	Rows         int      `mapstructure:"rows" yaml:"rows"`
	NoMode       bool     `mapstructure:"no_mode" yaml:"no_mode"`
	CursorToggle bool     `mapstructure:"cursor_toggle" yaml:"cursor_toggle"`
	Keys         []string `mapstructure:"keys" yaml:"keys"`
}

// LogConfig configures the log file.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Loader wraps Viper configuration loading for efitui.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("EFITUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	def := DefaultConfig()
	v.SetDefault("console.firmware", def.Console.Firmware)
	v.SetDefault("console.columns", def.Console.Columns)
	v.SetDefault("console.rows", def.Console.Rows)
	v.SetDefault("console.no_mode", def.Console.NoMode)
	v.SetDefault("console.cursor_toggle", def.Console.CursorToggle)
	v.SetDefault("console.keys", def.Console.Keys)
	v.SetDefault("log.file", def.Log.File)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/efitui")
	v.AddConfigPath("$HOME/.efitui")

	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance for flag binding and defaults.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration and unmarshals it into a Config struct.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
