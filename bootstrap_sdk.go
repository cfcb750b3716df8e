package efitui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"pkt.systems/efitui/internal/logging"
	"pkt.systems/pslog"
)

// Bootstrap writes cfg to the default config path. An existing config is
// never overwritten.
func Bootstrap(ctx context.Context, cfg Config, logger pslog.Logger) (string, error) {
	return BootstrapTo(ctx, DefaultConfigPath(), cfg, logger)
}

// BootstrapTo writes cfg as YAML to path, creating its directory.
func BootstrapTo(ctx context.Context, path string, cfg Config, logger pslog.Logger) (string, error) {
	logger = logging.Or(logger)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := cfg.Console.Validate(); err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", err
	}

	data, err := MarshalConfig(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	logger.Info("bootstrapped config", "path", path)
	return path, nil
}

// MarshalConfig renders cfg as YAML.
func MarshalConfig(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
