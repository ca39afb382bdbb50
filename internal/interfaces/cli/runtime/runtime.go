// Package runtime loads the configuration and logger shared by every command.
package runtime

import (
	"fmt"
	"log/slog"

	"qravy/internal/infrastructure/config"
	"qravy/internal/shared/logger"
)

// Setup loads the configuration for env and installs the process logger.
func Setup(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		OutputPath:  cfg.Logger.OutputPath,
		SourceLevel: slog.LevelWarn,
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}
