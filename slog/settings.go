package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lawcopy"
)

// Ensure LoggingSettingsService implements lawcopy.SettingsService.
var _ lawcopy.SettingsService = (*LoggingSettingsService)(nil)

// LoggingSettingsService wraps a SettingsService with debug logging.
type LoggingSettingsService struct {
	next   lawcopy.SettingsService
	logger *slog.Logger
}

// NewLoggingSettingsService creates a new LoggingSettingsService.
func NewLoggingSettingsService(next lawcopy.SettingsService, logger *slog.Logger) *LoggingSettingsService {
	return &LoggingSettingsService{next: next, logger: logger}
}

// LoadSettings delegates to the wrapped service and logs the operation.
func (s *LoggingSettingsService) LoadSettings(ctx context.Context) (settings *lawcopy.Settings, err error) {
	defer func(begin time.Time) {
		folders := 0
		if settings != nil {
			folders = len(settings.WhitelistFolders)
		}
		s.logger.Debug("settings load",
			"folders", folders,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadSettings(ctx)
}

// SaveSettings delegates to the wrapped service and logs the operation.
func (s *LoggingSettingsService) SaveSettings(ctx context.Context, settings *lawcopy.Settings) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("settings save",
			"folders", len(settings.WhitelistFolders),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveSettings(ctx, settings)
}
