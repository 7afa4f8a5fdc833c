package mock

import (
	"context"

	"github.com/fwojciec/lawcopy"
)

var _ lawcopy.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of lawcopy.SettingsService.
type SettingsService struct {
	LoadSettingsFn func(ctx context.Context) (*lawcopy.Settings, error)
	SaveSettingsFn func(ctx context.Context, s *lawcopy.Settings) error
}

func (s *SettingsService) LoadSettings(ctx context.Context) (*lawcopy.Settings, error) {
	return s.LoadSettingsFn(ctx)
}

func (s *SettingsService) SaveSettings(ctx context.Context, settings *lawcopy.Settings) error {
	return s.SaveSettingsFn(ctx, settings)
}
