// Package fs provides file-based storage for lawcopy settings and notes.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/lawcopy"
)

// Ensure SettingsService implements lawcopy.SettingsService at compile time.
var _ lawcopy.SettingsService = (*SettingsService)(nil)

// SettingsService stores settings as a JSON document in a single file.
type SettingsService struct {
	path string
}

// NewSettingsService creates a new SettingsService backed by path.
func NewSettingsService(path string) *SettingsService {
	return &SettingsService{path: path}
}

// LoadSettings reads the settings file. A missing file yields defaults.
func (s *SettingsService) LoadSettings(ctx context.Context) (*lawcopy.Settings, error) {
	settings := lawcopy.DefaultSettings()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, lawcopy.Errorf(lawcopy.EINVALID, "malformed settings file %s: %v", s.path, err)
	}
	if settings.WhitelistFolders == nil {
		settings.WhitelistFolders = []string{}
	}
	return settings, nil
}

// SaveSettings writes the settings file, creating parent directories.
func (s *SettingsService) SaveSettings(ctx context.Context, settings *lawcopy.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
