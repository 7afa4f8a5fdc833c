package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/lawcopy"
)

// settingsKey is the key the settings document is stored under.
const settingsKey = "settings"

// Compile-time interface verification.
var _ lawcopy.SettingsService = (*SettingsService)(nil)

// SettingsService implements lawcopy.SettingsService on the kv table.
type SettingsService struct {
	db *DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *DB) *SettingsService {
	return &SettingsService{db: db}
}

// LoadSettings returns the stored settings, or defaults if none are stored.
func (s *SettingsService) LoadSettings(ctx context.Context) (*lawcopy.Settings, error) {
	settings := lawcopy.DefaultSettings()

	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM kv WHERE key = ?
	`, settingsKey).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return settings, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(value), settings); err != nil {
		return nil, lawcopy.Errorf(lawcopy.EINVALID, "malformed stored settings: %v", err)
	}
	if settings.WhitelistFolders == nil {
		settings.WhitelistFolders = []string{}
	}
	return settings, nil
}

// SaveSettings replaces the stored settings.
func (s *SettingsService) SaveSettings(ctx context.Context, settings *lawcopy.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, settingsKey, string(value), time.Now().UTC().Format(time.RFC3339))

	return err
}
