package lawcopy

import "context"

// Settings is the persisted configuration of the copy action.
type Settings struct {
	// WhitelistFolders limits the notes the copy action applies to.
	// Empty means every note.
	WhitelistFolders []string `json:"whitelistFolders"`
}

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() *Settings {
	return &Settings{WhitelistFolders: []string{}}
}

// Whitelist returns the folder whitelist.
func (s *Settings) Whitelist() Whitelist {
	return Whitelist(s.WhitelistFolders)
}

// Validate returns an error if the settings contain invalid fields.
func (s *Settings) Validate() error {
	for _, folder := range s.WhitelistFolders {
		if folder == "" {
			return Errorf(EINVALID, "whitelist folder must not be empty")
		}
	}
	return nil
}

// SettingsService loads and stores settings.
type SettingsService interface {
	// LoadSettings returns the stored settings merged over DefaultSettings.
	// Missing storage is not an error.
	LoadSettings(ctx context.Context) (*Settings, error)

	// SaveSettings replaces the stored settings.
	SaveSettings(ctx context.Context, s *Settings) error
}
