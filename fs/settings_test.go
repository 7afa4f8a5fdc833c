package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/lawcopy"
	"github.com/fwojciec/lawcopy/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_LoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when file is missing", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewSettingsService(filepath.Join(t.TempDir(), "data.json"))

		settings, err := svc.LoadSettings(context.Background())

		require.NoError(t, err)
		assert.Equal(t, lawcopy.DefaultSettings(), settings)
	})

	t.Run("reads stored folders", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"whitelistFolders":["法律法规"]}`), 0644))
		svc := fs.NewSettingsService(path)

		settings, err := svc.LoadSettings(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"法律法规"}, settings.WhitelistFolders)
	})

	t.Run("merges over defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
		svc := fs.NewSettingsService(path)

		settings, err := svc.LoadSettings(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, settings.WhitelistFolders)
		assert.Empty(t, settings.WhitelistFolders)
	})

	t.Run("rejects malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
		svc := fs.NewSettingsService(path)

		_, err := svc.LoadSettings(context.Background())

		assert.Equal(t, lawcopy.EINVALID, lawcopy.ErrorCode(err))
	})
}

func TestSettingsService_SaveSettings(t *testing.T) {
	t.Parallel()

	t.Run("round trips through nested directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "data.json")
		svc := fs.NewSettingsService(path)
		ctx := context.Background()

		err := svc.SaveSettings(ctx, &lawcopy.Settings{WhitelistFolders: []string{"法律法规", "司法解释"}})
		require.NoError(t, err)

		settings, err := svc.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"法律法规", "司法解释"}, settings.WhitelistFolders)
	})

	t.Run("rejects invalid settings", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		svc := fs.NewSettingsService(path)

		err := svc.SaveSettings(context.Background(), &lawcopy.Settings{WhitelistFolders: []string{""}})

		assert.Equal(t, lawcopy.EINVALID, lawcopy.ErrorCode(err))
		assert.NoFileExists(t, path)
	})
}
