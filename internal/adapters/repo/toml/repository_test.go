package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, settingsPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(SettingsPathKey, settingsPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "settings.toml"))

	settings := domain.Settings{
		MaxHistory:  120,
		WindowSize:  20,
		MinRequired: 12,
		Prior:       domain.Prior{domain.SymbolPlayer: 2, domain.SymbolBanker: 2, domain.SymbolTie: 0.5},
	}
	require.NoError(t, repo.Save(context.Background(), settings))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestRepositoryMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "settings.toml"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestRepositoryPartialFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[estimator]",
		"window_size = 30",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, settingsPath)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, got.WindowSize)
	assert.Equal(t, domain.DefaultMinRequired, got.MinRequired)
	assert.Equal(t, domain.MaxHistory, got.MaxHistory)
	assert.Equal(t, domain.UniformPrior(), got.Prior)
}

func TestRepositoryLoadRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[estimator.prior]",
		"player = -1.0",
		"banker = 1.0",
		"tie = 1.0",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, settingsPath)

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidSettings)
	assert.ErrorContains(t, err, "validate settings file")
}

func TestRepositorySaveRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	repo := newTestRepository(t, settingsPath)

	err := repo.Save(context.Background(), domain.Settings{MaxHistory: 5, MinRequired: 10})
	require.ErrorIs(t, err, domain.ErrInvalidSettings)

	_, statErr := os.Stat(settingsPath)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("BT_SETTINGS_PATH", "")

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.DefaultSettings()))

	settingsPath := filepath.Join(homeDir, ".config", "bt", "settings.toml")
	assert.Equal(t, settingsPath, repo.Path())
	info, err := os.Stat(settingsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryPathFromEnvironment(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), "env.toml")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BT_SETTINGS_PATH", settingsPath)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)
	assert.Equal(t, settingsPath, repo.Path())
}

func TestRepositoryPathFromConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("BT_SETTINGS_PATH", "")

	settingsPath := filepath.Join(t.TempDir(), "custom.toml")
	configDir := filepath.Join(homeDir, ".config", "bt")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(strings.Join([]string{
		"[settings]",
		"path = \"" + settingsPath + "\"",
		"",
	}, "\n")), 0o600))

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)
	assert.Equal(t, settingsPath, repo.Path())
}

func TestRepositoryLoadMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("estimator = ["), 0o600))

	repo := newTestRepository(t, settingsPath)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode settings file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "settings.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.DefaultSettings())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesLeaveValidFile(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	repoA := newTestRepository(t, settingsPath)
	repoB := newTestRepository(t, settingsPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, window int) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			settings := domain.DefaultSettings()
			settings.WindowSize = window
			errCh <- repo.Save(context.Background(), settings)
		}
	}
	go write(repoA, 20)
	go write(repoB, 25)

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	got, err := repoA.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, []int{20, 25}, got.WindowSize)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	repo := newTestRepository(t, settingsPath)

	require.NoError(t, repo.Save(context.Background(), domain.DefaultSettings()))

	data, err := os.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "window_size = 15")
	assert.Contains(t, string(data), "[estimator.prior]")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("version = 999\n"), 0o600))

	repo := newTestRepository(t, settingsPath)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported settings schema version")
}
