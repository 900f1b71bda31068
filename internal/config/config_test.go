package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"TSCAT_CONFIG", "TSCAT_LOCALE", "TSCAT_UI_LOCALE", "TSCAT_CATALOG_DIR",
		"DATABASE_URL", "TSCAT_LOG_LEVEL", "TSCAT_LOG_NO_COLOR",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "en", cfg.UILocale)
	require.Equal(t, "translations", cfg.CatalogDir)
	require.Equal(t, slog.LevelInfo, cfg.Level)
	require.Empty(t, cfg.DatabaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TSCAT_LOCALE", "ja")
	t.Setenv("TSCAT_UI_LOCALE", "fr")
	t.Setenv("TSCAT_LOG_LEVEL", "debug")
	t.Setenv("TSCAT_LOG_NO_COLOR", "true")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/tscat?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "ja", cfg.Locale)
	require.Equal(t, "fr", cfg.UILocale)
	require.Equal(t, slog.LevelDebug, cfg.Level)
	require.True(t, cfg.LogNoColor)
}

func TestLoadFileThenEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tscat.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
locale = "fr_FR"
catalog_dir = "/srv/translations"
log_level = "warn"
`), 0o644))
	t.Setenv("TSCAT_CONFIG", path)
	t.Setenv("TSCAT_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "fr_FR", cfg.Locale)
	require.Equal(t, "/srv/translations", cfg.CatalogDir)
	require.Equal(t, slog.LevelError, cfg.Level, "environment wins over the file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"log level", "TSCAT_LOG_LEVEL", "loud"},
		{"ui locale", "TSCAT_UI_LOCALE", "??"},
		{"locale", "TSCAT_LOCALE", "not a locale"},
		{"database scheme", "DATABASE_URL", "mysql://localhost/tscat"},
		{"database host", "DATABASE_URL", "postgres:///tscat"},
		{"config file", "TSCAT_CONFIG", "/does/not/exist.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
