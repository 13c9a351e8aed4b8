package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load may read and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{"LEGACY_ROOT", "LOG_LEVEL", "REDIS_HOST", "DATABASE_HOST"}
	for _, names := range envAliases {
		keys = append(keys, names...)
	}
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	t.Run("should fail fast when the write token is missing", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("SANITY_STUDIO_PROJECT_ID", "abc123")

		cfg, err := Load(t.TempDir())
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrMissingCredential)
		assert.Contains(t, err.Error(), "write token")
	})

	t.Run("should apply defaults", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("SANITY_PROJECT_ID", "abc123")
		os.Setenv("SANITY_API_TOKEN", "secret")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "abc123", cfg.Sanity.ProjectID)
		assert.Equal(t, "production", cfg.Sanity.Dataset)
		assert.Equal(t, "2025-01-01", cfg.Sanity.APIVersion)
		assert.Equal(t, "secret", cfg.Sanity.WriteToken)
		assert.Equal(t, "old-html-site/public_html", cfg.Legacy.Root)
		assert.Equal(t, "https://abc123.api.sanity.io", cfg.Sanity.BaseURL())
		assert.False(t, cfg.Redis.Enabled())
		assert.False(t, cfg.Database.Enabled())
	})

	t.Run("should take the first non-empty alias", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("NEXT_PUBLIC_SANITY_PROJECT_ID", "")
		os.Setenv("SANITY_STUDIO_PROJECT_ID", "studio")
		os.Setenv("SANITY_PROJECT_ID", "plain")
		os.Setenv("SANITY_WRITE_TOKEN", "second")
		os.Setenv("SANITY_API_TOKEN", "fourth")
		os.Setenv("SANITY_STUDIO_DATASET", "staging")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "studio", cfg.Sanity.ProjectID)
		assert.Equal(t, "second", cfg.Sanity.WriteToken)
		assert.Equal(t, "staging", cfg.Sanity.Dataset)
	})

	t.Run("should let .env.local override .env and the environment override both", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeFile(t, dir, ".env", "SANITY_STUDIO_PROJECT_ID=from-env\nSANITY_STUDIO_DATASET=from-env\nSANITY_STUDIO_WRITE_TOKEN=from-env\n")
		writeFile(t, dir, ".env.local", "# local overrides\nSANITY_STUDIO_DATASET=from-local\n")
		os.Setenv("SANITY_STUDIO_WRITE_TOKEN", "from-process")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Sanity.ProjectID)
		assert.Equal(t, "from-local", cfg.Sanity.Dataset)
		assert.Equal(t, "from-process", cfg.Sanity.WriteToken)
	})

	t.Run("should read config.yaml", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeFile(t, dir, "config.yaml", "sanity:\n  project_id: yaml-project\n  write_token: yaml-token\n  api_host: http://localhost:9999/\nlegacy:\n  root: /srv/legacy\n")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "yaml-project", cfg.Sanity.ProjectID)
		assert.Equal(t, "/srv/legacy", cfg.Legacy.Root)
		assert.Equal(t, "http://localhost:9999", cfg.Sanity.BaseURL())
	})
}
