package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/cloudctx/internal/config"
	"github.com/hbjs97/cloudctx/internal/failure"
	"github.com/hbjs97/cloudctx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvAPIToken, "")
	content := `version = 1
endpoint = "https://cloud.example.com/"
api_token = "abc123"
timeout_seconds = 10`

	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "https://cloud.example.com/", cfg.Endpoint)
	assert.Equal(t, "abc123", cfg.APIToken)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.NoError(t, cfg.RequireToken())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvAPIToken, "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))

	require.NoError(t, err)
	assert.Equal(t, config.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, 1, cfg.Version)

	var attrErr *failure.AttributeRequiredError
	require.ErrorAs(t, cfg.RequireToken(), &attrErr)
	assert.Equal(t, "api_token", attrErr.Attribute)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvEndpoint, "https://override.example.com/")
	t.Setenv(config.EnvAPIToken, "from-env")

	path := testutil.TempConfigFile(t, testutil.ConfigFor("https://cloud.example.com/"))
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com/", cfg.Endpoint)
	assert.Equal(t, "from-env", cfg.APIToken)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_BadEndpoint(t *testing.T) {
	t.Setenv(config.EnvEndpoint, "")

	path := testutil.TempConfigFile(t, `endpoint = "cloud.example.com"`)
	_, err := config.Load(path)

	var bad *failure.BadEndpointError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "cloud.example.com", bad.Endpoint)
	assert.ErrorIs(t, err, failure.ErrValidation)
}

func TestValidateEndpoint(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://cloud.example.com/", false},
		{"http://localhost:8080", false},
		{"https://cloud.example.com/base/", false},
		{"cloud.example.com", true},
		{"/api/v2", true},
		{"", true},
		{"https://", true},
		{"://bad", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := config.ValidateEndpoint(tt.input)
			if tt.wantErr {
				assert.Equal(t, failure.KindBadEndpoint, failure.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvAPIToken, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := &config.Config{
		Version:        1,
		Endpoint:       "https://cloud.example.com/",
		APIToken:       "secret",
		TimeoutSeconds: 15,
	}
	require.NoError(t, config.Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.NoError(t, config.ValidateFilePermissions(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RejectsBadEndpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := config.Save(path, &config.Config{Endpoint: "nope"})
	assert.ErrorIs(t, err, failure.ErrValidation)
	assert.NoFileExists(t, path)
}

func TestValidateFilePermissions(t *testing.T) {
	path := testutil.TempConfigFile(t, "version = 1")
	require.NoError(t, os.Chmod(path, 0644))
	assert.Error(t, config.ValidateFilePermissions(path))
}

func TestLoadRepoHints(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		h, err := config.LoadRepoHints(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, config.RepoHints{}, h)
	})

	t.Run("all fields", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteRepoHints(t, dir, "environment: staging\naccount: acme\napp: app1\n")
		h, err := config.LoadRepoHints(dir)
		require.NoError(t, err)
		assert.Equal(t, config.RepoHints{Environment: "staging", Account: "acme", App: "app1"}, h)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteRepoHints(t, dir, "environment: [unterminated\n")
		_, err := config.LoadRepoHints(dir)
		assert.ErrorIs(t, err, config.ErrConfig)
	})
}
