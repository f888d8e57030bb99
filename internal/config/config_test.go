package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, "127.0.0.1:8001", cfg.Listen)
	assert.Equal(t, 200, cfg.PNGSize)
	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, Validate(&cfg))
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icontint.yaml")
	content := `listen: "0.0.0.0:9000"
database_path: /tmp/meds.db
png_size: 64
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Listen)
	assert.Equal(t, "/tmp/meds.db", cfg.DatabasePath)
	assert.Equal(t, 64, cfg.PNGSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Parallel, "unset fields keep defaults")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	var parseErr *tinterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed\n"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	var parseErr *tinterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ICONTINT_LISTEN", "127.0.0.1:7777")
	t.Setenv("ICONTINT_LOG_LEVEL", "warn")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7777", cfg.Listen)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icontint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("png_size: 64\n"), 0o644))
	t.Setenv("ICONTINT_PNG_SIZE", "128")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 128, cfg.PNGSize, "environment wins over file")
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"nil config", nil},
		{"empty listen", func(c *Config) { c.Listen = "" }},
		{"listen without port", func(c *Config) { c.Listen = "localhost" }},
		{"png size too small", func(c *Config) { c.PNGSize = 8 }},
		{"png size too large", func(c *Config) { c.PNGSize = 4096 }},
		{"zero parallel", func(c *Config) { c.Parallel = 0 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.mutate == nil {
				err := Validate(nil)
				require.Error(t, err)
				return
			}

			cfg := Default()
			tt.mutate(&cfg)

			err := Validate(&cfg)

			require.Error(t, err)
			var valErr *tinterrors.ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}
}
