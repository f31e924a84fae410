package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10, cfg.ReadTimeoutSeconds)
	assert.Equal(t, 25, cfg.DefaultClassSize)
	assert.Equal(t, 10, cfg.MaxProjectionYears)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("ENROLLMENT_PORT", "9090")
	t.Setenv("ENROLLMENT_DEFAULT_CLASS_SIZE", "30")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 30, cfg.DefaultClassSize)
	assert.Equal(t, 10, cfg.MaxProjectionYears)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollment-engine.yaml")
	content := "port: 7070\nmax_projection_years: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 5, cfg.MaxProjectionYears)
	assert.Equal(t, 25, cfg.DefaultClassSize)
}

func TestLoadChangedFlagsWin(t *testing.T) {
	t.Setenv("ENROLLMENT_PORT", "9090")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 8080, "")
	flags.Int("default_class_size", 25, "")
	require.NoError(t, flags.Parse([]string{"--port=6060"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	// Changed flag beats env; unchanged flag does not clobber env/defaults.
	assert.Equal(t, 6060, cfg.Port)
	assert.Equal(t, 25, cfg.DefaultClassSize)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		errIn string
	}{
		{"bad port", map[string]string{"ENROLLMENT_PORT": "0"}, "port"},
		{"bad class size", map[string]string{"ENROLLMENT_DEFAULT_CLASS_SIZE": "-3"}, "default_class_size"},
		{"too many years", map[string]string{"ENROLLMENT_MAX_PROJECTION_YEARS": "11"}, "max_projection_years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errIn)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}
