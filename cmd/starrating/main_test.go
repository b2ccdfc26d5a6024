package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starrating/internal/config"
)

func parse(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	v := viper.New()
	cmd := newRootCmd(v)
	require.NoError(t, cmd.ParseFlags(args))
	return loadConfig(v, cmd)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_FlagsOverrideFirstRating(t *testing.T) {
	cfg, err := parse(t, "--total", "10", "--selected", "7", "--spacing", "2", "--log-file", "x.log", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Ratings[0].Total)
	assert.Equal(t, 7, cfg.Ratings[0].Selected)
	assert.Equal(t, 2.0, cfg.Spacing)
	assert.Equal(t, config.LogConfig{File: "x.log", Verbose: true}, cfg.Log)
}

func TestLoadConfig_InvalidTotalRejected(t *testing.T) {
	for _, total := range []string{"2", "11"} {
		_, err := parse(t, "--total", total)
		var verrs config.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "total=%s", total)
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ratings:\n  - id: food\n    total: 4\n    selected: 2\n"), 0o644))

	cfg, err := parse(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, []config.RatingConfig{{ID: "food", Total: 4, Selected: 2}}, cfg.Ratings)

	_, err = parse(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_TotalFlagFixesInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ratings:\n  - id: food\n    total: 12\n    selected: 2\n"), 0o644))

	_, err := parse(t, "--config", path)
	var verrs config.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	cfg, err := parse(t, "--config", path, "--total", "6")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Ratings[0].Total)
}
