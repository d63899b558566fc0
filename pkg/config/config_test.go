package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mechiko/iccinspect/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, config.ValidationLenient, cfg.ValidationMode)
	require.Equal(t, ".", cfg.OutputDir)
	require.Equal(t, ":8080", cfg.ServerAddr)
	require.Equal(t, 5, cfg.RateLimitRPS)
	require.Equal(t, 10, cfg.RateLimitBurst)
	require.Empty(t, cfg.TagFilter)
	require.Equal(t, config.VerbosityFull, cfg.Verbosity)
}

func TestLoadTagFilterAndVerbosity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iccinspect.yml")
	require.NoError(t, os.WriteFile(path, []byte("tagFilter: [rTRC, wtpt]\nreportVerbosity: summary\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"rTRC", "wtpt"}, cfg.TagFilter)
	require.Equal(t, config.VerbositySummary, cfg.Verbosity)
}

func TestLoadRejectsUnknownReportVerbosity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iccinspect.yml")
	require.NoError(t, os.WriteFile(path, []byte("reportVerbosity: bogus\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadMissingKeysFallBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iccinspect.yml")
	require.NoError(t, os.WriteFile(path, []byte("strictElements: true\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, cfg.StrictElements)
	require.Equal(t, config.ValidationLenient, cfg.ValidationMode)
	require.Equal(t, ".", cfg.OutputDir)
	require.Equal(t, 5, cfg.RateLimitRPS)
}

func TestLoadStrictValidationMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iccinspect.yml")
	require.NoError(t, os.WriteFile(path, []byte("validationMode: strict\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.ValidationStrict, cfg.ValidationMode)
}

func TestLoadRejectsUnknownValidationMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iccinspect.yml")
	require.NoError(t, os.WriteFile(path, []byte("validationMode: bogus\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveRateLimits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iccinspect.yml")
	require.NoError(t, os.WriteFile(path, []byte("rateLimitRPS: 0\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
