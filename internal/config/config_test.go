package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultUploadDir, cfg.UploadDir)
	assert.Equal(t, DefaultArchiveDir, cfg.ArchiveDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultLogsDir, cfg.LogsDir)
	assert.Equal(t, time.Second, cfg.SettleInterval())
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 20, cfg.SettleAttempts)
	assert.Equal(t, 0.0, cfg.MarginPercent)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotewatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"upload_dir: inbox\nmargin_percent: 2.75\nsettle_ms: 250\n"), 0644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "inbox", cfg.UploadDir)
	assert.Equal(t, 2.75, cfg.MarginPercent)
	assert.Equal(t, 250*time.Millisecond, cfg.SettleInterval())
	// Untouched keys keep defaults.
	assert.Equal(t, DefaultArchiveDir, cfg.ArchiveDir)
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotewatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("upload_dir: inbox\n"), 0644))
	t.Setenv("QUOTEWATCH_UPLOAD_DIR", "dropbox")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "dropbox", cfg.UploadDir)
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv("QUOTEWATCH_UPLOAD_DIR", "dropbox")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("upload-dir", "", "")
	flags.Float64("margin-percent", 0, "")
	require.NoError(t, flags.Parse([]string{"--upload-dir=flagged"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "flagged", cfg.UploadDir)
	// Unset flags do not clobber other layers.
	assert.Equal(t, 0.0, cfg.MarginPercent)
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	cfg := &Config{
		UploadDir:  filepath.Join(base, "upload"),
		ArchiveDir: filepath.Join(base, "archive"),
		LogsDir:    filepath.Join(base, "logs"),
		OutputDir:  ".",
	}
	require.NoError(t, cfg.EnsureDirs())

	assert.DirExists(t, cfg.UploadDir)
	assert.DirExists(t, cfg.ArchiveDir)
	assert.DirExists(t, cfg.LogsDir)
}
