package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/metrica-go/metrica/internal/credentials"
)

func TestLoadFromGeneratesDefault(t *testing.T) {
	keyring.MockInit()
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Profile)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)
	assert.Empty(t, cfg.Activation.APIKey)

	_, err = os.Stat(filepath.Join(dir, configFile))
	assert.NoError(t, err)
}

func TestLoadFromReadsFileAndKeyring(t *testing.T) {
	keyring.MockInit()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte(`{
		"profile": "qa",
		"data_dir": "/tmp/metrica",
		"activation": {"appVersion": "1.2.3", "crashReporting": false},
		"reporters": ["ads", "missing"]
	}`), 0600))
	require.NoError(t, credentials.StoreAPIKey("qa", "main-key"))
	require.NoError(t, credentials.StoreReporterKey("qa", "ads", "ads-key"))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "main-key", cfg.Activation.APIKey)
	assert.Equal(t, "1.2.3", cfg.Activation.AppVersion)
	require.NotNil(t, cfg.Activation.CrashReporting)
	assert.False(t, *cfg.Activation.CrashReporting)
	assert.Equal(t, map[string]string{"ads": "ads-key"}, cfg.ReporterKeys)
}

func TestEnvOverrides(t *testing.T) {
	keyring.MockInit()
	t.Setenv("METRICA_API_KEY", "env-key")
	t.Setenv("METRICA_LOGS", "true")
	t.Setenv("METRICA_SESSION_TIMEOUT", "45")
	t.Setenv("METRICA_INITIAL_URL", "app://start")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Activation.APIKey)
	require.NotNil(t, cfg.Activation.Logs)
	assert.True(t, *cfg.Activation.Logs)
	require.NotNil(t, cfg.Activation.SessionTimeout)
	assert.Equal(t, 45, *cfg.Activation.SessionTimeout)
	assert.Equal(t, "app://start", cfg.InitialURL)
}

func TestLoadFromRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte("{"), 0600))
	_, err := LoadFrom(dir)
	assert.Error(t, err)
}
