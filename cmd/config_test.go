package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"coffeeshop/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL", "LOG_FORMAT", "METRICS_NAMESPACE", "REPORT_SCHEDULE")

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, cmd.Config{
		LogLevel:         "info",
		LogFormat:        "json",
		MetricsNamespace: "coffeeshop",
		ReportSchedule:   "@every 1m",
	}, cfg)
}

func TestLoadConfig_FromFile(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL", "LOG_FORMAT", "METRICS_NAMESPACE", "REPORT_SCHEDULE")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nLOG_FORMAT=text\nMETRICS_NAMESPACE=cafe\nREPORT_SCHEDULE=\"0 */5 * * * *\"\n"), 0o600))

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "cafe", cfg.MetricsNamespace)
	assert.Equal(t, "0 */5 * * * *", cfg.ReportSchedule)
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	unsetEnv(t, "LOG_FORMAT", "METRICS_NAMESPACE", "REPORT_SCHEDULE")
	t.Setenv("LOG_LEVEL", "warn")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
