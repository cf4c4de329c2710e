package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestInitializeConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "data", cfg.Data.Directory)
	assert.Equal(t, "json", cfg.Report.Format)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AGROLIVRO_LOG_LEVEL", "debug")
	t.Setenv("AGROLIVRO_REPORT_FORMAT", "csv")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "csv", cfg.Report.Format)
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := cfg.NewLogger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestNewLoggerInvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "nope"

	logger := cfg.NewLogger()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("AGROLIVRO_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("AGROLIVRO_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("AGROLIVRO_TEST_MISSING", "fallback"))
}
