package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvConfig_Defaults(t *testing.T) {
	require.NoError(t, LoadEnvConfig(filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, "info", DefaultEnvConfig.LOG_LEVEL)
	assert.Equal(t, "json", DefaultEnvConfig.LOG_FORMAT)
	assert.Equal(t, "lenient", DefaultEnvConfig.ROSTER_PARSE_POLICY)
	assert.Equal(t, "strict", DefaultEnvConfig.DEPARTMENT_PARSE_POLICY)
	assert.Equal(t, "strict", DefaultEnvConfig.SALARY_PARSE_POLICY)
	assert.Equal(t, "strict", DefaultEnvConfig.LEAVE_PARSE_POLICY)
	assert.Equal(t, "substring", DefaultEnvConfig.SALARY_MATCH_MODE)
	assert.False(t, DefaultEnvConfig.OUTPUT_QUOTE_FIELDS)
	assert.Equal(t, int64(32<<20), DefaultEnvConfig.MAX_UPLOAD_BYTES)
}

func TestLoadEnvConfig_FromFileAndEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "LEAVE_PARSE_POLICY=lenient\nOUTPUT_QUOTE_FIELDS=true\nMAX_UPLOAD_BYTES=1024\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv never overrides variables that are already set.
	t.Setenv("SALARY_MATCH_MODE", "period")
	t.Setenv("LEAVE_PARSE_POLICY", "")
	os.Unsetenv("LEAVE_PARSE_POLICY")
	t.Cleanup(func() {
		os.Unsetenv("OUTPUT_QUOTE_FIELDS")
		os.Unsetenv("MAX_UPLOAD_BYTES")
	})

	require.NoError(t, LoadEnvConfig(envFile))

	assert.Equal(t, "lenient", DefaultEnvConfig.LEAVE_PARSE_POLICY)
	assert.True(t, DefaultEnvConfig.OUTPUT_QUOTE_FIELDS)
	assert.Equal(t, int64(1024), DefaultEnvConfig.MAX_UPLOAD_BYTES)
	assert.Equal(t, "period", DefaultEnvConfig.SALARY_MATCH_MODE)
}

func TestGetEnvBool_IgnoresGarbage(t *testing.T) {
	t.Setenv("RECON_TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("RECON_TEST_BOOL", true))
	t.Setenv("RECON_TEST_BOOL", "false")
	assert.False(t, getEnvBool("RECON_TEST_BOOL", true))
}
