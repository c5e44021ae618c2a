package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.Referral.RewardPoints)
	assert.True(t, cfg.Referral.SeedSampleUsers)
	assert.Empty(t, cfg.Referral.SeedFile)
	assert.Equal(t, "public/index.html", cfg.Static.IndexFile)
	assert.Empty(t, cfg.CORS.AllowOrigins)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	chdirTemp(t)

	yaml := `server:
  host: 127.0.0.1
  port: "8080"
logLevel: debug
referral:
  rewardPoints: 15
  seedSampleUsers: false
cors:
  allowOrigins:
    - http://localhost:5173
`
	require.NoError(t, os.WriteFile("config.yaml", []byte(yaml), 0o600))
	require.NoError(t, os.WriteFile(".env", []byte("APP_SERVER_PORT=9090\n"), 0o600))
	t.Setenv("APP_REFERRAL_REWARDPOINTS", "20")
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_SERVER_PORT")
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.Referral.RewardPoints)
	assert.False(t, cfg.Referral.SeedSampleUsers)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowOrigins)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("config.yaml", []byte("server: [unclosed"), 0o600))

	_, err := LoadConfig()
	assert.Error(t, err)
}
