package config

import (
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/session"
)

func writeConfig(t *testing.T, fs afero.Fs, src string) string {
	t.Helper()
	const path = "/etc/meterconsole/config.hcl"
	require.NoError(t, afero.WriteFile(fs, path, []byte(src), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `
base_url     = "https://meters.example.com"
timeout      = "30s"
stale_time   = "1m"
read_retries = 3
log_level    = "debug"

session {
  storage = "memory"
}
`)

	cfg, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "https://meters.example.com", cfg.BaseURL)
	assert.Equal(t, "30s", cfg.Timeout)
	assert.Equal(t, "1m", cfg.StaleTime)
	require.NotNil(t, cfg.ReadRetries)
	assert.Equal(t, 3, *cfg.ReadRetries)
	assert.Equal(t, hclog.Debug, cfg.Level())
	assert.Equal(t, StorageMemory, cfg.Session.Storage)

	dc := cfg.Dashboard(session.NewMemoryStorage(), hclog.NewNullLogger())
	assert.Equal(t, "https://meters.example.com", dc.API.BaseURL)
	assert.Equal(t, 30*time.Second, dc.API.Timeout)
	assert.Equal(t, time.Minute, dc.StaleTime)
	assert.Equal(t, 3, dc.ReadRetries)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(BaseURLEnv, "")

	cfg, err := Load(afero.NewMemMapFs(), "/nope/config.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, apiclient.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, StorageFile, cfg.Session.Storage)
	assert.Equal(t, hclog.Info, cfg.Level())

	dc := cfg.Dashboard(nil, nil)
	assert.Zero(t, dc.API.Timeout)
	assert.Equal(t, 5*time.Minute, dc.StaleTime)
	assert.Zero(t, dc.ReadRetries)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(BaseURLEnv, "http://localhost:9090")
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `base_url = "https://meters.example.com"`)

	cfg, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", cfg.BaseURL)
}

func TestLoad_ZeroRetriesDisablesRetry(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `read_retries = 0`)

	cfg, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Dashboard(nil, nil).ReadRetries)
}

func TestLoad_ZeroStaleTimeRejected(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `stale_time = "0s"`)

	_, err := Load(fs, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "StaleTime: must be greater than zero")
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `
base_url     = "ftp://meters.example.com"
timeout      = "soon"
stale_time   = "-1m"
read_retries = -2
log_level    = "loud"

session {
  storage = "cookie"
}
`)

	_, err := Load(fs, path)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 6)

	msg := err.Error()
	for _, want := range []string{"Timeout", "StaleTime", "LogLevel", "read_retries", "session.Storage", "baseUrl"} {
		assert.Contains(t, msg, want)
	}
}

func TestLoad_SyntaxError(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `base_url = `)

	_, err := Load(fs, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing config file")
}

func TestNewStorage(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg := Default()
	cfg.Session.Storage = StorageMemory
	s, err := cfg.NewStorage(fs)
	require.NoError(t, err)
	assert.IsType(t, &session.MemoryStorage{}, s)

	cfg.Session.Storage = StorageNone
	s, err = cfg.NewStorage(fs)
	require.NoError(t, err)
	assert.IsType(t, session.NoopStorage{}, s)

	cfg.Session.Storage = StorageFile
	cfg.Session.Path = "/var/lib/meterconsole"
	s, err = cfg.NewStorage(fs)
	require.NoError(t, err)
	require.NoError(t, s.Set("token", "abc"))

	exists, err := afero.Exists(fs, "/var/lib/meterconsole/token")
	require.NoError(t, err)
	assert.True(t, exists)
}
