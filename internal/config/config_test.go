package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/rfid_api", cfg.BaseURL)
	assert.Zero(t, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 10, cfg.LogMaxSizeMB)
	assert.Equal(t, 3, cfg.LogMaxBackups)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("RFIDCTL_BASE_URL", "https://rfid.lan/api")
	t.Setenv("RFIDCTL_TIMEOUT", "5s")
	t.Setenv("RFIDCTL_DEBUG", "true")
	t.Setenv("RFIDCTL_LOG_FILE", "/tmp/rfidctl.log")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "https://rfid.lan/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/rfidctl.log", cfg.LogFile)
}

func TestNew_BadEnv(t *testing.T) {
	t.Setenv("RFIDCTL_TIMEOUT", "soon")
	_, err := New()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{BaseURL: "http://localhost/rfid_api", LogMaxSizeMB: 1}
	require.NoError(t, valid.Validate())

	cases := map[string]Config{
		"no scheme":     {BaseURL: "localhost/rfid_api", LogMaxSizeMB: 1},
		"ftp":           {BaseURL: "ftp://localhost", LogMaxSizeMB: 1},
		"no host":       {BaseURL: "http:///rfid_api", LogMaxSizeMB: 1},
		"unparsable":    {BaseURL: "http://[::1", LogMaxSizeMB: 1},
		"neg timeout":   {BaseURL: "http://localhost", Timeout: -time.Second, LogMaxSizeMB: 1},
		"zero log size": {BaseURL: "http://localhost"},
	}
	for name, cfg := range cases {
		assert.Error(t, cfg.Validate(), name)
	}
}
