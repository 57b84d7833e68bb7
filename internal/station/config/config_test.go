package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:10000", c.ServerEndpointAddr)
	assert.Equal(t, "M01", c.StationID)
	assert.Equal(t, "votos_temp", c.OutboxDir)
	assert.Equal(t, "logs_votacion", c.AuditDir)
	assert.Equal(t, 3, c.BreakerThreshold)
	assert.Equal(t, 5*time.Second, c.BreakerInitialBackoff)
	assert.Equal(t, 300*time.Second, c.BreakerMaxBackoff)
}

func Test_parseJson_LoadsAllFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(map[string]any{
		"server_endpoint_addr":    "tallier.example:10000",
		"station_id":              "M17",
		"outbox_dir":              "/var/lib/urna/outbox",
		"audit_dir":               "/var/log/urna",
		"breaker_threshold":       5,
		"breaker_initial_backoff": "2s",
		"breaker_max_backoff":     "1m",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "tallier.example:10000", cfg.ServerEndpointAddr)
	assert.Equal(t, "M17", cfg.StationID)
	assert.Equal(t, "/var/lib/urna/outbox", cfg.OutboxDir)
	assert.Equal(t, "/var/log/urna", cfg.AuditDir)
	assert.Equal(t, 5, cfg.BreakerThreshold)
	assert.Equal(t, 2*time.Second, cfg.BreakerInitialBackoff)
	assert.Equal(t, time.Minute, cfg.BreakerMaxBackoff)
}

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", "10.0.0.5:10000",
		"-m", "M42",
		"-b", "4",
		"-i", "10",
		"-x", "120",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "10.0.0.5:10000", cfg.ServerEndpointAddr)
	assert.Equal(t, "M42", cfg.StationID)
	assert.Equal(t, 4, cfg.BreakerThreshold)
	assert.Equal(t, 10*time.Second, cfg.BreakerInitialBackoff)
	assert.Equal(t, 120*time.Second, cfg.BreakerMaxBackoff)
}
