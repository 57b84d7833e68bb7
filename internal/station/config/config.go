// Package config handles configuration for the station component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for a polling station.
//
// Fields:
//   - ServerEndpointAddr: host:port of the tallier gRPC endpoint.
//   - StationID: identity this station stamps on every ballot.
//   - OutboxDir: directory for the durable outbox mirror.
//   - AuditDir: directory for the audit journal day files.
//   - BreakerThreshold: consecutive transport failures before the circuit
//     opens.
//   - BreakerInitialBackoff / BreakerMaxBackoff: open-circuit probe window
//     and its cap.
type Config struct {
	ServerEndpointAddr    string
	StationID             string
	OutboxDir             string
	AuditDir              string
	BreakerThreshold      int
	BreakerInitialBackoff time.Duration
	BreakerMaxBackoff     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:10000"
	c.StationID = "M01"
	c.OutboxDir = "votos_temp"
	c.AuditDir = "logs_votacion"
	c.BreakerThreshold = 3
	c.BreakerInitialBackoff = 5 * time.Second
	c.BreakerMaxBackoff = 300 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
