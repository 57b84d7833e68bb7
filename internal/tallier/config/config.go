// Package config handles configuration for the tallier, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the tallier.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - AuditDir: directory for the audit journal day files.
//   - RegisteredVoters: electoral roll size, feeds the turnout percentage.
//   - ExpectedBallots / FalsePositiveRate: replay prefilter sizing.
//   - SecretKey: HMAC secret for station access tokens (HS256). Do not use
//     test defaults in prod.
//   - TokenValidityDuration: station token lifetime.
//   - DatabaseDSN: optional PostgreSQL DSN for the counted-ballot archive;
//     empty disables archiving.
type Config struct {
	EndpointAddrGRPC      string
	AuditDir              string
	RegisteredVoters      int64
	ExpectedBallots       int
	FalsePositiveRate     float64
	SecretKey             string
	TokenValidityDuration time.Duration
	DatabaseDSN           string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":10000"
	c.AuditDir = "logs_servidor"
	c.RegisteredVoters = 0
	c.ExpectedBallots = 10000000
	c.FalsePositiveRate = 0.001
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.DatabaseDSN = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
