package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/urna/internal/flagx"
	"github.com/dmitrijs2005/urna/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling its fields are copied into the
// runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	AuditDir              string         `json:"audit_dir"`
	RegisteredVoters      int64          `json:"registered_voters"`
	ExpectedBallots       int            `json:"expected_ballots"`
	FalsePositiveRate     float64        `json:"false_positive_rate"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	DatabaseDSN           string         `json:"database_dsn"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. An unreadable or
// invalid file panics: a half-applied config must not come up.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.AuditDir = c.AuditDir
	config.RegisteredVoters = c.RegisteredVoters
	config.ExpectedBallots = c.ExpectedBallots
	config.FalsePositiveRate = c.FalsePositiveRate
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.DatabaseDSN = c.DatabaseDSN
}
