package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/urna/internal/flagx"
	"github.com/dmitrijs2005/urna/internal/timex"
)

// JsonConfig is the JSON-file shape of the station configuration. Interval
// fields use timex.Duration so both "5s" and integer nanoseconds parse.
type JsonConfig struct {
	ServerEndpointAddr    string         `json:"server_endpoint_addr"`
	StationID             string         `json:"station_id"`
	OutboxDir             string         `json:"outbox_dir"`
	AuditDir              string         `json:"audit_dir"`
	BreakerThreshold      int            `json:"breaker_threshold"`
	BreakerInitialBackoff timex.Duration `json:"breaker_initial_backoff"`
	BreakerMaxBackoff     timex.Duration `json:"breaker_max_backoff"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded.
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

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.StationID = c.StationID
	config.OutboxDir = c.OutboxDir
	config.AuditDir = c.AuditDir
	config.BreakerThreshold = c.BreakerThreshold
	config.BreakerInitialBackoff = time.Duration(c.BreakerInitialBackoff.Duration)
	config.BreakerMaxBackoff = time.Duration(c.BreakerMaxBackoff.Duration)
}
