package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/urna/internal/flagx"
)

// parseFlags populates selected station Config fields from command-line
// flags.
//
// Supported flags (short forms):
//
//	-a string   tallier endpoint (e.g., "127.0.0.1:10000")
//	-m string   station id
//	-o string   outbox directory
//	-l string   audit journal directory
//	-b int      breaker failure threshold
//	-i int      breaker initial backoff, seconds
//	-x int      breaker maximum backoff, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-o", "-l", "-b", "-i", "-x"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "tallier endpoint address")
	fs.StringVar(&config.StationID, "m", config.StationID, "station id")
	fs.StringVar(&config.OutboxDir, "o", config.OutboxDir, "outbox directory")
	fs.StringVar(&config.AuditDir, "l", config.AuditDir, "audit journal directory")
	fs.IntVar(&config.BreakerThreshold, "b", config.BreakerThreshold, "breaker failure threshold")

	initialBackoff := fs.Int("i", int(config.BreakerInitialBackoff.Seconds()), "breaker initial backoff (in seconds)")
	maxBackoff := fs.Int("x", int(config.BreakerMaxBackoff.Seconds()), "breaker maximum backoff (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.BreakerInitialBackoff = time.Duration(*initialBackoff) * time.Second
	config.BreakerMaxBackoff = time.Duration(*maxBackoff) * time.Second
}
