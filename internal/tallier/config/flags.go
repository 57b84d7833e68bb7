package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/urna/internal/flagx"
)

// parseFlags populates selected tallier Config fields from command-line
// flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":10000")
//	-l string   audit journal directory
//	-v int      registered voter count
//	-n int      expected ballot volume (prefilter sizing)
//	-f float    prefilter false-positive rate
//	-s string   station token HMAC secret
//	-t int      station token validity, minutes
//	-d string   PostgreSQL DSN for the counted-ballot archive
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-v", "-n", "-f", "-s", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.AuditDir, "l", config.AuditDir, "audit journal directory")
	fs.Int64Var(&config.RegisteredVoters, "v", config.RegisteredVoters, "registered voter count")
	fs.IntVar(&config.ExpectedBallots, "n", config.ExpectedBallots, "expected ballot volume")
	fs.Float64Var(&config.FalsePositiveRate, "f", config.FalsePositiveRate, "prefilter false positive rate")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}
