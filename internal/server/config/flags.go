package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/flagx"
)

var serverFlags = []string{"-a", "-x", "-d", "-s", "-t", "-r", "-l", "-k", "-m", "-v", "-u", "-p", "-b", "-g", "-e"}

// parseFlags populates Config fields from short command-line flags.
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-x string   storage driver: memory | sqlite | postgres
//	-d string   database DSN
//	-s string   JWT HMAC secret key
//	-t int      session validity, minutes
//	-r int      reset code validity, minutes
//	-l int      simulated store latency, milliseconds
//	-k string   analyzer API key
//	-m string   analyzer model
//	-v string   log level
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name (empty disables object storage)
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Only these flags are looked at; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&cfg.StorageDriver, "x", cfg.StorageDriver, "storage driver")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")

	session := fs.Int("t", int(cfg.SessionValidityDuration.Minutes()), "session validity (in minutes)")
	reset := fs.Int("r", int(cfg.ResetCodeValidityDuration.Minutes()), "reset code validity (in minutes)")
	latency := fs.Int("l", int(cfg.SimulatedLatency.Milliseconds()), "simulated store latency (in milliseconds)")

	fs.StringVar(&cfg.AnalyzerAPIKey, "k", cfg.AnalyzerAPIKey, "analyzer API key")
	fs.StringVar(&cfg.AnalyzerModel, "m", cfg.AnalyzerModel, "analyzer model")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, serverFlags)); err != nil {
		return err
	}

	cfg.SessionValidityDuration = time.Duration(*session) * time.Minute
	cfg.ResetCodeValidityDuration = time.Duration(*reset) * time.Minute
	cfg.SimulatedLatency = time.Duration(*latency) * time.Millisecond
	return nil
}
