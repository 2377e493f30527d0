// Package config handles configuration for the server component: defaults,
// a JSON overlay, environment variables (optionally from a .env file) and
// command-line flags, applied in that order.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/common"
)

// Config holds runtime settings for the DermaSight server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - StorageDriver: "memory", "sqlite" or "postgres".
//   - DatabaseDSN: data source for the SQL drivers.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - SessionValidityDuration / ResetCodeValidityDuration: lifetimes.
//   - SimulatedLatency: artificial delay of every memory store operation.
//   - Analyzer*: remote model credentials and request settings.
//   - MaxImageBytes: per-image upload limit.
//   - S3*: object storage for uploaded images; disabled when S3Bucket is empty.
//   - PresignTTL: lifetime of presigned preview URLs.
type Config struct {
	EndpointAddrGRPC          string
	StorageDriver             string
	DatabaseDSN               string
	SecretKey                 string
	SessionValidityDuration   time.Duration
	ResetCodeValidityDuration time.Duration
	SimulatedLatency          time.Duration
	LogLevel                  string

	AnalyzerAPIKey      string
	AnalyzerModel       string
	AnalyzerBaseURL     string
	AnalyzerTemperature float64
	MaxImageBytes       int64

	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	PresignTTL     time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.StorageDriver = "memory"
	c.DatabaseDSN = "file:dermasight.db"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 24 * time.Hour
	c.ResetCodeValidityDuration = 15 * time.Minute
	c.SimulatedLatency = 0
	c.LogLevel = "info"
	c.AnalyzerModel = "gemini-2.5-flash"
	c.AnalyzerBaseURL = "https://generativelanguage.googleapis.com"
	c.AnalyzerTemperature = 0.2
	c.MaxImageBytes = common.MaxImageBytes
	c.S3Region = "us-east-1"
	c.PresignTTL = time.Hour
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then the environment, then short flags. args excludes the
// program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// ImageStoreEnabled reports whether uploads go to object storage.
func (c *Config) ImageStoreEnabled() bool {
	return c.S3Bucket != ""
}
