package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/flagx"
	"github.com/dmitrijs2005/dermasight/internal/timex"
)

// JSONConfig is the file representation of Config. Durations accept "15m"
// style strings or integer nanoseconds. Absent fields keep their current
// values.
type JSONConfig struct {
	EndpointAddrGRPC          *string         `json:"endpoint_addr_grpc"`
	StorageDriver             *string         `json:"storage_driver"`
	DatabaseDSN               *string         `json:"database_dsn"`
	SecretKey                 *string         `json:"secret_key"`
	SessionValidityDuration   *timex.Duration `json:"session_validity_duration"`
	ResetCodeValidityDuration *timex.Duration `json:"reset_code_validity_duration"`
	SimulatedLatency          *timex.Duration `json:"simulated_latency"`
	LogLevel                  *string         `json:"log_level"`
	AnalyzerAPIKey            *string         `json:"analyzer_api_key"`
	AnalyzerModel             *string         `json:"analyzer_model"`
	AnalyzerBaseURL           *string         `json:"analyzer_base_url"`
	AnalyzerTemperature       *float64        `json:"analyzer_temperature"`
	MaxImageBytes             *int64          `json:"max_image_bytes"`
	S3RootUser                *string         `json:"s3_root_user"`
	S3RootPassword            *string         `json:"s3_root_password"`
	S3Bucket                  *string         `json:"s3_bucket"`
	S3Region                  *string         `json:"s3_region"`
	S3BaseEndpoint            *string         `json:"s3_base_endpoint"`
	PresignTTL                *timex.Duration `json:"presign_ttl"`
}

// parseJSON overlays the file named by -c/-config onto cfg. Without the
// flag nothing is loaded.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}

	setString(&cfg.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&cfg.StorageDriver, c.StorageDriver)
	setString(&cfg.DatabaseDSN, c.DatabaseDSN)
	setString(&cfg.SecretKey, c.SecretKey)
	setDuration(&cfg.SessionValidityDuration, c.SessionValidityDuration)
	setDuration(&cfg.ResetCodeValidityDuration, c.ResetCodeValidityDuration)
	setDuration(&cfg.SimulatedLatency, c.SimulatedLatency)
	setString(&cfg.LogLevel, c.LogLevel)
	setString(&cfg.AnalyzerAPIKey, c.AnalyzerAPIKey)
	setString(&cfg.AnalyzerModel, c.AnalyzerModel)
	setString(&cfg.AnalyzerBaseURL, c.AnalyzerBaseURL)
	if c.AnalyzerTemperature != nil {
		cfg.AnalyzerTemperature = *c.AnalyzerTemperature
	}
	if c.MaxImageBytes != nil {
		cfg.MaxImageBytes = *c.MaxImageBytes
	}
	setString(&cfg.S3RootUser, c.S3RootUser)
	setString(&cfg.S3RootPassword, c.S3RootPassword)
	setString(&cfg.S3Bucket, c.S3Bucket)
	setString(&cfg.S3Region, c.S3Region)
	setString(&cfg.S3BaseEndpoint, c.S3BaseEndpoint)
	setDuration(&cfg.PresignTTL, c.PresignTTL)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
