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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc":           "www.example:9000",
		"storage_driver":               "postgres",
		"database_dsn":                 "postgres://x",
		"secret_key":                   "my_secret_key",
		"session_validity_duration":    "2h",
		"reset_code_validity_duration": int64(10 * time.Minute),
		"simulated_latency":            "300ms",
		"analyzer_model":               "m",
		"analyzer_temperature":         0.5,
		"max_image_bytes":              1024,
		"s3_bucket":                    "bucket",
		"presign_ttl":                  "5m",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres", cfg.StorageDriver)
		assert.Equal(t, "postgres://x", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.SessionValidityDuration)
		assert.Equal(t, 10*time.Minute, cfg.ResetCodeValidityDuration)
		assert.Equal(t, 300*time.Millisecond, cfg.SimulatedLatency)
		assert.Equal(t, "m", cfg.AnalyzerModel)
		assert.InDelta(t, 0.5, cfg.AnalyzerTemperature, 1e-9)
		assert.Equal(t, int64(1024), cfg.MaxImageBytes)
		assert.True(t, cfg.ImageStoreEnabled())
		assert.Equal(t, 5*time.Minute, cfg.PresignTTL)
		assert.Equal(t, "us-east-1", cfg.S3Region, "absent keys keep defaults")
	})

	t.Run("no config flag leaves cfg alone", func(t *testing.T) {
		cfg := &Config{EndpointAddrGRPC: "defaults:1234", SessionValidityDuration: time.Minute}
		require.NoError(t, parseJSON(cfg, nil))
		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, time.Minute, cfg.SessionValidityDuration)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		require.Error(t, parseJSON(&Config{}, []string{"-c", bad}))
	})
}
