package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "memory", c.StorageDriver)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.SessionValidityDuration)
	assert.Equal(t, 15*time.Minute, c.ResetCodeValidityDuration)
	assert.Equal(t, "gemini-2.5-flash", c.AnalyzerModel)
	assert.InDelta(t, 0.2, c.AnalyzerTemperature, 1e-9)
	assert.Equal(t, int64(4*1024*1024), c.MaxImageBytes)
	assert.Equal(t, time.Hour, c.PresignTTL)
	assert.False(t, c.ImageStoreEnabled())
}

func TestLoadConfig_Layers(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "from-env")

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_grpc": "json:1",
		"storage_driver":     "sqlite",
		"analyzer_api_key":   "from-json",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-a", "flag:2"})
	require.NoError(t, err)

	assert.Equal(t, "flag:2", cfg.EndpointAddrGRPC, "flags beat json")
	assert.Equal(t, "sqlite", cfg.StorageDriver, "json beats defaults")
	assert.Equal(t, "from-env", cfg.AnalyzerAPIKey, "env beats json")
	assert.Equal(t, 15*time.Minute, cfg.ResetCodeValidityDuration)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"-c", "/does/not/exist.json"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-t", "soon"})
	require.Error(t, err)
}
