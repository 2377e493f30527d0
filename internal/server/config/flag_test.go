package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-x", "postgres", "-d", "db", "-s", "secret",
				"-t", "60", "-r", "5", "-l", "250", "-k", "key", "-m", "model", "-v", "debug",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			},
			expected: &Config{
				EndpointAddrGRPC:          "127.0.0.1:9090",
				StorageDriver:             "postgres",
				DatabaseDSN:               "db",
				SecretKey:                 "secret",
				SessionValidityDuration:   time.Hour,
				ResetCodeValidityDuration: 5 * time.Minute,
				SimulatedLatency:          250 * time.Millisecond,
				AnalyzerAPIKey:            "key",
				AnalyzerModel:             "model",
				LogLevel:                  "debug",
				S3RootUser:                "user",
				S3RootPassword:            "password",
				S3Bucket:                  "bucket",
				S3Region:                  "us-west-1",
				S3BaseEndpoint:            "http://endpoint",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "--verbose", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"},
		},
		{
			name:      "bad int",
			args:      []string{"-l", "fast"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
