package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		expected    bool
	}{
		{"development", "development", true},
		{"production", "production", false},
		{"staging", "staging", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &AppConfig{Environment: tt.environment}
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

func TestAppConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		expected    bool
	}{
		{"production", "production", true},
		{"development", "development", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &AppConfig{Environment: tt.environment}
			assert.Equal(t, tt.expected, cfg.IsProduction())
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	cfg := &ServerConfig{Host: "localhost", Port: 8000}
	assert.Equal(t, "localhost:8000", cfg.Address())
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "primary", cfg.Replica.Role)
	assert.True(t, cfg.Replica.IsPrimary())
	assert.Equal(t, "localhost:50051", cfg.Replica.GRPCAddr)
	assert.Equal(t, "localhost:50052", cfg.Replica.PeerTarget)
	assert.Equal(t, 5*time.Second, cfg.Replica.RPCTimeout)
	assert.Equal(t, 5*time.Second, cfg.Replica.HealthInterval)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, ".", cfg.Ledger.DataDir)
	assert.False(t, cfg.Events.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("FTWALLET_REPLICA_ROLE", "backup")
	t.Setenv("FTWALLET_REPLICA_GRPC_ADDR", "localhost:50052")
	t.Setenv("FTWALLET_REPLICA_PEER_TARGET", "localhost:50051")
	t.Setenv("FTWALLET_SERVER_PORT", "9000")
	t.Setenv("FTWALLET_LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "backup", cfg.Replica.Role)
	assert.False(t, cfg.Replica.IsPrimary())
	assert.Equal(t, "localhost:50052", cfg.Replica.GRPCAddr)
	assert.Equal(t, "localhost:50051", cfg.Replica.PeerTarget)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromEnv_ShortNames(t *testing.T) {
	t.Setenv("ROLE", "backup")
	t.Setenv("PEER_TARGET", "localhost:50051")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "backup", cfg.Replica.Role)
	assert.Equal(t, "localhost:50051", cfg.Replica.PeerTarget)
}

func TestLoad_ReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
replica:
  role: backup
  grpc_addr: "localhost:50052"
  peer_target: "localhost:50051"
ledger:
  data_dir: "/var/lib/ftwallet"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir, "config")
	require.NoError(t, err)

	assert.Equal(t, "backup", cfg.Replica.Role)
	assert.Equal(t, "/var/lib/ftwallet", cfg.Ledger.DataDir)
	// Defaults still apply where the file is silent
	assert.Equal(t, 5*time.Second, cfg.Replica.HealthInterval)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.Replica.Role)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad role", func(c *Config) { c.Replica.Role = "observer" }, "replica role"},
		{"empty grpc addr", func(c *Config) { c.Replica.GRPCAddr = "" }, "grpc_addr"},
		{"empty peer", func(c *Config) { c.Replica.PeerTarget = "" }, "peer_target"},
		{"zero health interval", func(c *Config) { c.Replica.HealthInterval = 0 }, "health interval"},
		{"zero rpc timeout", func(c *Config) { c.Replica.RPCTimeout = 0 }, "rpc timeout"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "server port"},
		{"events without url", func(c *Config) { c.Events.Enabled = true; c.Events.URL = "" }, "NATS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Development()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLedgerPrefix_FallsBackToRole(t *testing.T) {
	cfg := Development()
	assert.Equal(t, "primary", cfg.LedgerPrefix())

	cfg.Replica.Role = "backup"
	assert.Equal(t, "backup", cfg.LedgerPrefix())

	cfg.Ledger.FilePrefix = "nodeA"
	assert.Equal(t, "nodeA", cfg.LedgerPrefix())
}

func TestDevelopmentAndTestHelpers(t *testing.T) {
	dev := Development()
	require.NoError(t, dev.Validate())
	assert.True(t, dev.App.IsDevelopment())

	test := Test()
	require.NoError(t, test.Validate())
	assert.Equal(t, "error", test.Log.Level)
}
