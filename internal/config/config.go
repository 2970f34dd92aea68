// Package config - application configuration management.
//
// Uses Viper for:
// - YAML config files
// - Environment variables (FTWALLET_ prefix)
// - Default values
//
// Priority, highest first: environment variables, config file, defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ============================================
// Main Configuration
// ============================================

// Config is the root configuration of one replica process.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Replica ReplicaConfig `mapstructure:"replica"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Events  EventsConfig  `mapstructure:"events"`
	Tracing TracingConfig `mapstructure:"tracing"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Log     LogConfig     `mapstructure:"log"`
}

// ============================================
// App Configuration
// ============================================

// AppConfig identifies the build.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"` // development, staging, production
	Debug       bool   `mapstructure:"debug"`
}

// IsDevelopment returns true for the development environment.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true for the production environment.
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

// ============================================
// HTTP Server Configuration
// ============================================

// ServerConfig configures the external HTTP API. Only the primary serves it.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Address returns the full listen address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ============================================
// Replica Configuration
// ============================================

// ReplicaConfig wires one process into the primary-backup pair.
type ReplicaConfig struct {
	// Role is "primary" or "backup".
	Role string `mapstructure:"role"`
	// GRPCAddr is where this replica serves the WalletReplica RPC surface.
	GRPCAddr string `mapstructure:"grpc_addr"`
	// PeerTarget is the peer's RPC endpoint (replication target for the
	// primary, probed endpoint for both).
	PeerTarget string `mapstructure:"peer_target"`
	// RPCTimeout bounds every replication call.
	RPCTimeout time.Duration `mapstructure:"rpc_timeout"`
	// HealthInterval is the failover monitor probe period.
	HealthInterval time.Duration `mapstructure:"health_interval"`
	// HealthTimeout is the per-probe readiness deadline.
	HealthTimeout time.Duration `mapstructure:"health_timeout"`
}

// IsPrimary returns true when this process accepts client API calls.
func (c *ReplicaConfig) IsPrimary() bool {
	return c.Role == "primary"
}

// ============================================
// Ledger Configuration
// ============================================

// LedgerConfig locates the on-disk wallet and transaction files.
type LedgerConfig struct {
	// DataDir holds <prefix>_wallets.json and <prefix>_transactions.json.
	DataDir string `mapstructure:"data_dir"`
	// FilePrefix defaults to the replica role when empty.
	FilePrefix string `mapstructure:"file_prefix"`
}

// ============================================
// Events Configuration
// ============================================

// EventsConfig configures the optional NATS event stream.
type EventsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// ============================================
// Tracing Configuration
// ============================================

// TracingConfig configures the optional OTLP trace export.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// ============================================
// CORS Configuration
// ============================================

// CORSConfig lists the origins allowed in production.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ============================================
// Log Configuration
// ============================================

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// ============================================
// Configuration Loading
// ============================================

// Load reads configuration from a file plus the environment.
//
// configPath is the directory to search (e.g. "configs"), configName the
// file name without extension (e.g. "config"). A missing file is not an
// error; defaults and env vars still apply.
func Load(configPath, configName string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/ftwallet")

	v.SetEnvPrefix("FTWALLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv reads configuration from the environment only.
func LoadFromEnv() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("FTWALLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults installs the reference deployment: primary on RPC :50051 and
// HTTP :8000, backup expected on :50052, 5 second probe cadence.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "ftwallet")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", true)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Replica defaults
	v.SetDefault("replica.role", "primary")
	v.SetDefault("replica.grpc_addr", "localhost:50051")
	v.SetDefault("replica.peer_target", "localhost:50052")
	v.SetDefault("replica.rpc_timeout", "5s")
	v.SetDefault("replica.health_interval", "5s")
	v.SetDefault("replica.health_timeout", "5s")

	// Ledger defaults
	v.SetDefault("ledger.data_dir", ".")
	v.SetDefault("ledger.file_prefix", "")

	// Events defaults
	v.SetDefault("events.enabled", false)
	v.SetDefault("events.url", "nats://localhost:4222")

	// Tracing defaults
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.sample_ratio", 1.0)

	// CORS defaults
	v.SetDefault("cors.allowed_origins", []string{"*"})

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// bindEnvVars binds the short env names used by deployment scripts.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("replica.role", "FTWALLET_REPLICA_ROLE", "REPLICA_ROLE", "ROLE")
	_ = v.BindEnv("replica.grpc_addr", "FTWALLET_REPLICA_GRPC_ADDR", "GRPC_ADDR")
	_ = v.BindEnv("replica.peer_target", "FTWALLET_REPLICA_PEER_TARGET", "PEER_TARGET")
	_ = v.BindEnv("server.port", "FTWALLET_SERVER_PORT", "PORT")
	_ = v.BindEnv("ledger.data_dir", "FTWALLET_LEDGER_DATA_DIR", "DATA_DIR")
	_ = v.BindEnv("events.url", "FTWALLET_EVENTS_URL", "NATS_URL")
	_ = v.BindEnv("app.environment", "FTWALLET_APP_ENVIRONMENT", "ENVIRONMENT", "ENV")
}

// ============================================
// Configuration Validation
// ============================================

// Validate rejects configurations that cannot run.
func (c *Config) Validate() error {
	if c.Replica.Role != "primary" && c.Replica.Role != "backup" {
		return fmt.Errorf("invalid replica role: %q (want primary or backup)", c.Replica.Role)
	}

	if c.Replica.GRPCAddr == "" {
		return fmt.Errorf("replica grpc_addr is required")
	}

	if c.Replica.PeerTarget == "" {
		return fmt.Errorf("replica peer_target is required")
	}

	if c.Replica.HealthInterval <= 0 {
		return fmt.Errorf("invalid health interval: %s", c.Replica.HealthInterval)
	}

	if c.Replica.RPCTimeout <= 0 {
		return fmt.Errorf("invalid rpc timeout: %s", c.Replica.RPCTimeout)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("events enabled but no NATS URL configured")
	}

	return nil
}

// LedgerPrefix returns the file prefix, falling back to the replica role.
func (c *Config) LedgerPrefix() string {
	if c.Ledger.FilePrefix != "" {
		return c.Ledger.FilePrefix
	}
	return c.Replica.Role
}

// ============================================
// Development Helpers
// ============================================

// Development returns a primary replica configuration for local work.
func Development() *Config {
	return &Config{
		App: AppConfig{
			Name:        "ftwallet",
			Version:     "dev",
			Environment: "development",
			Debug:       true,
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Replica: ReplicaConfig{
			Role:           "primary",
			GRPCAddr:       "localhost:50051",
			PeerTarget:     "localhost:50052",
			RPCTimeout:     5 * time.Second,
			HealthInterval: 5 * time.Second,
			HealthTimeout:  5 * time.Second,
		},
		Ledger: LedgerConfig{
			DataDir: ".",
		},
		Events: EventsConfig{
			Enabled: false,
			URL:     "nats://localhost:4222",
		},
		Tracing: TracingConfig{
			SampleRatio: 1.0,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "text",
		},
	}
}

// Test returns a quiet configuration for tests.
func Test() *Config {
	cfg := Development()
	cfg.App.Environment = "test"
	cfg.Log.Level = "error"
	return cfg
}
