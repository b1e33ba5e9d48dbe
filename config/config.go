package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	PublicDir      string   `yaml:"public_dir"`
}

// DatabaseConfig holds the relational store connection settings. DSN,
// when set, wins over the individual fields.
type DatabaseConfig struct {
	DSN           string        `yaml:"dsn"`
	Host          string        `yaml:"host"`
	Port          int           `yaml:"port"`
	User          string        `yaml:"user"`
	Password      string        `yaml:"password"`
	Name          string        `yaml:"name"`
	SSLMode       string        `yaml:"sslmode"`
	AutoMigrate   bool          `yaml:"auto_migrate"`
	SlowThreshold time.Duration `yaml:"slow_threshold"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8081,
			Mode:      "debug",
			PublicDir: "./public",
		},
		Database: DatabaseConfig{
			Host:          "localhost",
			Port:          5432,
			User:          "postgres",
			Name:          "proyecto3p",
			SSLMode:       "disable",
			SlowThreshold: 200 * time.Millisecond,
		},
		Log: LogConfig{
			Env:   "development",
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if err := envInt("PORT", &c.Server.Port); err != nil {
		return err
	}
	envString("GIN_MODE", &c.Server.Mode)
	envString("PUBLIC_DIR", &c.Server.PublicDir)
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		c.Server.AllowedOrigins = splitList(v)
	}

	envString("DATABASE_DSN", &c.Database.DSN)
	envString("DB_HOST", &c.Database.Host)
	if err := envInt("DB_PORT", &c.Database.Port); err != nil {
		return err
	}
	envString("DB_USER", &c.Database.User)
	envString("DB_PASSWORD", &c.Database.Password)
	envString("DB_NAME", &c.Database.Name)
	envString("DB_SSLMODE", &c.Database.SSLMode)
	if err := envBool("DB_AUTO_MIGRATE", &c.Database.AutoMigrate); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("DB_SLOW_THRESHOLD"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid DB_SLOW_THRESHOLD %q: %w", v, err)
		}
		c.Database.SlowThreshold = d
	}

	envString("APP_ENV", &c.Log.Env)
	envString("LOG_LEVEL", &c.Log.Level)
	return nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode %q", c.Server.Mode)
	}
	if c.Database.DSN == "" && c.Database.Name == "" {
		return fmt.Errorf("database name or DSN is required")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DatabaseDSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DatabaseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = b
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
