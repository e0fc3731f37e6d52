// Package config loads the application configuration.
//
// Values come from three layers, later layers winning: built-in defaults,
// an optional YAML file named by CONFIG_FILE, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	envcfg "article-filter/pkg/config"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration of the CLI and the API server.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

// DatabaseConfig describes how the article store reaches its database.
type DatabaseConfig struct {
	// Driver is postgres or sqlite. Default: postgres
	Driver string `yaml:"driver"`

	// URL, when set, is used verbatim as the Postgres DSN and the individual
	// connection parts below are ignored.
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`

	// Path is the SQLite database file.
	Path string `yaml:"path"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`

	// QueryTimeout bounds a single fetch. Zero disables the bound.
	QueryTimeout time.Duration `yaml:"query_timeout"`

	// AutoMigrate creates the articles table at startup when missing.
	AutoMigrate bool `yaml:"auto_migrate"`
}

// StoreConfig controls the resilience wrapper around the article store.
type StoreConfig struct {
	RetryAttempts  int  `yaml:"retry_attempts"`
	CircuitBreaker bool `yaml:"circuit_breaker"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr               string        `yaml:"addr"`
	ReadTimeout        time.Duration `yaml:"read_timeout"`
	WriteTimeout       time.Duration `yaml:"write_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute"`
	RateLimitBurst     int           `yaml:"rate_limit_burst"`
}

// TracingConfig configures OpenTelemetry.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP/HTTP collector base URL, e.g. http://localhost:4318.
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "postgres",
			SSLMode:         "disable",
			Path:            "./articles.db",
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
			QueryTimeout:    10 * time.Second,
		},
		Store: StoreConfig{
			RetryAttempts:  3,
			CircuitBreaker: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			Addr:               ":8080",
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			RateLimitPerMinute: 600,
			RateLimitBurst:     50,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			SampleRatio: 1,
			Endpoint:    "http://localhost:4318",
			ServiceName: "article-filter",
		},
	}
}

// Load builds the configuration from defaults, the optional CONFIG_FILE and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_FILE"))
}

// LoadFrom is Load with an explicit YAML file. An empty path skips the file.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	db := &c.Database
	db.Driver = strings.ToLower(envcfg.GetEnvString("DB_DRIVER", db.Driver))
	db.URL = envcfg.GetEnvString("DATABASE_URL", db.URL)
	db.Host = envcfg.GetEnvString("DB_HOST", db.Host)
	db.Port = envcfg.GetEnvInt("DB_PORT", db.Port)
	db.User = envcfg.GetEnvString("DB_USER", db.User)
	db.Password = envcfg.GetEnvString("DB_PASSWORD", db.Password)
	db.Name = envcfg.GetEnvString("DB_NAME", db.Name)
	db.SSLMode = envcfg.GetEnvString("DB_SSLMODE", db.SSLMode)
	db.Path = envcfg.GetEnvString("DB_PATH", db.Path)
	db.MaxOpenConns = envcfg.GetEnvInt("DB_MAX_OPEN_CONNS", db.MaxOpenConns)
	db.MaxIdleConns = envcfg.GetEnvInt("DB_MAX_IDLE_CONNS", db.MaxIdleConns)
	db.ConnMaxLifetime = envcfg.GetEnvDuration("DB_CONN_MAX_LIFETIME", db.ConnMaxLifetime)
	db.ConnMaxIdleTime = envcfg.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", db.ConnMaxIdleTime)
	db.QueryTimeout = envcfg.GetEnvDuration("DB_QUERY_TIMEOUT", db.QueryTimeout)
	db.AutoMigrate = envcfg.GetEnvBool("DB_AUTO_MIGRATE", db.AutoMigrate)

	c.Store.RetryAttempts = envcfg.GetEnvInt("STORE_RETRY_ATTEMPTS", c.Store.RetryAttempts)
	c.Store.CircuitBreaker = envcfg.GetEnvBool("STORE_CIRCUIT_BREAKER", c.Store.CircuitBreaker)

	c.Log.Level = envcfg.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envcfg.GetEnvString("LOG_FORMAT", c.Log.Format)

	c.Server.Addr = envcfg.GetEnvString("HTTP_ADDR", c.Server.Addr)
	c.Server.ReadTimeout = envcfg.GetEnvDuration("HTTP_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = envcfg.GetEnvDuration("HTTP_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.ShutdownTimeout = envcfg.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.RateLimitPerMinute = envcfg.GetEnvInt("RATE_LIMIT_PER_MINUTE", c.Server.RateLimitPerMinute)
	c.Server.RateLimitBurst = envcfg.GetEnvInt("RATE_LIMIT_BURST", c.Server.RateLimitBurst)

	c.Tracing.Enabled = envcfg.GetEnvBool("TRACING_ENABLED", c.Tracing.Enabled)
	c.Tracing.SampleRatio = envcfg.GetEnvFloat("TRACING_SAMPLE_RATIO", c.Tracing.SampleRatio)
	c.Tracing.Endpoint = envcfg.GetEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", c.Tracing.Endpoint)
	c.Tracing.ServiceName = envcfg.GetEnvString("OTEL_SERVICE_NAME", c.Tracing.ServiceName)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Store.RetryAttempts < 1 {
		errs = append(errs, fmt.Errorf("store.retry_attempts must be at least 1, got %d", c.Store.RetryAttempts))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if err := envcfg.ValidatePositiveDuration(d); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if c.Server.RateLimitPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit_per_minute must be positive, got %d", c.Server.RateLimitPerMinute))
	}
	if c.Server.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit_burst must be positive, got %d", c.Server.RateLimitBurst))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be between 0 and 1, got %v", c.Tracing.SampleRatio))
	}
	if c.Tracing.Enabled {
		if u, err := url.Parse(c.Tracing.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("tracing.endpoint must be an absolute URL, got %q", c.Tracing.Endpoint))
		}
	}

	return errors.Join(errs...)
}

// Validate checks the database settings for the selected driver.
func (d DatabaseConfig) Validate() error {
	var errs []error

	switch d.Driver {
	case DriverPostgres:
		if d.URL == "" {
			if d.Host == "" {
				errs = append(errs, errors.New("database.host is required"))
			}
			if d.Port < 1 || d.Port > 65535 {
				errs = append(errs, fmt.Errorf("database.port must be between 1 and 65535, got %d", d.Port))
			}
			if d.Name == "" {
				errs = append(errs, errors.New("database.name is required"))
			}
		} else if _, err := url.Parse(d.URL); err != nil {
			errs = append(errs, fmt.Errorf("database.url is invalid: %w", err))
		}
	case DriverSQLite:
		if d.Path == "" {
			errs = append(errs, errors.New("database.path is required for sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver must be %q or %q, got %q", DriverPostgres, DriverSQLite, d.Driver))
	}

	if d.MaxOpenConns <= 0 {
		errs = append(errs, fmt.Errorf("database.max_open_conns must be positive, got %d", d.MaxOpenConns))
	}
	if d.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("database.max_idle_conns must be non-negative, got %d", d.MaxIdleConns))
	}
	if err := envcfg.ValidateNonNegativeDuration(d.QueryTimeout); err != nil {
		errs = append(errs, fmt.Errorf("database.query_timeout: %w", err))
	}

	return errors.Join(errs...)
}

// DSN returns the data source name for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return "file:" + d.Path + "?_pragma=busy_timeout(5000)"
	}
	if d.URL != "" {
		return d.URL
	}
	return d.postgresURL().String()
}

// Redacted returns the DSN with the password masked, for logging.
func (d DatabaseConfig) Redacted() string {
	if d.Driver == DriverSQLite {
		return d.DSN()
	}
	if d.URL != "" {
		u, err := url.Parse(d.URL)
		if err != nil {
			return "<unparseable database url>"
		}
		return u.Redacted()
	}
	return d.postgresURL().Redacted()
}

func (d DatabaseConfig) postgresURL() *url.URL {
	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else if d.User != "" {
		u.User = url.User(d.User)
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{d.SSLMode}}.Encode()
	}
	return u
}
