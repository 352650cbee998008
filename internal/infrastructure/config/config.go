package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Datastore DatastoreConfig `mapstructure:"datastore"`
	Log       LogConfig       `mapstructure:"log"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
	Port int    `mapstructure:"port"`
}

// HTTPConfig holds HTTP server settings
type HTTPConfig struct {
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// DatastoreConfig holds the datastore endpoint and the service-role
// credential. Both may legitimately be empty: the server still starts and
// the order endpoint reports a configuration error per request.
type DatastoreConfig struct {
	URL             string        `mapstructure:"url"`
	ServiceKey      string        `mapstructure:"service_key"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Configured reports whether both the endpoint and the credential are set.
func (d *DatastoreConfig) Configured() bool {
	return d.URL != "" && d.ServiceKey != ""
}

// DSN builds the connection string, injecting the service-role credential
// as the password of the datastore URL.
func (d *DatastoreConfig) DSN() (string, error) {
	u, err := url.Parse(d.URL)
	if err != nil {
		return "", fmt.Errorf("invalid datastore url: %w", err)
	}

	user := "service_role"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, d.ServiceKey)

	return u.String(), nil
}

// Load reads configuration from config.toml and environment variables.
// Environment variables use the SHOP_ prefix, e.g. SHOP_DATASTORE_URL
// overrides datastore.url.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("SHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "plaud-store")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("http.read_timeout", "15s")
	v.SetDefault("http.write_timeout", "15s")
	v.SetDefault("http.idle_timeout", "60s")
	v.SetDefault("http.max_header_bytes", 1<<20)
	v.SetDefault("http.max_body_bytes", int64(1<<20))

	v.SetDefault("datastore.url", "")
	v.SetDefault("datastore.service_key", "")
	v.SetDefault("datastore.max_open_conns", 25)
	v.SetDefault("datastore.max_idle_conns", 5)
	v.SetDefault("datastore.conn_max_lifetime", "5m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
}

func (c *Config) validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app.port must be between 1 and 65535, got %d", c.App.Port)
	}
	if c.Datastore.MaxOpenConns <= 0 {
		return fmt.Errorf("datastore.max_open_conns must be positive, got %d", c.Datastore.MaxOpenConns)
	}
	if c.Datastore.MaxIdleConns < 0 {
		return fmt.Errorf("datastore.max_idle_conns must not be negative, got %d", c.Datastore.MaxIdleConns)
	}
	if c.Datastore.MaxIdleConns > c.Datastore.MaxOpenConns {
		return fmt.Errorf("datastore.max_idle_conns (%d) must not exceed datastore.max_open_conns (%d)",
			c.Datastore.MaxIdleConns, c.Datastore.MaxOpenConns)
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
