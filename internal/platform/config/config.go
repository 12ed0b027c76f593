// Package config loads the server configuration from the environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment,
// e.g. server.addr is read from INSTAGRAM_SERVER_ADDR.
const EnvPrefix = "INSTAGRAM"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Security SecurityConfig `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// InstanceName selects a Cloud SQL unix socket and takes precedence over Host/Port.
type DatabaseConfig struct {
	User           string        `mapstructure:"user" validate:"required"`
	Password       string        `mapstructure:"password"`
	Name           string        `mapstructure:"name" validate:"required"`
	Host           string        `mapstructure:"host" validate:"required_without=InstanceName"`
	Port           string        `mapstructure:"port" validate:"required_without=InstanceName"`
	InstanceName   string        `mapstructure:"instance_name"`
	SSLMode        string        `mapstructure:"ssl_mode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"gt=0"`
	RunMigrations  bool          `mapstructure:"run_migrations"`
}

// RedisConfig contains Redis settings. An empty Host disables the user cache.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// Enabled reports whether a Redis host is configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// Addr returns the host:port address of the Redis server.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// CacheConfig contains settings for the user cache.
type CacheConfig struct {
	TTL       time.Duration `mapstructure:"ttl" validate:"gte=0"`
	Namespace string        `mapstructure:"namespace"`
}

// SecurityConfig contains password hashing settings.
type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// legacyEnv maps configuration keys to the unprefixed variables used by existing deployments.
var legacyEnv = map[string]string{
	"database.user":           "DB_USER",
	"database.password":       "DB_PASSWORD",
	"database.name":           "DB_NAME",
	"database.host":           "DB_HOST",
	"database.port":           "DB_PORT",
	"database.instance_name":  "INSTANCE_CONNECTION_NAME",
	"database.run_migrations": "RUN_MIGRATIONS",
	"redis.host":              "REDIS_HOST",
	"redis.port":              "REDIS_PORT",
	"redis.password":          "REDIS_PASSWORD",
}

// Load reads configuration from environment variables and an optional config file.
// Environment variables take precedence over values from the config file.
// The result is validated before it is returned.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.instance_name", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.connect_timeout", 60*time.Second)
	v.SetDefault("database.run_migrations", false)
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.namespace", "users")
	v.SetDefault("security.bcrypt_cost", 10)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
