package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the service. Values come from
// config.yaml when present, overridden by environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Offers   OffersConfig   `mapstructure:"offers"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// DSN builds the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret      string        `mapstructure:"jwt_secret"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	Issuer         string        `mapstructure:"issuer"`
}

type OffersConfig struct {
	ExpiryTTL time.Duration `mapstructure:"expiry_ttl"`
	Workers   int           `mapstructure:"workers"`
}

// Load reads configuration from ./config.yaml (optional) and the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.port", "8080")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "jobhub")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.access_token_ttl", 24*time.Hour)
	v.SetDefault("auth.issuer", "jobhub")
	v.SetDefault("offers.expiry_ttl", 24*time.Hour)
	v.SetDefault("offers.workers", 2)

	v.SetEnvPrefix("JOBHUB")
	v.AutomaticEnv()
	bindEnvAliases(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func bindEnvAliases(v *viper.Viper) {
	aliases := map[string]string{
		"server.port":           "PORT",
		"database.host":         "DB_HOST",
		"database.port":         "DB_PORT",
		"database.user":         "DB_USER",
		"database.password":     "DB_PASS",
		"database.name":         "DB_NAME",
		"redis.addr":            "REDIS_ADDR",
		"redis.password":        "REDIS_PASS",
		"auth.jwt_secret":       "JWT_SECRET",
		"auth.access_token_ttl": "ACCESS_TOKEN_TTL",
	}
	for key, env := range aliases {
		_ = v.BindEnv(key, env)
	}
}
