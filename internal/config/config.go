package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// DefaultCacheCapacity is used when no positive cache capacity is configured
const DefaultCacheCapacity = 2000

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Codegen  CodegenConfig  `mapstructure:"codegen"`
	RocketMQ RocketMQConfig `mapstructure:"rocketmq"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver string      `mapstructure:"driver"`
	DSN    string      `mapstructure:"dsn"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig holds the bearer secret and OIDC settings of the API gateway
type AuthConfig struct {
	AdminBearerToken       string `mapstructure:"admin_bearer_token"`
	AdminBearerTokenEnable bool   `mapstructure:"admin_bearer_token_enable"`
	IssuerURL              string `mapstructure:"issuer_url"`
	Audience               string `mapstructure:"audience"`
	EnforceAudience        bool   `mapstructure:"enforce_audience"`
	UserGroup              string `mapstructure:"user_group"`
	AdminGroup             string `mapstructure:"admin_group"`
}

// CacheConfig represents redirect cache configuration
type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// CodegenConfig represents short code generation configuration
type CodegenConfig struct {
	Length int `mapstructure:"length"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"server.port":                    "PORT",
	"server.mode":                    "GIN_MODE",
	"database.driver":                "DB_DRIVER",
	"database.dsn":                   "DATABASE_URL",
	"database.redis.addr":            "REDIS_ADDR",
	"database.redis.password":        "REDIS_PASSWORD",
	"database.redis.db":              "REDIS_DB",
	"auth.admin_bearer_token":        "ADMIN_BEARER_TOKEN",
	"auth.admin_bearer_token_enable": "ADMIN_BEARER_TOKEN_ENABLE",
	"auth.issuer_url":                "KEYCLOAK_ISSUER_URL",
	"auth.audience":                  "KEYCLOAK_AUDIENCE",
	"auth.enforce_audience":          "KEYCLOAK_ENFORCE_AUDIENCE",
	"auth.user_group":                "KEYCLOAK_USER_GROUP",
	"auth.admin_group":               "KEYCLOAK_ADMIN_GROUP",
	"cache.capacity":                 "REDIRECT_CACHE_MAX",
	"codegen.length":                 "CODE_LENGTH",
	"rocketmq.nameserver":            "ROCKETMQ_NAMESERVER",
	"rocketmq.topic":                 "ROCKETMQ_TOPIC",
	"rocketmq.group":                 "ROCKETMQ_GROUP",
}

// Load loads configuration from an optional YAML file and the environment.
// A missing file is not an error; defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.normalize()

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.redis.addr", "")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)
	v.SetDefault("auth.admin_bearer_token", "")
	v.SetDefault("auth.admin_bearer_token_enable", false)
	v.SetDefault("auth.issuer_url", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("auth.enforce_audience", false)
	v.SetDefault("auth.user_group", "")
	v.SetDefault("auth.admin_group", "")
	v.SetDefault("cache.capacity", DefaultCacheCapacity)
	v.SetDefault("codegen.length", 6)
	v.SetDefault("rocketmq.nameserver", "")
	v.SetDefault("rocketmq.topic", "click_events")
	v.SetDefault("rocketmq.group", "linkgate_click_group")
}

func (c *Config) normalize() {
	c.Auth.UserGroup = strings.TrimSpace(c.Auth.UserGroup)
	c.Auth.AdminGroup = strings.TrimSpace(c.Auth.AdminGroup)
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	if c.Cache.Capacity <= 0 {
		c.Cache.Capacity = DefaultCacheCapacity
	}
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
