package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Infrastructure
	Postgres PostgresConfig
	Redis    RedisConfig

	// Webhook ingestion
	Webhook     WebhookConfig
	Idempotency IdempotencyConfig

	// Alert pipeline
	Remediation RemediationConfig
	Sweeper     SweeperConfig

	// Admin surface
	Admin AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// WebhookConfig holds ingestion security settings.
// SigningModes maps a source name to its HMAC signing convention:
// "timestamped" signs "{timestamp}.{body}", "body" signs the raw body
// alone. Unknown sources fall back to timestamped.
type WebhookConfig struct {
	Secret          string
	FreshnessWindow time.Duration
	RateLimitPerMin int
	SigningModes    map[string]string
}

type IdempotencyConfig struct {
	TTL time.Duration
}

type RemediationConfig struct {
	ActionTimeout   time.Duration
	SlackWebhookURL string
}

// SweeperConfig holds cron specs for the maintenance worker.
type SweeperConfig struct {
	IdempotencyCleanupSpec string
	AlertSweepSpec         string
}

type AdminConfig struct {
	InternalKey string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Webhook ingestion
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.FreshnessWindow = viper.GetDuration("webhook.freshness_window")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.SigningModes = viper.GetStringMapString("webhook.signing_modes")
	if secret := viper.GetString("webhook_secret"); secret != "" {
		cfg.Webhook.Secret = secret
	}

	// Idempotency
	cfg.Idempotency.TTL = viper.GetDuration("idempotency.ttl")

	// Remediation
	cfg.Remediation.ActionTimeout = viper.GetDuration("remediation.action_timeout")
	cfg.Remediation.SlackWebhookURL = viper.GetString("remediation.slack_webhook_url")
	if slackURL := viper.GetString("slack_webhook_url"); slackURL != "" {
		cfg.Remediation.SlackWebhookURL = slackURL
	}

	// Sweeper
	cfg.Sweeper.IdempotencyCleanupSpec = viper.GetString("sweeper.idempotency_cleanup_spec")
	cfg.Sweeper.AlertSweepSpec = viper.GetString("sweeper.alert_sweep_spec")

	// Admin
	cfg.Admin.InternalKey = viper.GetString("admin.internal_key")
	if key := viper.GetString("internal_api_key"); key != "" {
		cfg.Admin.InternalKey = key
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "webhook_ops")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("webhook.freshness_window", 5*time.Minute)
	viper.SetDefault("webhook.rate_limit_per_min", 120)

	viper.SetDefault("idempotency.ttl", 7*24*time.Hour)

	viper.SetDefault("remediation.action_timeout", 10*time.Second)

	viper.SetDefault("sweeper.idempotency_cleanup_spec", "0 * * * *")
	viper.SetDefault("sweeper.alert_sweep_spec", "*/5 * * * *")
}
