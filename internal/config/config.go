package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Exposure  ExposureConfig  `yaml:"exposure"`
	Retention RetentionConfig `yaml:"retention"`
	Payments  PaymentsConfig  `yaml:"payments"`
	Events    EventsConfig    `yaml:"events"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// the external identity provider with a shared HS256 secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"servicebook"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// ExposureConfig holds the exposure alert windows.
type ExposureConfig struct {
	ContactWindow time.Duration `yaml:"contact_window" env:"EXPOSURE_CONTACT_WINDOW" env-default:"360h"`
	AlertLifetime time.Duration `yaml:"alert_lifetime" env:"EXPOSURE_ALERT_LIFETIME" env-default:"360h"`
}

// RetentionConfig holds the privacy purge windows, in days.
type RetentionConfig struct {
	ContactDays           int `yaml:"contact_days"             env:"RETENTION_CONTACT_DAYS"             env-default:"15"`
	AlertDays             int `yaml:"alert_days"               env:"RETENTION_ALERT_DAYS"               env-default:"15"`
	ExpiredAlertGraceDays int `yaml:"expired_alert_grace_days" env:"RETENTION_EXPIRED_ALERT_GRACE_DAYS" env-default:"30"`
}

// PaymentsConfig selects the payment provider.
type PaymentsConfig struct {
	Provider    string `yaml:"provider"     env:"PAYMENTS_PROVIDER"     env-default:"sandbox"`
	Currency    string `yaml:"currency"     env:"PAYMENTS_CURRENCY"     env-default:"AUD"`
	SandboxMode string `yaml:"sandbox_mode" env:"PAYMENTS_SANDBOX_MODE" env-default:"succeed"`
}

// EventsConfig holds NATS publisher settings.
type EventsConfig struct {
	Enabled       bool          `yaml:"enabled"        env:"EVENTS_ENABLED"        env-default:"false"`
	URL           string        `yaml:"url"            env:"EVENTS_NATS_URL"       env-default:"nats://127.0.0.1:4222"`
	SubjectPrefix string        `yaml:"subject_prefix" env:"EVENTS_SUBJECT_PREFIX" env-default:"servicebook"`
	Timeout       time.Duration `yaml:"timeout"        env:"EVENTS_TIMEOUT"        env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request rate limits.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED" env-default:"true"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"     env-default:"10"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"   env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// Origins returns the configured CORS origins as a slice.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ContactRetention returns the contact retention window as a duration.
func (r RetentionConfig) ContactRetention() time.Duration {
	return days(r.ContactDays)
}

// AlertRetention returns the alert retention window as a duration.
func (r RetentionConfig) AlertRetention() time.Duration {
	return days(r.AlertDays)
}

// ExpiredAlertGrace returns the expired alert sweep cutoff as a duration.
func (r RetentionConfig) ExpiredAlertGrace() time.Duration {
	return days(r.ExpiredAlertGraceDays)
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
