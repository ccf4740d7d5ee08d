package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Exposure.validate(); err != nil {
		return fmt.Errorf("exposure: %w", err)
	}
	if err := c.Retention.validate(); err != nil {
		return fmt.Errorf("retention: %w", err)
	}
	if err := c.Payments.validate(); err != nil {
		return fmt.Errorf("payments: %w", err)
	}

	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("events.url is required when events are enabled")
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: requests_per_second and burst must be > 0")
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (e *ExposureConfig) validate() error {
	if e.ContactWindow <= 0 {
		return fmt.Errorf("contact_window must be > 0 (got %v)", e.ContactWindow)
	}
	if e.AlertLifetime <= 0 {
		return fmt.Errorf("alert_lifetime must be > 0 (got %v)", e.AlertLifetime)
	}
	return nil
}

func (r *RetentionConfig) validate() error {
	if r.ContactDays <= 0 {
		return fmt.Errorf("contact_days must be > 0 (got %d)", r.ContactDays)
	}
	if r.AlertDays <= 0 {
		return fmt.Errorf("alert_days must be > 0 (got %d)", r.AlertDays)
	}
	if r.ExpiredAlertGraceDays < 0 {
		return fmt.Errorf("expired_alert_grace_days must be >= 0 (got %d)", r.ExpiredAlertGraceDays)
	}
	return nil
}

func (p *PaymentsConfig) validate() error {
	if p.Provider != "sandbox" {
		return fmt.Errorf("unsupported provider %q", p.Provider)
	}
	switch p.SandboxMode {
	case "succeed", "requires_action", "decline", "unavailable":
	default:
		return fmt.Errorf("unknown sandbox_mode %q", p.SandboxMode)
	}
	if len(p.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter ISO code (got %q)", p.Currency)
	}
	p.Currency = strings.ToUpper(p.Currency)
	return nil
}
