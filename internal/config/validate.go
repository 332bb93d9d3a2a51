package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.RateLimit.Enabled {
		if err := c.RateLimit.validate(); err != nil {
			return fmt.Errorf("rate_limit: %w", err)
		}
	}

	if c.Mail.Enabled() && strings.TrimSpace(c.Mail.FromEmail) == "" {
		return fmt.Errorf("mail.from_email is required when sendgrid_api_key is set")
	}

	if strings.TrimSpace(c.Certificates.Dir) == "" {
		return fmt.Errorf("certificates.dir must not be empty")
	}

	if c.Cleanup.RetentionDays < 1 {
		return fmt.Errorf("cleanup.retention_days must be >= 1 (got %d)", c.Cleanup.RetentionDays)
	}

	return nil
}

func (r RateLimitConfig) validate() error {
	if r.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", r.RequestsPerMinute)
	}
	if r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", r.Burst)
	}
	return nil
}
