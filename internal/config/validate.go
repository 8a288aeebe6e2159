package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if len(c.Auth.AllowedProviders()) == 0 {
		return fmt.Errorf("at least one identity provider must be configured (Google or dev_login)")
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Sentiment.validate(); err != nil {
		return fmt.Errorf("sentiment: %w", err)
	}

	if err := c.Notify.validate(); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	if c.Invite.MaxIssueAttempts < 1 {
		return fmt.Errorf("invite.max_issue_attempts must be >= 1 (got %d)", c.Invite.MaxIssueAttempts)
	}

	if c.RateLimit.Redeem < 1 || c.RateLimit.SignIn < 1 || c.RateLimit.Default < 1 {
		return fmt.Errorf("rate_limit values must be >= 1")
	}

	return nil
}

func (s *SentimentConfig) validate() error {
	if s.URL != "" {
		u, err := url.Parse(s.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("url %q is not an absolute URL", s.URL)
		}
	}
	if s.Apps == "" {
		return fmt.Errorf("apps must not be empty")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	switch n.Backend {
	case NotifyBackendPostgres:
	case NotifyBackendRedis:
		if n.RedisURL == "" {
			return fmt.Errorf("redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", n.Backend, NotifyBackendPostgres, NotifyBackendRedis)
	}
	if n.Channel == "" {
		return fmt.Errorf("channel must not be empty")
	}
	return nil
}
