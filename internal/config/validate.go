package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Redis.Enabled() && strings.TrimSpace(c.Redis.Stream) == "" {
		return fmt.Errorf("redis.stream is required when redis.url is set")
	}

	if err := validateLog(c.Log); err != nil {
		return err
	}

	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}

	if err := c.ShareLink.validate(); err != nil {
		return fmt.Errorf("share_link: %w", err)
	}

	if err := c.Sync.validate(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	return nil
}

func validateLog(l LogConfig) error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, l.Level)
	}
	return nil
}

func (s ShareLinkConfig) validate() error {
	if s.DefaultTTL <= 0 {
		return fmt.Errorf("default_ttl must be > 0 (got %s)", s.DefaultTTL)
	}
	if s.MaxTTL < s.DefaultTTL {
		return fmt.Errorf("max_ttl (%s) must be >= default_ttl (%s)", s.MaxTTL, s.DefaultTTL)
	}
	if s.CleanupRetentionDays < 0 {
		return fmt.Errorf("cleanup_retention_days must be >= 0 (got %d)", s.CleanupRetentionDays)
	}
	return nil
}

func (s SyncConfig) validate() error {
	u, err := url.Parse(s.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_base_url must be an absolute URL (got %q)", s.APIBaseURL)
	}
	if s.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %s)", s.Interval)
	}
	if s.Timeout < s.Interval {
		return fmt.Errorf("timeout (%s) must be >= interval (%s)", s.Timeout, s.Interval)
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", s.MaxRetries)
	}
	return nil
}

// SplitList splits a comma-separated setting, dropping blanks.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
