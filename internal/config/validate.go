package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Desk.validate(); err != nil {
		return fmt.Errorf("desk: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if !slices.Contains(Drivers, s.Driver) {
		return fmt.Errorf("driver must be one of %s (got %q)", strings.Join(Drivers, ", "), s.Driver)
	}
	if s.UsesPath() && strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("path is required for driver %q", s.Driver)
	}
	if s.Driver == DriverRedis && strings.TrimSpace(s.RedisAddr) == "" {
		return fmt.Errorf("redis_addr is required for driver %q", s.Driver)
	}
	if strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("key must not be empty")
	}
	if s.RedisDB < 0 {
		return fmt.Errorf("redis_db must be >= 0 (got %d)", s.RedisDB)
	}
	return nil
}

func (d *DeskConfig) validate() error {
	loc, err := ParseTimezone(d.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	d.Location = loc
	if d.RetentionDays < 1 {
		return fmt.Errorf("retention_days must be >= 1 (got %d)", d.RetentionDays)
	}
	return nil
}

// ParseTimezone resolves an IANA zone name. "" and "Local" mean the system
// zone.
func ParseTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
