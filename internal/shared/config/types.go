package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the driver specific data source name.
func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == DriverSQLite {
		if d.Path == "" {
			return "file::memory:?cache=shared"
		}
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	// SourceLevel overrides the lowest level logged with file:line.
	SourceLevel string `mapstructure:"source_level"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig caps content cache writes per client IP. It only applies
// when redis is enabled, since the counters live there.
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// ContentCacheConfig is read once at startup and handed to the content
// cache constructors. It is never reloaded.
type ContentCacheConfig struct {
	AIVersion              string        `mapstructure:"ai_version"`
	StalenessThresholdDays int           `mapstructure:"staleness_threshold_days"`
	StorageTimeout         time.Duration `mapstructure:"storage_timeout"`
	LeaseTTL               time.Duration `mapstructure:"lease_ttl"`
	FallbackCapacity       int           `mapstructure:"fallback_capacity"`
	FallbackTTL            time.Duration `mapstructure:"fallback_ttl"`
}

func (c *ContentCacheConfig) Validate() error {
	if c.AIVersion == "" {
		return fmt.Errorf("content_cache.ai_version is required (set AI_VERSION)")
	}
	if len(c.AIVersion) > 64 {
		return fmt.Errorf("content_cache.ai_version must be at most 64 characters")
	}
	if c.StalenessThresholdDays < 1 {
		return fmt.Errorf("content_cache.staleness_threshold_days must be at least 1, got %d", c.StalenessThresholdDays)
	}
	if c.StorageTimeout <= 0 {
		return fmt.Errorf("content_cache.storage_timeout must be positive")
	}
	if c.LeaseTTL <= 0 {
		return fmt.Errorf("content_cache.lease_ttl must be positive")
	}
	return nil
}
