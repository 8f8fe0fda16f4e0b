package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backend identifiers accepted by storage.backend.
const (
	BackendLocal     = "local"
	BackendMemory    = "memory"
	BackendRemote    = "remote"
	BackendGCalendar = "gcalendar"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Calendar specifics
	Storage  StorageConfig
	Calendar CalendarConfig
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

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
}

// StorageConfig selects and configures the event store backend.
type StorageConfig struct {
	Backend   string
	Local     LocalStorageConfig
	Memory    MemoryStorageConfig
	Remote    RemoteStorageConfig
	GCalendar GCalendarStorageConfig
}

type LocalStorageConfig struct {
	Path string
}

type MemoryStorageConfig struct {
	Latency time.Duration
}

type RemoteStorageConfig struct {
	BaseURL string
	Timeout time.Duration
}

type GCalendarStorageConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
	EventDuration   time.Duration
}

type CalendarConfig struct {
	WeekStart time.Weekday
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	// Storage
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(viper.GetString("storage.backend")))
	cfg.Storage.Local.Path = viper.GetString("storage.local.path")
	cfg.Storage.Memory.Latency = viper.GetDuration("storage.memory.latency")
	cfg.Storage.Remote.BaseURL = strings.TrimRight(viper.GetString("storage.remote.base_url"), "/")
	cfg.Storage.Remote.Timeout = viper.GetDuration("storage.remote.timeout")
	cfg.Storage.GCalendar.CredentialsPath = viper.GetString("storage.gcalendar.credentials_path")
	cfg.Storage.GCalendar.CalendarID = viper.GetString("storage.gcalendar.calendar_id")
	cfg.Storage.GCalendar.Timezone = viper.GetString("storage.gcalendar.timezone")
	cfg.Storage.GCalendar.EventDuration = viper.GetDuration("storage.gcalendar.event_duration")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.Storage.GCalendar.CredentialsPath = googleCreds
	}

	weekStart, err := parseWeekday(viper.GetString("calendar.week_start"))
	if err != nil {
		return nil, err
	}
	cfg.Calendar.WeekStart = weekStart

	if err := validateStorageConfig(&cfg.Storage); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 600)

	// Storage defaults
	viper.SetDefault("storage.backend", BackendLocal)
	viper.SetDefault("storage.local.path", "data/events.json")
	viper.SetDefault("storage.memory.latency", "0s")
	viper.SetDefault("storage.remote.timeout", "10s")
	viper.SetDefault("storage.gcalendar.calendar_id", "primary")
	viper.SetDefault("storage.gcalendar.timezone", "Local")
	viper.SetDefault("storage.gcalendar.event_duration", "30m")

	viper.SetDefault("calendar.week_start", "sunday")
}

// validateStorageConfig checks that the selected backend has what it needs.
func validateStorageConfig(cfg *StorageConfig) error {
	switch cfg.Backend {
	case BackendLocal:
		if cfg.Local.Path == "" {
			return fmt.Errorf("storage.local.path is required for the %s backend", BackendLocal)
		}
	case BackendMemory:
	case BackendRemote:
		if cfg.Remote.BaseURL == "" {
			return fmt.Errorf("storage.remote.base_url is required for the %s backend", BackendRemote)
		}
	case BackendGCalendar:
		if cfg.GCalendar.CredentialsPath == "" {
			return fmt.Errorf("storage.gcalendar.credentials_path is required for the %s backend", BackendGCalendar)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	return nil
}

func parseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid calendar.week_start %q", s)
}
