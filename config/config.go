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
	RateLimit  RateLimitConfig

	// Sync specifics
	GoogleCalendar GoogleCalendarConfig
	Vault          VaultConfig
	Sync           SyncConfig
	TaskIndex      TaskIndexConfig
	Timeline       TimelineConfig
	Audit          AuditConfig
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
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath    string
	TokenPath          string
	CalendarID         string
	WorkCalendarID     string
	EnableWorkCalendar bool
	Timezone           string
	RequestsPerSecond  float64
}

// ReadCalendarIDs returns every calendar fetched during a run. Writes only go
// to CalendarID.
func (c GoogleCalendarConfig) ReadCalendarIDs() []string {
	ids := []string{c.CalendarID}
	if c.EnableWorkCalendar && c.WorkCalendarID != "" && c.WorkCalendarID != c.CalendarID {
		ids = append(ids, c.WorkCalendarID)
	}
	return ids
}

type VaultConfig struct {
	Root            string
	DailyNoteFolder string
}

type SyncConfig struct {
	Tag                  string
	DefaultEventDuration int // minutes
	DefaultStartHour     int
	LegacyAutoSync       bool
	AutoInterval         time.Duration // 0 disables periodic sync
	SyncOnChange         bool
}

type TaskIndexConfig struct {
	URL         string
	AccessToken string
}

type TimelineConfig struct {
	CacheTTL  time.Duration
	CacheSize int
}

type AuditConfig struct {
	DBPath string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/plansync/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/plansync/")

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
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.WorkCalendarID = viper.GetString("google_calendar.work_calendar_id")
	cfg.GoogleCalendar.EnableWorkCalendar = viper.GetBool("google_calendar.enable_work_calendar")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	cfg.GoogleCalendar.RequestsPerSecond = viper.GetFloat64("google_calendar.requests_per_second")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Vault
	cfg.Vault.Root = viper.GetString("vault.root")
	cfg.Vault.DailyNoteFolder = viper.GetString("vault.daily_note_folder")

	// Sync behaviour
	cfg.Sync.Tag = viper.GetString("sync.tag")
	cfg.Sync.DefaultEventDuration = viper.GetInt("sync.default_event_duration")
	cfg.Sync.DefaultStartHour = viper.GetInt("sync.default_start_hour")
	cfg.Sync.LegacyAutoSync = viper.GetBool("sync.legacy_auto_sync")
	cfg.Sync.AutoInterval = viper.GetDuration("sync.auto_interval")
	cfg.Sync.SyncOnChange = viper.GetBool("sync.sync_on_change")

	// Optional task index
	cfg.TaskIndex.URL = viper.GetString("task_index.url")
	cfg.TaskIndex.AccessToken = viper.GetString("task_index.access_token")
	if indexToken := viper.GetString("task_index_access_token"); indexToken != "" {
		cfg.TaskIndex.AccessToken = indexToken
	}

	cfg.Timeline.CacheTTL = viper.GetDuration("timeline.cache_ttl")
	cfg.Timeline.CacheSize = viper.GetInt("timeline.cache_size")

	cfg.Audit.DBPath = viper.GetString("audit.db_path")

	if err := validate(cfg); err != nil {
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
	viper.SetDefault("rate_limit.requests_per_min", 30)

	viper.SetDefault("google_calendar.credentials_path", "google-credentials.json")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "UTC")
	viper.SetDefault("google_calendar.requests_per_second", 5)

	viper.SetDefault("vault.root", ".")
	viper.SetDefault("vault.daily_note_folder", "Daily")

	viper.SetDefault("sync.tag", "#gcal")
	viper.SetDefault("sync.default_event_duration", 60)
	viper.SetDefault("sync.default_start_hour", 9)
	viper.SetDefault("sync.legacy_auto_sync", false)
	viper.SetDefault("sync.auto_interval", "5m")
	viper.SetDefault("sync.sync_on_change", false)

	viper.SetDefault("timeline.cache_ttl", "10m")
	viper.SetDefault("timeline.cache_size", 64)

	viper.SetDefault("audit.db_path", "plansync.db")
}

func validate(cfg *Config) error {
	if cfg.GoogleCalendar.CalendarID == "" {
		return fmt.Errorf("google_calendar.calendar_id is required")
	}
	if cfg.Sync.DefaultEventDuration <= 0 {
		return fmt.Errorf("sync.default_event_duration must be positive, got %d", cfg.Sync.DefaultEventDuration)
	}
	if cfg.Sync.DefaultStartHour < 0 || cfg.Sync.DefaultStartHour > 23 {
		return fmt.Errorf("sync.default_start_hour must be between 0 and 23, got %d", cfg.Sync.DefaultStartHour)
	}
	if cfg.Sync.AutoInterval < 0 {
		return fmt.Errorf("sync.auto_interval must not be negative")
	}
	if cfg.Sync.Tag != "" && !strings.HasPrefix(cfg.Sync.Tag, "#") {
		cfg.Sync.Tag = "#" + cfg.Sync.Tag
	}
	if _, err := time.LoadLocation(cfg.GoogleCalendar.Timezone); err != nil {
		return fmt.Errorf("google_calendar.timezone %q: %w", cfg.GoogleCalendar.Timezone, err)
	}
	return nil
}
