package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage drivers understood by the key-value layer.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Notifier kinds for reminder delivery.
const (
	NotifierLog   = "log"
	NotifierRedis = "redis"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string
	Timezone  string

	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Keys      KeysConfig
	Sections  SectionsConfig
	Timetable TimetableConfig
	Refresh   RefreshConfig
	Reminders RemindersConfig
	Metrics   MetricsConfig
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Driver    string
	FilePath  string
	KeyPrefix string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	DialTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// KeysConfig names the storage keys used by the stores.
type KeysConfig struct {
	Section              string
	Events               string
	IntroIndex           string
	NotificationApproval string
	SlotMode             string
}

// SectionsConfig controls the selected-section store.
type SectionsConfig struct {
	Default string
	Strict  bool
}

// TimetableConfig points at an optional YAML override for the static timetable.
type TimetableConfig struct {
	File string
}

// RefreshConfig governs live lecture status recomputation.
type RefreshConfig struct {
	Interval time.Duration
}

// RemindersConfig governs lecture reminder scheduling and delivery.
type RemindersConfig struct {
	Lead       time.Duration
	Floor      time.Duration
	Notifier   string
	Channel    string
	Workers    int
	Retries    int
	RetryDelay time.Duration
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.Timezone = v.GetString("TIMEZONE")

	cfg.Storage = StorageConfig{
		Driver:    strings.ToLower(v.GetString("STORAGE_DRIVER")),
		FilePath:  v.GetString("STORAGE_FILE_PATH"),
		KeyPrefix: v.GetString("STORAGE_KEY_PREFIX"),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:        v.GetString("REDIS_HOST"),
		Port:        v.GetInt("REDIS_PORT"),
		Password:    v.GetString("REDIS_PASSWORD"),
		DB:          v.GetInt("REDIS_DB"),
		DialTimeout: parseDuration(v.GetString("REDIS_DIAL_TIMEOUT"), 5*time.Second),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Keys = KeysConfig{
		Section:              v.GetString("SECTION_STORAGE_KEY"),
		Events:               v.GetString("EVENTS_STORAGE_KEY"),
		IntroIndex:           v.GetString("INTRO_INDEX_KEY"),
		NotificationApproval: v.GetString("NOTIFICATION_PERMISSION_KEY"),
		SlotMode:             v.GetString("SLOT_MODE_KEY"),
	}

	cfg.Sections = SectionsConfig{
		Default: v.GetString("DEFAULT_SECTION"),
		Strict:  v.GetBool("SECTION_STRICT"),
	}

	cfg.Timetable = TimetableConfig{File: v.GetString("TIMETABLE_FILE")}

	cfg.Refresh = RefreshConfig{
		Interval: parseDuration(v.GetString("REFRESH_INTERVAL"), time.Minute),
	}

	cfg.Reminders = RemindersConfig{
		Lead:       parseDuration(v.GetString("REMINDER_LEAD"), 10*time.Minute),
		Floor:      parseDuration(v.GetString("REMINDER_FLOOR"), 5*time.Second),
		Notifier:   strings.ToLower(v.GetString("REMINDER_NOTIFIER")),
		Channel:    v.GetString("REMINDER_CHANNEL"),
		Workers:    v.GetInt("REMINDER_WORKERS"),
		Retries:    v.GetInt("REMINDER_RETRIES"),
		RetryDelay: parseDuration(v.GetString("REMINDER_RETRY_DELAY"), 2*time.Second),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("TIMEZONE", "Asia/Karachi")

	v.SetDefault("STORAGE_DRIVER", StorageFile)
	v.SetDefault("STORAGE_FILE_PATH", "./data/store.json")
	v.SetDefault("STORAGE_KEY_PREFIX", "786times:")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "timetable")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "5s")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SECTION_STORAGE_KEY", "@selected_section")
	v.SetDefault("EVENTS_STORAGE_KEY", "@semester_events")
	v.SetDefault("INTRO_INDEX_KEY", "@intro_index")
	v.SetDefault("NOTIFICATION_PERMISSION_KEY", "@notification_permission")
	v.SetDefault("SLOT_MODE_KEY", "@slot_mode")

	v.SetDefault("DEFAULT_SECTION", "SP25-BSE-3-B")
	v.SetDefault("SECTION_STRICT", true)
	v.SetDefault("TIMETABLE_FILE", "")

	v.SetDefault("REFRESH_INTERVAL", "60s")

	v.SetDefault("REMINDER_LEAD", "10m")
	v.SetDefault("REMINDER_FLOOR", "5s")
	v.SetDefault("REMINDER_NOTIFIER", NotifierLog)
	v.SetDefault("REMINDER_CHANNEL", "786times:reminders")
	v.SetDefault("REMINDER_WORKERS", 1)
	v.SetDefault("REMINDER_RETRIES", 3)
	v.SetDefault("REMINDER_RETRY_DELAY", "2s")

	v.SetDefault("ENABLE_METRICS", true)
}

// Location resolves the configured timezone, falling back to local time.
func (c *Config) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func isMissingFile(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
