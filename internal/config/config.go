// Package config loads the bot configuration from an optional YAML file, a
// .env file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/window"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// StoreRedis selects the Redis standup store
	StoreRedis = "redis"

	// StoreSQLite selects the SQLite standup store
	StoreSQLite = "sqlite"
)

// ConfigurationError means required configuration is missing or invalid. It is
// fatal at startup.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// Config is the complete bot configuration
type Config struct {
	Discord   DiscordConfig   `yaml:"discord"`
	Store     StoreConfig     `yaml:"store"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Standup   StandupConfig   `yaml:"standup"`
	Log       LogConfig       `yaml:"log"`
}

// DiscordConfig holds the chat platform credentials
type DiscordConfig struct {
	Token         string `yaml:"token"`
	ApplicationID string `yaml:"application_id"`
	GuildID       string `yaml:"guild_id"`
}

// StoreConfig selects and configures the standup store
type StoreConfig struct {
	Driver string       `yaml:"driver"`
	Redis  RedisConfig  `yaml:"redis"`
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SQLiteConfig holds the SQLite database location
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// GeminiConfig configures the summary model. Without an API key the digest is
// rendered without a model.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// SchedulerConfig tunes the scheduler loop
type SchedulerConfig struct {
	Interval      time.Duration `yaml:"interval"`
	Pace          time.Duration `yaml:"pace"`
	MaxConcurrent int           `yaml:"max_concurrent"`
}

// StandupConfig seeds the stored settings until an operator changes them
type StandupConfig struct {
	StartTime        string `yaml:"start_time"`
	EndTime          string `yaml:"end_time"`
	Timezone         string `yaml:"timezone"`
	SummaryChannelID string `yaml:"summary_channel_id"`
	ReminderEnabled  *bool  `yaml:"reminder_enabled"`
}

// LogConfig configures logging
type LogConfig struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

// LoadInput contains the locations to load configuration from
type LoadInput struct {
	// Path is an optional YAML file; empty skips it
	Path string

	// EnvFile is an optional dotenv file; empty means ".env". A missing file is ignored.
	EnvFile string
}

// Default returns the configuration used for anything not set elsewhere
func Default() *Config {
	reminders := true
	return &Config{
		Store: StoreConfig{
			Driver: StoreRedis,
			Redis:  RedisConfig{Addr: "localhost:6379"},
			SQLite: SQLiteConfig{Path: "data/standup.db"},
		},
		Scheduler: SchedulerConfig{
			Interval:      time.Minute,
			Pace:          time.Second,
			MaxConcurrent: 4,
		},
		Standup: StandupConfig{
			StartTime:       models.DefaultStartTime,
			EndTime:         models.DefaultEndTime,
			Timezone:        models.DefaultTimezone,
			ReminderEnabled: &reminders,
		},
	}
}

// Load reads the configuration and validates it
func Load(input *LoadInput) (*Config, error) {
	if input == nil {
		input = &LoadInput{}
	}

	cfg := Default()

	if input.Path != "" {
		data, err := os.ReadFile(input.Path)
		if err != nil {
			return nil, &ConfigurationError{Field: "config file", Reason: err.Error()}
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ConfigurationError{Field: "config file", Reason: err.Error()}
		}
	}

	envFile := input.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, &ConfigurationError{Field: "env file", Reason: err.Error()}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Discord.Token, "DISCORD_TOKEN")
	setString(&c.Discord.ApplicationID, "APPLICATION_ID")
	setString(&c.Discord.GuildID, "GUILD_ID")

	setString(&c.Store.Driver, "STORE_DRIVER")
	setString(&c.Store.Redis.Addr, "REDIS_ADDR")
	setString(&c.Store.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Store.SQLite.Path, "SQLITE_PATH")

	setString(&c.Gemini.APIKey, "GEMINI_API_KEY")
	setString(&c.Gemini.Model, "GEMINI_MODEL")

	setString(&c.Standup.StartTime, "STANDUP_START_TIME")
	setString(&c.Standup.EndTime, "STANDUP_END_TIME")
	setString(&c.Standup.Timezone, "STANDUP_TIMEZONE")
	setString(&c.Standup.SummaryChannelID, "SUMMARY_CHANNEL_ID")

	setString(&c.Log.File, "LOG_FILE")

	if err := setInt(&c.Store.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setInt(&c.Scheduler.MaxConcurrent, "MAX_CONCURRENT_STARTS"); err != nil {
		return err
	}
	if err := setDuration(&c.Scheduler.Interval, "SCHEDULER_INTERVAL"); err != nil {
		return err
	}
	if err := setDuration(&c.Scheduler.Pace, "DELIVERY_PACE"); err != nil {
		return err
	}
	if err := setBool(&c.Log.Debug, "DEBUG"); err != nil {
		return err
	}

	if value, ok := os.LookupEnv("REMINDER_ENABLED"); ok && value != "" {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return &ConfigurationError{Field: "REMINDER_ENABLED", Reason: "must be true or false"}
		}
		c.Standup.ReminderEnabled = &enabled
	}

	return nil
}

// Validate checks that everything required to serve is present
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return &ConfigurationError{Field: "DISCORD_TOKEN", Reason: "is required"}
	}
	if c.Discord.GuildID == "" {
		return &ConfigurationError{Field: "GUILD_ID", Reason: "is required"}
	}

	switch c.Store.Driver {
	case StoreRedis:
		if c.Store.Redis.Addr == "" {
			return &ConfigurationError{Field: "REDIS_ADDR", Reason: "is required for the redis store"}
		}
	case StoreSQLite:
		if c.Store.SQLite.Path == "" {
			return &ConfigurationError{Field: "SQLITE_PATH", Reason: "is required for the sqlite store"}
		}
	default:
		return &ConfigurationError{Field: "STORE_DRIVER", Reason: fmt.Sprintf("unknown driver %q, expected redis or sqlite", c.Store.Driver)}
	}

	if c.Scheduler.Interval <= 0 {
		return &ConfigurationError{Field: "SCHEDULER_INTERVAL", Reason: "must be positive"}
	}
	if c.Scheduler.Interval > time.Minute {
		return &ConfigurationError{Field: "SCHEDULER_INTERVAL", Reason: "must be at most one minute"}
	}
	if c.Scheduler.Pace < 0 {
		return &ConfigurationError{Field: "DELIVERY_PACE", Reason: "cannot be negative"}
	}
	if c.Scheduler.MaxConcurrent < 1 {
		return &ConfigurationError{Field: "MAX_CONCURRENT_STARTS", Reason: "must be at least 1"}
	}

	if _, err := window.FromSettings(c.DefaultSettings()); err != nil {
		return &ConfigurationError{Field: "standup window", Reason: err.Error()}
	}

	return nil
}

// DefaultSettings returns the settings the store is seeded with
func (c *Config) DefaultSettings() *models.Settings {
	settings := models.DefaultSettings()
	settings.StartTime = c.Standup.StartTime
	settings.EndTime = c.Standup.EndTime
	settings.Timezone = c.Standup.Timezone
	settings.SummaryChannelID = c.Standup.SummaryChannelID
	if c.Standup.ReminderEnabled != nil {
		settings.ReminderEnabled = *c.Standup.ReminderEnabled
	}
	return settings
}

func setString(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*target = value
	}
}

func setInt(target *int, key string) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return &ConfigurationError{Field: key, Reason: "must be an integer"}
	}
	*target = parsed
	return nil
}

func setDuration(target *time.Duration, key string) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return &ConfigurationError{Field: key, Reason: "must be a duration such as 30s or 1m"}
	}
	*target = parsed
	return nil
}

func setBool(target *bool, key string) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return &ConfigurationError{Field: key, Reason: "must be true or false"}
	}
	*target = parsed
	return nil
}
