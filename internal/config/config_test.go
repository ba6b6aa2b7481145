package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/stretchr/testify/suite"
)

var envKeys = []string{
	"DISCORD_TOKEN", "APPLICATION_ID", "GUILD_ID",
	"STORE_DRIVER", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "SQLITE_PATH",
	"GEMINI_API_KEY", "GEMINI_MODEL",
	"SCHEDULER_INTERVAL", "DELIVERY_PACE", "MAX_CONCURRENT_STARTS",
	"STANDUP_START_TIME", "STANDUP_END_TIME", "STANDUP_TIMEZONE", "SUMMARY_CHANNEL_ID", "REMINDER_ENABLED",
	"LOG_FILE", "DEBUG",
}

type ConfigTestSuite struct {
	suite.Suite
	dir     string
	envFile string
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range envKeys {
		s.T().Setenv(key, "")
	}
	s.dir = s.T().TempDir()
	s.envFile = filepath.Join(s.dir, "missing.env")
}

func (s *ConfigTestSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestEnvOnly() {
	s.T().Setenv("DISCORD_TOKEN", "token")
	s.T().Setenv("GUILD_ID", "guild")

	cfg, err := Load(&LoadInput{EnvFile: s.envFile})
	s.Require().NoError(err)

	s.Equal("token", cfg.Discord.Token)
	s.Equal("guild", cfg.Discord.GuildID)
	s.Equal(StoreRedis, cfg.Store.Driver)
	s.Equal("localhost:6379", cfg.Store.Redis.Addr)
	s.Equal(time.Minute, cfg.Scheduler.Interval)
	s.Equal(time.Second, cfg.Scheduler.Pace)
	s.Equal(4, cfg.Scheduler.MaxConcurrent)
	s.Equal(models.DefaultSettings(), cfg.DefaultSettings())
}

func (s *ConfigTestSuite) TestMissingToken() {
	s.T().Setenv("GUILD_ID", "guild")

	_, err := Load(&LoadInput{EnvFile: s.envFile})

	var cfgErr *ConfigurationError
	s.Require().True(errors.As(err, &cfgErr))
	s.Equal("DISCORD_TOKEN", cfgErr.Field)
}

func (s *ConfigTestSuite) TestMissingGuild() {
	s.T().Setenv("DISCORD_TOKEN", "token")

	_, err := Load(&LoadInput{EnvFile: s.envFile})

	var cfgErr *ConfigurationError
	s.Require().True(errors.As(err, &cfgErr))
	s.Equal("GUILD_ID", cfgErr.Field)
}

func (s *ConfigTestSuite) TestYAMLFile() {
	path := s.writeFile("standup.yaml", `
discord:
  token: file-token
  guild_id: file-guild
store:
  driver: sqlite
  sqlite:
    path: /tmp/standup.db
scheduler:
  interval: 30s
  pace: 250ms
  max_concurrent: 2
standup:
  start_time: "22:00"
  end_time: "02:00"
  timezone: Asia/Kolkata
  summary_channel_id: chan-1
  reminder_enabled: false
gemini:
  api_key: key
  model: gemini-test
`)

	cfg, err := Load(&LoadInput{Path: path, EnvFile: s.envFile})
	s.Require().NoError(err)

	s.Equal("file-token", cfg.Discord.Token)
	s.Equal(StoreSQLite, cfg.Store.Driver)
	s.Equal("/tmp/standup.db", cfg.Store.SQLite.Path)
	s.Equal(30*time.Second, cfg.Scheduler.Interval)
	s.Equal(250*time.Millisecond, cfg.Scheduler.Pace)
	s.Equal(2, cfg.Scheduler.MaxConcurrent)
	s.Equal("gemini-test", cfg.Gemini.Model)

	settings := cfg.DefaultSettings()
	s.Equal("22:00", settings.StartTime)
	s.Equal("02:00", settings.EndTime)
	s.Equal("Asia/Kolkata", settings.Timezone)
	s.Equal("chan-1", settings.SummaryChannelID)
	s.False(settings.ReminderEnabled)
}

func (s *ConfigTestSuite) TestEnvOverridesFile() {
	path := s.writeFile("standup.yaml", `
discord:
  token: file-token
  guild_id: file-guild
`)
	s.T().Setenv("DISCORD_TOKEN", "env-token")
	s.T().Setenv("REDIS_DB", "3")
	s.T().Setenv("DEBUG", "true")
	s.T().Setenv("REMINDER_ENABLED", "false")

	cfg, err := Load(&LoadInput{Path: path, EnvFile: s.envFile})
	s.Require().NoError(err)

	s.Equal("env-token", cfg.Discord.Token)
	s.Equal("file-guild", cfg.Discord.GuildID)
	s.Equal(3, cfg.Store.Redis.DB)
	s.True(cfg.Log.Debug)
	s.False(cfg.DefaultSettings().ReminderEnabled)
}

func (s *ConfigTestSuite) TestDotEnvFile() {
	envFile := s.writeFile("test.env", "DISCORD_TOKEN=dotenv-token\nGUILD_ID=dotenv-guild\n")
	s.T().Cleanup(func() {
		os.Unsetenv("DISCORD_TOKEN")
		os.Unsetenv("GUILD_ID")
	})
	os.Unsetenv("DISCORD_TOKEN")
	os.Unsetenv("GUILD_ID")

	cfg, err := Load(&LoadInput{EnvFile: envFile})
	s.Require().NoError(err)

	s.Equal("dotenv-token", cfg.Discord.Token)
	s.Equal("dotenv-guild", cfg.Discord.GuildID)
}

func (s *ConfigTestSuite) TestInvalidValues() {
	s.T().Setenv("DISCORD_TOKEN", "token")
	s.T().Setenv("GUILD_ID", "guild")

	testCases := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{name: "unknown driver", key: "STORE_DRIVER", value: "postgres", field: "STORE_DRIVER"},
		{name: "bad redis db", key: "REDIS_DB", value: "zero", field: "REDIS_DB"},
		{name: "bad interval", key: "SCHEDULER_INTERVAL", value: "soon", field: "SCHEDULER_INTERVAL"},
		{name: "interval too long", key: "SCHEDULER_INTERVAL", value: "2m", field: "SCHEDULER_INTERVAL"},
		{name: "no concurrency", key: "MAX_CONCURRENT_STARTS", value: "0", field: "MAX_CONCURRENT_STARTS"},
		{name: "bad start time", key: "STANDUP_START_TIME", value: "25:00", field: "standup window"},
		{name: "empty window", key: "STANDUP_END_TIME", value: "09:00", field: "standup window"},
		{name: "bad timezone", key: "STANDUP_TIMEZONE", value: "Mars/Base", field: "standup window"},
		{name: "bad reminder flag", key: "REMINDER_ENABLED", value: "maybe", field: "REMINDER_ENABLED"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			_, err := Load(&LoadInput{EnvFile: s.envFile})

			var cfgErr *ConfigurationError
			s.Require().True(errors.As(err, &cfgErr), "got %v", err)
			s.Equal(tc.field, cfgErr.Field)
		})
	}
}

func (s *ConfigTestSuite) TestMissingConfigFile() {
	_, err := Load(&LoadInput{Path: filepath.Join(s.dir, "nope.yaml"), EnvFile: s.envFile})

	var cfgErr *ConfigurationError
	s.Require().True(errors.As(err, &cfgErr))
	s.Equal("config file", cfgErr.Field)
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
