package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/common/logger"
	"github.com/KirkDiggler/standupbot/internal/config"
	"github.com/KirkDiggler/standupbot/internal/handlers/discord"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/services/messaging"
	"github.com/KirkDiggler/standupbot/internal/services/report"
	"github.com/KirkDiggler/standupbot/internal/services/roster"
	"github.com/KirkDiggler/standupbot/internal/services/scheduler"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	"github.com/KirkDiggler/standupbot/internal/services/settings"
	"github.com/KirkDiggler/standupbot/internal/services/summary"
	"github.com/alecthomas/kong"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Optional YAML config file." type:"path"`
	EnvFile string `help:"Dotenv file loaded before the environment." default:".env" name:"env-file"`
	Debug   bool   `help:"Enable debug logging."`
	LogFile string `help:"Also write logs to this rotating file." name:"log-file"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("standupbot"),
		kong.Description("Daily standup collection bot for Discord"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(&config.LoadInput{
		Path:    CLI.Config,
		EnvFile: CLI.EnvFile,
	})
	if err != nil {
		return err
	}

	if CLI.Debug {
		cfg.Log.Debug = true
	}
	if CLI.LogFile != "" {
		cfg.Log.File = CLI.LogFile
	}

	lg, err := logger.New(logger.Config{
		Debug: cfg.Log.Debug,
		File:  cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	repo, closer, err := openStore(cfg, lg)
	if err != nil {
		return err
	}
	defer closer.Close()

	clk := clock.New()

	msgService, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	courier, err := discord.NewCourier(&discord.CourierConfig{
		API:       dg,
		SelfID:    discord.SessionSelfID(dg),
		GuildID:   cfg.Discord.GuildID,
		Messaging: msgService,
		Logger:    lg.WithPrefix("courier"),
	})
	if err != nil {
		return fmt.Errorf("failed to create courier: %w", err)
	}

	sessionService, err := session.NewService(&session.Config{
		Repository: repo,
		Messenger:  courier,
		Clock:      clk,
		Logger:     lg.WithPrefix("session"),
	})
	if err != nil {
		return fmt.Errorf("failed to create session service: %w", err)
	}

	rosterService, err := roster.NewService(&roster.Config{
		Repository: repo,
		Clock:      clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create roster service: %w", err)
	}

	settingsService, err := settings.NewService(&settings.Config{
		Repository: repo,
		Clock:      clk,
		Logger:     lg.WithPrefix("settings"),
	})
	if err != nil {
		return fmt.Errorf("failed to create settings service: %w", err)
	}

	reportService, err := report.NewService(&report.Config{
		Repository: repo,
		Clock:      clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}

	var model summary.Model
	if cfg.Gemini.APIKey != "" {
		gemini, err := summary.NewGemini(ctx, &summary.GeminiConfig{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		model = gemini
	} else {
		lg.Warn("GEMINI_API_KEY not set, summaries will be plain digests")
	}

	summaryService, err := summary.NewService(&summary.Config{
		Model:  model,
		Logger: lg.WithPrefix("summary"),
	})
	if err != nil {
		return fmt.Errorf("failed to create summary service: %w", err)
	}

	schedulerService, err := scheduler.NewService(&scheduler.Config{
		Repository:    repo,
		Sessions:      sessionService,
		Reports:       reportService,
		Summaries:     summaryService,
		Publisher:     courier,
		Clock:         clk,
		Logger:        lg.WithPrefix("scheduler"),
		Interval:      cfg.Scheduler.Interval,
		Pace:          cfg.Scheduler.Pace,
		MaxConcurrent: cfg.Scheduler.MaxConcurrent,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:       dg,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Sessions:      sessionService,
		Roster:        rosterService,
		Settings:      settingsService,
		Reports:       reportService,
		Scheduler:     schedulerService,
		Messaging:     msgService,
		Logger:        lg.WithPrefix("discord"),
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return schedulerService.Run(gctx)
	})

	<-gctx.Done()
	lg.Info("shutting down")

	if err := bot.Stop(); err != nil {
		lg.Error("error stopping bot", "error", err)
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("scheduler stopped: %w", err)
	}

	lg.Info("bot has been shut down")
	return nil
}

// openStore connects the configured standup store
func openStore(cfg *config.Config, lg *log.Logger) (standup.Repository, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.StoreSQLite:
		repo, err := standup.NewSQLite(&standup.SQLiteConfig{
			Path:            cfg.Store.SQLite.Path,
			DefaultSettings: cfg.DefaultSettings(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		lg.Info("using sqlite store", "path", cfg.Store.SQLite.Path)
		return repo, repo, nil
	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		repo, err := standup.NewRedis(&standup.Config{
			RedisClient:     redisClient,
			DefaultSettings: cfg.DefaultSettings(),
		})
		if err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create standup repository: %w", err)
		}
		lg.Info("using redis store", "addr", cfg.Store.Redis.Addr)
		return repo, redisClient, nil
	}
}
