package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/standupbot/internal/common/logger"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/services/messaging"
	"github.com/KirkDiggler/standupbot/internal/services/report"
	"github.com/KirkDiggler/standupbot/internal/services/roster"
	"github.com/KirkDiggler/standupbot/internal/services/scheduler"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	"github.com/KirkDiggler/standupbot/internal/services/settings"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	replier

	sessions session.Service

	// ctx is cancelled by Stop; handlers derive their contexts from it
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord connection, shared with the courier
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// GuildID is the server the commands are registered in
	GuildID string

	Sessions  session.Service
	Roster    roster.Service
	Settings  settings.Service
	Reports   report.Service
	Scheduler scheduler.Service
	Messaging messaging.Service

	Logger *log.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	if cfg.Sessions == nil || cfg.Roster == nil || cfg.Settings == nil ||
		cfg.Reports == nil || cfg.Scheduler == nil || cfg.Messaging == nil {
		return nil, errors.New("all services are required")
	}

	ctx, cancel := context.WithCancel(context.Background())

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		replier: replier{
			messaging: cfg.Messaging,
			logger:    logger.OrDefault(cfg.Logger),
		},
		sessions: cfg.Sessions,
		ctx:      ctx,
		cancel:   cancel,
	}

	cfg.Session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	cfg.Session.AddHandler(bot.handleReady)
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessage)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	commands := []CommandHandler{
		NewStandupCommand(b.config.Roster, b.config.Sessions, b.messaging, b.logger),
		NewAdminCommand(&AdminCommandConfig{
			Roster:    b.config.Roster,
			Settings:  b.config.Settings,
			Reports:   b.config.Reports,
			Scheduler: b.config.Scheduler,
			Messaging: b.messaging,
			Logger:    b.logger,
		}),
	}

	for _, cmd := range commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	b.cancel()

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		} else {
			b.logger.Debug("deleted command", "command", cmdName, "id", cmdID)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "id", createdCmd.ID, "guild", b.config.GuildID)

	return nil
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("connected to Discord", "user", r.User.Username, "guilds", len(r.Guilds))
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(b.ctx, s, i); err != nil {
				b.logger.Error("error handling command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(b.ctx, s, i); err != nil {
			b.logger.Error("error handling component interaction", "error", err)
		}
	}
}

// handleComponentInteraction handles the answer controls sent with prompts
func (b *Bot) handleComponentInteraction(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	userID, _ := interactionUser(i)
	if userID == "" {
		return errors.New("interaction has no user")
	}

	switch data.CustomID {
	case SelectBlocker:
		return b.handleBlockerSelect(ctx, s, i, userID, data.Values)
	case ButtonNoUpdate:
		return b.handleNoUpdateButton(ctx, s, i, userID)
	}

	if mood, ok := parseMoodButton(data.CustomID); ok {
		return b.handleMoodButton(ctx, s, i, userID, mood)
	}

	return fmt.Errorf("unknown component %q", data.CustomID)
}

func (b *Bot) handleBlockerSelect(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, values []string) error {
	if len(values) == 0 {
		return b.fail(ctx, s, i, "blocker", session.ErrInvalidBlocker)
	}

	category, ok := models.ParseBlockerCategory(values[0])
	if !ok {
		return b.fail(ctx, s, i, "blocker", session.ErrInvalidBlocker)
	}

	output, err := b.sessions.SelectBlocker(ctx, &session.SelectBlockerInput{
		ParticipantID: userID,
		Category:      category,
	})
	if err != nil {
		return b.fail(ctx, s, i, "blocker", err)
	}
	if !output.Handled {
		return UpdateComponentMessage(s, i, noSessionText)
	}

	return UpdateComponentMessage(s, i, fmt.Sprintf("🚧 Blocker: **%s**", category.Label()))
}

func (b *Bot) handleMoodButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, mood *int) error {
	output, err := b.sessions.SubmitMood(ctx, &session.SubmitMoodInput{
		ParticipantID: userID,
		Mood:          mood,
	})
	if err != nil {
		return b.fail(ctx, s, i, "mood", err)
	}
	if !output.Handled {
		return UpdateComponentMessage(s, i, noSessionText)
	}

	if mood == nil {
		return UpdateComponentMessage(s, i, "😶 Mood skipped")
	}
	return UpdateComponentMessage(s, i, fmt.Sprintf("%s Mood: **%d/5**", messaging.MoodEmoji(*mood), *mood))
}

func (b *Bot) handleNoUpdateButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := b.sessions.SubmitNoUpdate(ctx, &session.SubmitNoUpdateInput{ParticipantID: userID})
	if err != nil {
		return b.fail(ctx, s, i, "no-update", err)
	}

	msg, err := b.messaging.GetCompletionMessage(ctx, &messaging.GetCompletionMessageInput{Response: output.Response})
	if err != nil {
		return b.fail(ctx, s, i, "no-update", err)
	}

	return UpdateComponentMessage(s, i, msg.Message)
}

const noSessionText = "ℹ️ There's no standup in progress. Use `/standup start` to begin one."

// handleMessage feeds direct messages into the participant's session
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID != "" {
		return
	}

	output, err := b.sessions.HandleText(b.ctx, &session.HandleTextInput{
		ParticipantID: m.Author.ID,
		Text:          m.Content,
	})

	if err != nil {
		b.logger.Warn("failed to handle answer", "participant", m.Author.ID, "error", err)
	}

	reply := b.answerText(b.ctx, m.Author.ID, output, err)
	if reply == "" {
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		b.logger.Warn("failed to reply", "participant", m.Author.ID, "error", err)
	}
}
