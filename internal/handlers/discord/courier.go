package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/standupbot/internal/common/logger"
	"github.com/KirkDiggler/standupbot/internal/services/messaging"
	"github.com/KirkDiggler/standupbot/internal/services/scheduler"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// API is the part of the Discord REST client the courier uses
type API interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	UserChannelPermissions(userID, channelID string, options ...discordgo.RequestOption) (int64, error)
}

// CourierConfig holds the dependencies of the courier
type CourierConfig struct {
	// API is usually the bot's *discordgo.Session
	API API

	// SelfID returns the bot's user ID, used to find a channel it can post in
	SelfID func() string

	// GuildID is the server digests fall back to when no channel is configured
	GuildID string

	Messaging messaging.Service
	Logger    *log.Logger
}

// Courier delivers session prompts by direct message and posts digests to the
// server
type Courier struct {
	api       API
	selfID    func() string
	guildID   string
	messaging messaging.Service
	logger    *log.Logger

	mu       sync.Mutex
	dmByUser map[string]string
}

var (
	_ session.Messenger   = (*Courier)(nil)
	_ scheduler.Publisher = (*Courier)(nil)
)

// NewCourier creates a courier
func NewCourier(cfg *CourierConfig) (*Courier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.API == nil {
		return nil, errors.New("discord API cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	selfID := cfg.SelfID
	if selfID == nil {
		selfID = func() string { return "" }
	}

	return &Courier{
		api:       cfg.API,
		selfID:    selfID,
		guildID:   cfg.GuildID,
		messaging: cfg.Messaging,
		logger:    logger.OrDefault(cfg.Logger),
		dmByUser:  make(map[string]string),
	}, nil
}

// SessionSelfID reads the bot user from a connected session's state
func SessionSelfID(s *discordgo.Session) func() string {
	return func() string {
		if s.State == nil || s.State.User == nil {
			return ""
		}
		return s.State.User.ID
	}
}

// SendPrompt asks the participant the prompt's question by direct message
func (c *Courier) SendPrompt(ctx context.Context, prompt *session.Prompt) error {
	if prompt == nil {
		return errors.New("prompt cannot be nil")
	}

	output, err := c.messaging.GetPromptMessage(ctx, &messaging.GetPromptMessageInput{
		Step:            prompt.Step,
		Answered:        prompt.Answered(),
		Intro:           prompt.Intro,
		Resumed:         prompt.Resumed,
		Reminder:        prompt.Reminder,
		IsLate:          prompt.IsLate,
		BlockerCategory: prompt.BlockerCategory,
	})
	if err != nil {
		return err
	}

	return c.sendDirect(ctx, prompt.ParticipantID, &discordgo.MessageSend{
		Content:    output.Message,
		Components: promptComponents(prompt.Step),
	})
}

// SendCompletion confirms a finalized response by direct message
func (c *Courier) SendCompletion(ctx context.Context, completion *session.Completion) error {
	if completion == nil || completion.Response == nil {
		return errors.New("completion cannot be empty")
	}

	output, err := c.messaging.GetCompletionMessage(ctx, &messaging.GetCompletionMessageInput{
		Response: completion.Response,
	})
	if err != nil {
		return err
	}

	return c.sendDirect(ctx, completion.ParticipantID, &discordgo.MessageSend{
		Content: output.Message,
	})
}

func (c *Courier) sendDirect(ctx context.Context, userID string, message *discordgo.MessageSend) error {
	channelID, err := c.directChannel(ctx, userID)
	if err != nil {
		return err
	}

	_, err = c.api.ChannelMessageSendComplex(channelID, message, discordgo.WithContext(ctx))
	if err != nil {
		// The cached channel may be gone; open a fresh one next time
		c.mu.Lock()
		delete(c.dmByUser, userID)
		c.mu.Unlock()
		return fmt.Errorf("failed to send direct message: %w", err)
	}
	return nil
}

func (c *Courier) directChannel(ctx context.Context, userID string) (string, error) {
	c.mu.Lock()
	channelID, ok := c.dmByUser[userID]
	c.mu.Unlock()
	if ok {
		return channelID, nil
	}

	channel, err := c.api.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to open direct message channel: %w", err)
	}

	c.mu.Lock()
	c.dmByUser[userID] = channel.ID
	c.mu.Unlock()

	return channel.ID, nil
}

// PublishSummary posts a digest to the configured channel, or to the first
// text channel of the server the bot can write to
func (c *Courier) PublishSummary(ctx context.Context, publication *scheduler.Publication) error {
	if publication == nil {
		return errors.New("publication cannot be nil")
	}

	channelID := publication.ChannelID
	if channelID == "" {
		fallback, err := c.fallbackChannel(ctx)
		if err != nil {
			return err
		}
		channelID = fallback
	}

	for _, chunk := range chunkMessage(publication.Text, MaxMessageLength) {
		_, err := c.api.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Content: chunk,
		}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to post summary to %s: %w", channelID, err)
		}
	}

	c.logger.Info("summary published",
		"date", publication.StandupDate,
		"channel", channelID)

	return nil
}

func (c *Courier) fallbackChannel(ctx context.Context) (string, error) {
	if c.guildID == "" {
		return "", errors.New("no summary channel configured")
	}

	channels, err := c.api.GuildChannels(c.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to list channels: %w", err)
	}

	selfID := c.selfID()
	for _, channel := range channels {
		if channel.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		if selfID == "" {
			return channel.ID, nil
		}
		permissions, err := c.api.UserChannelPermissions(selfID, channel.ID, discordgo.WithContext(ctx))
		if err != nil {
			c.logger.Debug("skipping channel", "channel", channel.ID, "error", err)
			continue
		}
		if permissions&discordgo.PermissionSendMessages != 0 {
			return channel.ID, nil
		}
	}

	return "", errors.New("no writable text channel found")
}
