package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/services/messaging"
	"github.com/KirkDiggler/standupbot/internal/services/roster"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

const helpText = "📋 **Standup Bot**\n" +
	"`/standup register` - join the daily standup\n" +
	"`/standup unregister` - leave the daily standup\n" +
	"`/standup start` - answer today's questions now\n" +
	"`/standup status` - your registration and today's response\n" +
	"`/standup no-update` - mark that you have nothing to report today\n" +
	"`/standup edit` - change one answer while the window is open\n" +
	"`/standup timezone` - set your local timezone\n\n" +
	"Admins: `/standup-admin config|status|responses|missing|roster|summary|collect|remind|set-window|set-timezone|set-channel|reminders`"

// StandupCommand handles the /standup command
type StandupCommand struct {
	BaseCommand
	replier

	roster   roster.Service
	sessions session.Service
}

// NewStandupCommand creates a new standup command handler
func NewStandupCommand(rosterService roster.Service, sessionService session.Service, messagingService messaging.Service, logger *log.Logger) *StandupCommand {
	fieldChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.ResponseFields))
	for _, field := range models.ResponseFields {
		fieldChoices = append(fieldChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(field),
			Value: string(field),
		})
	}

	return &StandupCommand{
		BaseCommand: BaseCommand{
			Name:        "standup",
			Description: "Daily standup commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Register for daily standups",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unregister",
					Description: "Opt out of daily standups",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Answer today's standup questions now",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Check your registration and response status",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "no-update",
					Description: "Mark that you have no update today",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Edit one answer of today's response",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "field",
							Description: "The answer to change",
							Required:    true,
							Choices:     fieldChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "value",
							Description: "The new answer",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "timezone",
					Description: "Set your local timezone",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "timezone",
							Description: "IANA timezone, e.g. America/New_York",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "help",
					Description: "Show available standup commands",
				},
			},
		},
		replier: replier{
			messaging: messagingService,
			logger:    logger,
		},
		roster:   rosterService,
		sessions: sessionService,
	}
}

// Handle processes a Discord interaction for the standup command
func (c *StandupCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)
	if userID == "" {
		return errors.New("interaction has no user")
	}

	sub := data.Options[0]
	options := optionMap(sub.Options)

	switch sub.Name {
	case "register":
		return c.handleRegister(ctx, s, i, userID, username)
	case "unregister":
		return c.handleUnregister(ctx, s, i, userID)
	case "start":
		return c.handleStart(ctx, s, i, userID)
	case "status":
		return c.handleStatus(ctx, s, i, userID)
	case "no-update":
		return c.handleNoUpdate(ctx, s, i, userID)
	case "edit":
		return c.handleEdit(ctx, s, i, userID, options["field"].StringValue(), options["value"].StringValue())
	case "timezone":
		return c.handleTimezone(ctx, s, i, userID, options["timezone"].StringValue())
	case "help":
		return RespondWithEphemeralMessage(s, i, helpText)
	}

	return fmt.Errorf("unknown subcommand %q", sub.Name)
}

func (c *StandupCommand) handleRegister(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	output, err := c.roster.Register(ctx, &roster.RegisterInput{
		ParticipantID: userID,
		Name:          username,
	})
	if err != nil {
		return c.fail(ctx, s, i, "register", err)
	}

	msg, err := c.messaging.GetRegisterMessage(ctx, &messaging.GetRegisterMessageInput{
		Name:   username,
		Status: output.Status,
	})
	if err != nil {
		return c.fail(ctx, s, i, "register", err)
	}

	return RespondWithEphemeralMessage(s, i, msg.Message)
}

func (c *StandupCommand) handleUnregister(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.roster.Unregister(ctx, &roster.UnregisterInput{ParticipantID: userID})
	if err != nil {
		return c.fail(ctx, s, i, "unregister", err)
	}

	if !output.Unregistered {
		return RespondWithEphemeralMessage(s, i, "ℹ️ You weren't registered for standups.")
	}
	return RespondWithEphemeralMessage(s, i, "👋 You've been removed from daily standups. Use `/standup register` to rejoin.")
}

func (c *StandupCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.sessions.StartSession(ctx, &session.StartSessionInput{ParticipantID: userID})
	if err != nil {
		return c.fail(ctx, s, i, "start", err)
	}

	switch output.Status {
	case session.StartStatusNotRegistered:
		return c.fail(ctx, s, i, "start", session.ErrNotRegistered)
	case session.StartStatusAlreadyResponded:
		return c.fail(ctx, s, i, "start", session.ErrAlreadyResponded)
	}

	return RespondWithEphemeralMessage(s, i, "📬 Check your DMs for today's standup questions.")
}

func (c *StandupCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.roster.Status(ctx, &roster.StatusInput{ParticipantID: userID})
	if err != nil {
		return c.fail(ctx, s, i, "status", err)
	}

	msg, err := c.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{Status: output})
	if err != nil {
		return c.fail(ctx, s, i, "status", err)
	}

	return RespondWithEphemeralMessage(s, i, msg.Message)
}

func (c *StandupCommand) handleNoUpdate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.sessions.SubmitNoUpdate(ctx, &session.SubmitNoUpdateInput{ParticipantID: userID})
	if err != nil {
		return c.fail(ctx, s, i, "no-update", err)
	}

	msg, err := c.messaging.GetCompletionMessage(ctx, &messaging.GetCompletionMessageInput{Response: output.Response})
	if err != nil {
		return c.fail(ctx, s, i, "no-update", err)
	}

	return RespondWithEphemeralMessage(s, i, msg.Message)
}

func (c *StandupCommand) handleEdit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, field, value string) error {
	output, err := c.sessions.EditResponse(ctx, &session.EditResponseInput{
		ParticipantID: userID,
		Field:         models.ResponseField(field),
		Value:         value,
	})
	if err != nil {
		return c.fail(ctx, s, i, "edit", err)
	}

	msg, err := c.messaging.GetResponsesMessage(ctx, &messaging.GetResponsesMessageInput{
		StandupDate: output.Response.StandupDate,
		Responses:   []*models.StandupResponse{output.Response},
	})
	if err != nil {
		return c.fail(ctx, s, i, "edit", err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("✏️ Updated **%s**.\n\n%s", field, msg.Message))
}

func (c *StandupCommand) handleTimezone(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, timezone string) error {
	output, err := c.roster.SetTimezone(ctx, &roster.SetTimezoneInput{
		ParticipantID: userID,
		Timezone:      timezone,
	})
	if err != nil {
		return c.fail(ctx, s, i, "timezone", err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("🌍 Your timezone is now **%s**.", output.Participant.Timezone))
}
