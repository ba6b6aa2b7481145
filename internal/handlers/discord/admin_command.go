package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/standupbot/internal/services/messaging"
	"github.com/KirkDiggler/standupbot/internal/services/report"
	"github.com/KirkDiggler/standupbot/internal/services/roster"
	"github.com/KirkDiggler/standupbot/internal/services/scheduler"
	"github.com/KirkDiggler/standupbot/internal/services/settings"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// AdminCommandConfig holds the services behind /standup-admin
type AdminCommandConfig struct {
	Roster    roster.Service
	Settings  settings.Service
	Reports   report.Service
	Scheduler scheduler.Service
	Messaging messaging.Service
	Logger    *log.Logger
}

// AdminCommand handles the /standup-admin command
type AdminCommand struct {
	BaseCommand
	replier

	roster    roster.Service
	settings  settings.Service
	reports   report.Service
	scheduler scheduler.Service
}

func dateOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "date",
		Description: "Standup date as YYYY-MM-DD (default: today)",
	}
}

// NewAdminCommand creates a new admin command handler
func NewAdminCommand(cfg *AdminCommandConfig) *AdminCommand {
	return &AdminCommand{
		BaseCommand: BaseCommand{
			Name:        "standup-admin",
			Description: "Standup administration",
			Permissions: discordgo.PermissionAdministrator,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "config",
					Description: "View the standup configuration",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "View collection status for a date",
					Options:     []*discordgo.ApplicationCommandOption{dateOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "responses",
					Description: "View standup responses for a date",
					Options:     []*discordgo.ApplicationCommandOption{dateOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "missing",
					Description: "List participants who haven't responded",
					Options:     []*discordgo.ApplicationCommandOption{dateOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roster",
					Description: "List registered participants",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "summary",
					Description: "Generate the summary for a date",
					Options: []*discordgo.ApplicationCommandOption{
						dateOption(),
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "publish",
							Description: "Post it to the summary channel",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "collect",
					Description: "Start collection for everyone who hasn't responded",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remind",
					Description: "Remind everyone who hasn't responded",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-window",
					Description: "Set the collection window",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "start",
							Description: "Start time as HH:MM",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "end",
							Description: "End time as HH:MM",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "timezone",
							Description: "IANA timezone (default: unchanged)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-timezone",
					Description: "Set the standup timezone",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "timezone",
							Description: "IANA timezone, e.g. Europe/Berlin",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-channel",
					Description: "Set the summary channel (omit to clear)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         "channel",
							Description:  "Channel for daily summaries",
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reminders",
					Description: "Turn the mid-window reminder on or off",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "enabled",
							Description: "Send reminders",
							Required:    true,
						},
					},
				},
			},
		},
		replier: replier{
			messaging: cfg.Messaging,
			logger:    cfg.Logger,
		},
		roster:    cfg.Roster,
		settings:  cfg.Settings,
		reports:   cfg.Reports,
		scheduler: cfg.Scheduler,
	}
}

// Handle processes a Discord interaction for the admin command
func (c *AdminCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	options := optionMap(sub.Options)

	date := ""
	if option, ok := options["date"]; ok {
		date = option.StringValue()
	}

	switch sub.Name {
	case "config":
		return c.handleConfig(ctx, s, i)
	case "status":
		return c.handleStatus(ctx, s, i, date)
	case "responses":
		return c.handleResponses(ctx, s, i, date)
	case "missing":
		return c.handleMissing(ctx, s, i, date)
	case "roster":
		return c.handleRoster(ctx, s, i)
	case "summary":
		publish := false
		if option, ok := options["publish"]; ok {
			publish = option.BoolValue()
		}
		return c.handleSummary(ctx, s, i, date, publish)
	case "collect":
		return c.handleBatch(ctx, s, i, false)
	case "remind":
		return c.handleBatch(ctx, s, i, true)
	case "set-window":
		timezone := ""
		if option, ok := options["timezone"]; ok {
			timezone = option.StringValue()
		}
		return c.handleUpdate(ctx, s, i, "set-window", func() error {
			_, err := c.settings.SetWindow(ctx, &settings.SetWindowInput{
				StartTime: options["start"].StringValue(),
				EndTime:   options["end"].StringValue(),
				Timezone:  timezone,
			})
			return err
		})
	case "set-timezone":
		return c.handleUpdate(ctx, s, i, "set-timezone", func() error {
			_, err := c.settings.SetTimezone(ctx, &settings.SetTimezoneInput{
				Timezone: options["timezone"].StringValue(),
			})
			return err
		})
	case "set-channel":
		channelID := ""
		if option, ok := options["channel"]; ok {
			if id, ok := option.Value.(string); ok {
				channelID = id
			}
		}
		return c.handleUpdate(ctx, s, i, "set-channel", func() error {
			_, err := c.settings.SetSummaryChannel(ctx, &settings.SetSummaryChannelInput{ChannelID: channelID})
			return err
		})
	case "reminders":
		return c.handleUpdate(ctx, s, i, "reminders", func() error {
			_, err := c.settings.SetReminderEnabled(ctx, &settings.SetReminderEnabledInput{
				Enabled: options["enabled"].BoolValue(),
			})
			return err
		})
	}

	return errors.New("unknown subcommand")
}

func (c *AdminCommand) handleConfig(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.settings.Get(ctx, &settings.GetInput{})
	if err != nil {
		return c.fail(ctx, s, i, "config", err)
	}

	msg, err := c.messaging.GetSettingsMessage(ctx, &messaging.GetSettingsMessageInput{Settings: output})
	if err != nil {
		return c.fail(ctx, s, i, "config", err)
	}

	return RespondWithEphemeralMessage(s, i, msg.Message)
}

func (c *AdminCommand) handleUpdate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action string, update func() error) error {
	if err := update(); err != nil {
		return c.fail(ctx, s, i, action, err)
	}

	output, err := c.settings.Get(ctx, &settings.GetInput{})
	if err != nil {
		return c.fail(ctx, s, i, action, err)
	}

	msg, err := c.messaging.GetSettingsMessage(ctx, &messaging.GetSettingsMessageInput{Settings: output})
	if err != nil {
		return c.fail(ctx, s, i, action, err)
	}

	return RespondWithEphemeralMessage(s, i, "✅ Settings updated. Changes apply from the next scheduler tick.\n\n"+msg.Message)
}

func (c *AdminCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, date string) error {
	if err := DeferEphemeral(s, i); err != nil {
		return err
	}

	stats, err := c.reports.Stats(ctx, &report.StatsInput{StandupDate: date})
	if err != nil {
		return c.failDeferred(ctx, s, i, "status", err)
	}

	msg, err := c.messaging.GetStatsMessage(ctx, &messaging.GetStatsMessageInput{Stats: stats})
	if err != nil {
		return c.failDeferred(ctx, s, i, "status", err)
	}

	return FollowUpEphemeral(s, i, msg.Message)
}

func (c *AdminCommand) handleResponses(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, date string) error {
	if err := DeferEphemeral(s, i); err != nil {
		return err
	}

	output, err := c.reports.Responses(ctx, &report.ResponsesInput{StandupDate: date})
	if err != nil {
		return c.failDeferred(ctx, s, i, "responses", err)
	}

	msg, err := c.messaging.GetResponsesMessage(ctx, &messaging.GetResponsesMessageInput{
		StandupDate: output.StandupDate,
		Responses:   output.Responses,
	})
	if err != nil {
		return c.failDeferred(ctx, s, i, "responses", err)
	}

	return FollowUpEphemeral(s, i, msg.Message)
}

func (c *AdminCommand) handleMissing(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, date string) error {
	output, err := c.reports.NonResponders(ctx, &report.NonRespondersInput{StandupDate: date})
	if err != nil {
		return c.fail(ctx, s, i, "missing", err)
	}

	return RespondWithEphemeralMessage(s, i, renderMissing(output.StandupDate, output.Participants))
}

func (c *AdminCommand) handleRoster(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.roster.List(ctx, &roster.ListInput{})
	if err != nil {
		return c.fail(ctx, s, i, "roster", err)
	}

	return RespondWithEphemeralMessage(s, i, renderRoster(output.Participants))
}

func (c *AdminCommand) handleSummary(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, date string, publish bool) error {
	if err := DeferEphemeral(s, i); err != nil {
		return err
	}

	output, err := c.scheduler.Summarize(ctx, &scheduler.SummarizeInput{
		StandupDate: date,
		Publish:     publish,
	})
	if err != nil {
		return c.failDeferred(ctx, s, i, "summary", err)
	}

	text := output.Text
	if publish && !output.Failed {
		text = fmt.Sprintf("📤 Summary for %s posted.\n\n%s", output.StandupDate, text)
	}
	return FollowUpEphemeral(s, i, text)
}

func (c *AdminCommand) handleBatch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, reminder bool) error {
	if err := DeferEphemeral(s, i); err != nil {
		return err
	}

	var output *scheduler.BatchOutput
	var err error
	if reminder {
		output, err = c.scheduler.RemindNow(ctx, &scheduler.RemindInput{})
	} else {
		output, err = c.scheduler.CollectNow(ctx, &scheduler.CollectInput{})
	}
	if err != nil {
		return c.failDeferred(ctx, s, i, "batch", err)
	}

	msg, err := c.messaging.GetBatchMessage(ctx, &messaging.GetBatchMessageInput{
		Reminder: reminder,
		Output:   output,
	})
	if err != nil {
		return c.failDeferred(ctx, s, i, "batch", err)
	}

	return FollowUpEphemeral(s, i, msg.Message)
}
