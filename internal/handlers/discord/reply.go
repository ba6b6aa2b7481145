package discord

import (
	"context"

	"github.com/KirkDiggler/standupbot/internal/services/messaging"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// replier turns service errors into friendly interaction replies
type replier struct {
	messaging messaging.Service
	logger    *log.Logger
}

func (r *replier) errorText(ctx context.Context, err error) string {
	output, msgErr := r.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return "❌ Something went wrong. Please try again."
	}
	return output.Message
}

// answerText is the DM reply to a free-text answer. Anyone can DM the bot, so
// a message from someone with no session in progress gets no reply.
func (r *replier) answerText(ctx context.Context, participantID string, output *session.AnswerOutput, err error) string {
	switch {
	case err != nil:
		return r.errorText(ctx, err)
	case !output.Handled:
		r.logger.Debug("ignoring message outside a session", "participant", participantID)
	}
	return ""
}

// fail answers an interaction with the friendly form of err
func (r *replier) fail(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) error {
	r.logger.Warn("interaction failed", "action", action, "error", err)
	return RespondWithEphemeralMessage(s, i, r.errorText(ctx, err))
}

// failDeferred answers a deferred interaction with the friendly form of err
func (r *replier) failDeferred(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) error {
	r.logger.Warn("interaction failed", "action", action, "error", err)
	return FollowUpEphemeral(s, i, r.errorText(ctx, err))
}
