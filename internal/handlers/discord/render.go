package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// MaxMessageLength is the longest message content Discord accepts
const MaxMessageLength = 2000

// Component custom IDs
const (
	SelectBlocker  = "standup_blocker"
	ButtonNoUpdate = "standup_no_update"
	ButtonMoodSkip = "standup_mood_skip"

	// ButtonMoodPrefix is followed by the score, e.g. standup_mood_3
	ButtonMoodPrefix = "standup_mood_"
)

var blockerEmoji = map[models.BlockerCategory]string{
	models.BlockerNone:       "✅",
	models.BlockerTechnical:  "🔧",
	models.BlockerProcess:    "📋",
	models.BlockerDependency: "⏳",
	models.BlockerScheduling: "📅",
	models.BlockerOther:      "❓",
}

// promptComponents returns the controls shown under a question
func promptComponents(step models.StandupStep) []discordgo.MessageComponent {
	switch step {
	case models.StepYesterday:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "No update today",
						Style:    discordgo.SecondaryButton,
						CustomID: ButtonNoUpdate,
						Emoji:    &discordgo.ComponentEmoji{Name: "💤"},
					},
				},
			},
		}
	case models.StepBlockerCategory:
		options := make([]discordgo.SelectMenuOption, 0, len(models.BlockerCategories))
		for _, category := range models.BlockerCategories {
			options = append(options, discordgo.SelectMenuOption{
				Label: category.Label(),
				Value: string(category),
				Emoji: &discordgo.ComponentEmoji{Name: blockerEmoji[category]},
			})
		}
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    SelectBlocker,
						Placeholder: "Pick a blocker category",
						Options:     options,
					},
				},
			},
		}
	case models.StepMood:
		buttons := make([]discordgo.MessageComponent, 0, 5)
		for mood := 1; mood <= 5; mood++ {
			buttons = append(buttons, discordgo.Button{
				Label:    strconv.Itoa(mood),
				Style:    discordgo.PrimaryButton,
				CustomID: fmt.Sprintf("%s%d", ButtonMoodPrefix, mood),
				Emoji:    &discordgo.ComponentEmoji{Name: messaging.MoodEmoji(mood)},
			})
		}
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Skip",
						Style:    discordgo.SecondaryButton,
						CustomID: ButtonMoodSkip,
					},
				},
			},
		}
	}
	return nil
}

// parseMoodButton returns the score of a mood button. A nil score is the skip
// button. ok is false for any other custom ID.
func parseMoodButton(customID string) (mood *int, ok bool) {
	if customID == ButtonMoodSkip {
		return nil, true
	}
	if !strings.HasPrefix(customID, ButtonMoodPrefix) {
		return nil, false
	}
	score, err := strconv.Atoi(strings.TrimPrefix(customID, ButtonMoodPrefix))
	if err != nil || score < 1 || score > 5 {
		return nil, false
	}
	return &score, true
}

// chunkMessage splits text into pieces Discord accepts, preferring line breaks
func chunkMessage(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		for len([]rune(line)) > limit {
			flush()
			runes := []rune(line)
			chunks = append(chunks, string(runes[:limit]))
			line = string(runes[limit:])
		}
		if len([]rune(current.String()))+len([]rune(line)) > limit {
			flush()
		}
		current.WriteString(line)
	}
	flush()

	for i, chunk := range chunks {
		chunks[i] = strings.TrimRight(chunk, "\n")
	}
	return chunks
}

// optionMap indexes the options of a subcommand by name
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	result := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, option := range options {
		result[option.Name] = option
	}
	return result
}

// interactionUser returns the invoking user from a guild or direct message interaction
func interactionUser(i *discordgo.InteractionCreate) (id, name string) {
	if i.Member != nil && i.Member.User != nil {
		name = i.Member.User.Username
		if i.Member.User.GlobalName != "" {
			name = i.Member.User.GlobalName
		}
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	}
	if i.User != nil {
		name = i.User.Username
		if i.User.GlobalName != "" {
			name = i.User.GlobalName
		}
		return i.User.ID, name
	}
	return "", ""
}

// renderMissing lists the participants without a response for a date
func renderMissing(date string, participants []*models.Participant) string {
	if len(participants) == 0 {
		return fmt.Sprintf("✅ Everyone has responded for %s.", date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📭 **Missing for %s** (%d)\n", date, len(participants))
	for _, p := range participants {
		fmt.Fprintf(&b, "• %s\n", p.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRoster lists the active participants
func renderRoster(participants []*models.Participant) string {
	if len(participants) == 0 {
		return "📋 No one is registered yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 **Registered participants** (%d)\n", len(participants))
	for _, p := range participants {
		line := "• " + p.Name
		if p.Timezone != "" {
			line += " (" + p.Timezone + ")"
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
