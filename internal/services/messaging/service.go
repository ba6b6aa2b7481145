package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/services/report"
	"github.com/KirkDiggler/standupbot/internal/services/roster"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	"github.com/KirkDiggler/standupbot/internal/services/settings"
)

// maxListed bounds the names and responses listed in operator views
const maxListed = 10

var questions = map[models.StandupStep]string{
	models.StepYesterday:       "📋 **What did you work on yesterday?**\n(Describe completed tasks)",
	models.StepToday:           "🎯 **What are you working on today?**\n(Describe your plans)",
	models.StepTechnical:       "🛠️ **Any technical updates?**\n(Specific architectural or code changes)",
	models.StepBlockerCategory: "🚧 **Select the category of your blocker:**",
	models.StepMood:            "🎭 **How are you feeling today?** (Optional)\n\nRate your confidence/mood (1-5):",
}

var moodEmojis = map[int]string{1: "😟", 2: "😕", 3: "😐", 4: "🙂", 5: "😊"}

// MoodEmoji returns the emoji shown for a mood score
func MoodEmoji(mood int) string {
	if emoji, ok := moodEmojis[mood]; ok {
		return emoji
	}
	return "?"
}

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetPromptMessage returns the text asking a session's outstanding question
func (s *service) GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if !input.Step.IsValid() || input.Step == models.StepComplete {
		return nil, fmt.Errorf("no question for step %s", input.Step)
	}

	var b strings.Builder

	if input.Intro {
		if input.Reminder {
			b.WriteString("⏰ **Reminder:** ")
		}
		if input.Resumed {
			b.WriteString("👋 **Welcome back!** Let's continue your standup.\n\n")
		} else {
			b.WriteString("👋 **Daily Standup Time!**\n\n")
			b.WriteString("Please answer the following questions. You can:\n")
			b.WriteString("• Answer at your own pace (progress is saved)\n")
			b.WriteString("• Use `/standup edit` later to modify answers\n")
			b.WriteString("• Click 'No update today' to skip\n\n")
		}
		if input.IsLate {
			b.WriteString("🕐 The collection window is closed, so this response will be marked late.\n\n")
		}
	}

	fmt.Fprintf(&b, "📊 Progress: %d/%d questions answered\n\n", input.Answered, models.QuestionCount)

	if input.Step == models.StepBlockerDetail {
		fmt.Fprintf(&b, "🚧 **You selected '%s' blocker.**\nPlease type the specific details of your blocker below:", input.BlockerCategory)
	} else {
		b.WriteString(questions[input.Step])
	}

	return &GetPromptMessageOutput{Message: b.String()}, nil
}

// GetCompletionMessage returns the confirmation of a finalized response
func (s *service) GetCompletionMessage(ctx context.Context, input *GetCompletionMessageInput) (*GetCompletionMessageOutput, error) {
	if input == nil || input.Response == nil {
		return nil, errors.New("response cannot be nil")
	}

	r := input.Response
	if r.Yesterday == models.NoUpdateText && r.Today == models.NoUpdateText {
		return &GetCompletionMessageOutput{
			Message: "✅ **Noted!** You've been marked as having no update today.",
		}, nil
	}

	lines := []string{
		"✅ **Standup Complete!** Thank you for your response.\n",
		"📊 **Your Summary:**",
		fmt.Sprintf("**Yesterday:** %s", truncate(r.Yesterday, 100)),
		fmt.Sprintf("**Today:** %s", truncate(r.Today, 100)),
		fmt.Sprintf("**Technical:** %s", truncate(r.Technical, 50)),
		fmt.Sprintf("**Blocker:** [%s] %s", r.BlockerCategory, r.BlockerDetail),
	}
	if r.Mood != nil {
		lines = append(lines, fmt.Sprintf("**Mood:** %s (%d/5)", MoodEmoji(*r.Mood), *r.Mood))
	}
	if r.IsLate {
		lines = append(lines, "🕐 Submitted outside the collection window.")
	}

	signOffs := []string{
		"Have a productive day! 🚀",
		"Go get 'em! 💪",
		"Thanks for keeping the team in the loop! 🙌",
		"Ship it! 📦",
	}
	if r.IsBlocked() {
		signOffs = []string{
			"Your blocker will be in today's summary so someone can help. 🤝",
			"Hang in there, your blocker is on the radar. 📡",
		}
	}
	lines = append(lines, "\n"+s.pick(signOffs))

	return &GetCompletionMessageOutput{Message: strings.Join(lines, "\n")}, nil
}

// GetRegisterMessage returns the reply to a registration
func (s *service) GetRegisterMessage(ctx context.Context, input *GetRegisterMessageInput) (*GetRegisterMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch input.Status {
	case roster.RegisterStatusAlreadyActive:
		messages = []string{
			fmt.Sprintf("ℹ️ %s, you're already registered for daily standups.", input.Name),
			fmt.Sprintf("ℹ️ Already on the roster, %s! Nothing to do.", input.Name),
		}
	case roster.RegisterStatusReactivated:
		messages = []string{
			fmt.Sprintf("✅ Welcome back, %s! You're registered for daily standups again.", input.Name),
			fmt.Sprintf("✅ Good to see you again, %s! Your standups are back on.", input.Name),
		}
	default:
		messages = []string{
			fmt.Sprintf("✅ You're registered for daily standups, %s! I'll DM you when collection starts.", input.Name),
			fmt.Sprintf("✅ Welcome aboard, %s! Watch your DMs when the standup window opens.", input.Name),
		}
	}

	return &GetRegisterMessageOutput{Message: s.pick(messages)}, nil
}

// GetStatusMessage returns a participant's personal status
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil || input.Status == nil {
		return nil, errors.New("status cannot be nil")
	}

	st := input.Status
	if !st.Registered {
		return &GetStatusMessageOutput{
			Message: "❌ You're not registered. Use `/standup register` to join daily standups.",
		}, nil
	}

	lines := []string{fmt.Sprintf("📊 **Your standup status for %s**", st.StandupDate)}
	if st.Response != nil {
		submitted := "✅ Submitted"
		if st.Response.IsLate {
			submitted += " (late)"
		}
		if st.Response.EditedAt != nil {
			submitted += ", edited"
		}
		lines = append(lines, submitted)
	} else {
		lines = append(lines, "⏳ Not submitted yet")
	}

	if st.Settings != nil {
		window := "closed"
		if st.InWindow {
			window = "open"
		}
		lines = append(lines, fmt.Sprintf("🕘 Window: %s-%s %s (%s)", st.Settings.StartTime, st.Settings.EndTime, st.Settings.Timezone, window))
	}

	if st.Participant != nil && st.Participant.Timezone != "" {
		lines = append(lines, fmt.Sprintf("🌍 Your time: %s (%s)", st.LocalTime.Format("15:04 Mon"), st.Participant.Timezone))
	}

	return &GetStatusMessageOutput{Message: strings.Join(lines, "\n")}, nil
}

// GetStatsMessage returns the operator view of a date's figures
func (s *service) GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error) {
	if input == nil || input.Stats == nil {
		return nil, errors.New("stats cannot be nil")
	}

	st := input.Stats
	lines := []string{
		fmt.Sprintf("📊 **Standup Status - %s**", st.StandupDate),
		fmt.Sprintf("👥 Registered: %d", st.RegisteredCount),
		fmt.Sprintf("✅ Responded: %d (%d%%)", st.RespondedCount, st.ResponseRate()),
		fmt.Sprintf("⏳ Missing: %d", st.MissingCount),
		fmt.Sprintf("🚧 Blocked: %d", st.BlockedCount),
		fmt.Sprintf("🕐 Late: %d", st.LateCount),
	}

	if len(st.NonResponders) > 0 {
		names := make([]string, 0, len(st.NonResponders))
		for _, p := range st.NonResponders {
			names = append(names, p.Name)
		}
		lines = append(lines, "\n**Missing:** "+listNames(names))
	}

	if len(st.Blocked) > 0 {
		lines = append(lines, "\n**Blockers:**")
		for i, r := range st.Blocked {
			if i == maxListed {
				lines = append(lines, fmt.Sprintf("…and %d more", len(st.Blocked)-maxListed))
				break
			}
			lines = append(lines, fmt.Sprintf("- **%s** [%s]: %s", r.ParticipantName, r.BlockerCategory, truncate(r.BlockerDetail, 100)))
		}
	}

	return &GetStatsMessageOutput{Message: strings.Join(lines, "\n")}, nil
}

// GetResponsesMessage returns the responses of a date
func (s *service) GetResponsesMessage(ctx context.Context, input *GetResponsesMessageInput) (*GetResponsesMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Responses) == 0 {
		return &GetResponsesMessageOutput{
			Message: fmt.Sprintf("📋 No responses for %s yet.", input.StandupDate),
		}, nil
	}

	lines := []string{fmt.Sprintf("📋 **Responses - %s** (%d)", input.StandupDate, len(input.Responses))}
	for _, r := range input.Responses {
		header := fmt.Sprintf("\n**%s** (%s)", r.ParticipantName, r.SubmittedAt.UTC().Format("15:04"))
		if r.IsLate {
			header += " (LATE)"
		}
		if r.Mood != nil {
			header += fmt.Sprintf(" %s", MoodEmoji(*r.Mood))
		}
		lines = append(lines,
			header,
			fmt.Sprintf("- Yesterday: %s", truncate(r.Yesterday, 200)),
			fmt.Sprintf("- Today: %s", truncate(r.Today, 200)),
			fmt.Sprintf("- Technical: %s", truncate(r.Technical, 200)),
			fmt.Sprintf("- Blocker [%s]: %s", r.BlockerCategory, truncate(r.BlockerDetail, 200)),
		)
	}

	return &GetResponsesMessageOutput{Message: strings.Join(lines, "\n")}, nil
}

// GetSettingsMessage returns the current configuration
func (s *service) GetSettingsMessage(ctx context.Context, input *GetSettingsMessageInput) (*GetSettingsMessageOutput, error) {
	if input == nil || input.Settings == nil || input.Settings.Settings == nil {
		return nil, errors.New("settings cannot be nil")
	}

	out := input.Settings
	cfg := out.Settings

	channel := "not set (first writable channel)"
	if cfg.SummaryChannelID != "" {
		channel = fmt.Sprintf("<#%s>", cfg.SummaryChannelID)
	}
	reminder := "off"
	if cfg.ReminderEnabled {
		reminder = "on at " + out.ReminderTime
	}
	window := "closed"
	if out.InWindow {
		window = "open"
	}

	lines := []string{
		"⚙️ **Standup Configuration**",
		fmt.Sprintf("🕘 Collection: %s-%s", cfg.StartTime, cfg.EndTime),
		fmt.Sprintf("🌍 Timezone: %s (now %s)", cfg.Timezone, out.LocalTime.Format("15:04")),
		fmt.Sprintf("📅 Standup date: %s (window %s)", out.StandupDate, window),
		fmt.Sprintf("⏰ Reminder: %s", reminder),
		fmt.Sprintf("📢 Summary channel: %s", channel),
	}

	return &GetSettingsMessageOutput{Message: strings.Join(lines, "\n")}, nil
}

// GetBatchMessage returns the outcome of a forced collection or reminder pass
func (s *service) GetBatchMessage(ctx context.Context, input *GetBatchMessageInput) (*GetBatchMessageOutput, error) {
	if input == nil || input.Output == nil {
		return nil, errors.New("batch output cannot be nil")
	}

	o := input.Output
	verb := "📤 Collection sent"
	if input.Reminder {
		verb = "⏰ Reminders sent"
	}

	message := fmt.Sprintf("%s for %s: %d started, %d skipped, %d failed.", verb, o.StandupDate, o.Started, o.Skipped, o.Failed)
	if o.Total() == 0 {
		message = fmt.Sprintf("✅ Everyone has already responded for %s.", o.StandupDate)
	}

	return &GetBatchMessageOutput{Message: message}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error cannot be nil")
	}

	err := input.Err
	var deliveryErr *session.DeliveryError

	var message string
	switch {
	case errors.Is(err, session.ErrNotRegistered), errors.Is(err, roster.ErrNotRegistered):
		message = "❌ You're not registered. Use `/standup register` first."
	case errors.Is(err, session.ErrAlreadyResponded):
		message = "✅ You've already submitted today's standup. Use `/standup edit` to change it."
	case errors.Is(err, session.ErrNoResponse):
		message = "❌ You don't have a response for today yet."
	case errors.Is(err, session.ErrWindowClosed):
		message = "🔒 The collection window is closed; responses can only be edited while it is open."
	case errors.Is(err, session.ErrInvalidMood):
		message = "❌ Mood must be a number from 1 to 5."
	case errors.Is(err, session.ErrInvalidBlocker):
		message = "❌ Unknown blocker category. Use one of: " + blockerList() + "."
	case errors.Is(err, session.ErrInvalidField):
		message = "❌ Unknown field. Use one of: yesterday, today, technical, blocker_category, blocker_detail, mood."
	case errors.Is(err, session.ErrEmptyAnswer):
		message = "❌ The new value cannot be empty."
	case errors.Is(err, settings.ErrInvalidTime):
		message = "❌ Invalid time. Use HH:MM in 24-hour format, e.g. 09:30."
	case errors.Is(err, settings.ErrInvalidTimezone), errors.Is(err, roster.ErrInvalidTimezone):
		message = "❌ Unknown timezone. Use an IANA name such as `America/New_York` or `Asia/Kolkata`."
	case errors.Is(err, settings.ErrEmptyWindow):
		message = "❌ Start and end time must be different."
	case errors.Is(err, report.ErrInvalidDate):
		message = "❌ Invalid date. Use YYYY-MM-DD."
	case errors.As(err, &deliveryErr):
		message = "📭 I couldn't DM you. Please allow direct messages from server members."
	case standup.IsStorageError(err):
		message = "⚠️ Storage is unavailable right now. Please try again in a minute."
	default:
		message = s.pick([]string{
			"❌ Something went wrong. Please try again.",
			"❌ That didn't work. Please try again in a moment.",
		})
	}

	return &GetErrorMessageOutput{Message: message}, nil
}

func blockerList() string {
	names := make([]string, 0, len(models.BlockerCategories))
	for _, c := range models.BlockerCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func listNames(names []string) string {
	if len(names) <= maxListed {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s …and %d more", strings.Join(names[:maxListed], ", "), len(names)-maxListed)
}

// truncate shortens text to limit runes, marking the cut with an ellipsis
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
