package models

// TriggerKind names one of the once-per-day scheduler events
type TriggerKind string

const (
	// TriggerCollection starts sessions for everyone who has not responded
	TriggerCollection TriggerKind = "collection"

	// TriggerReminder re-prompts non-responders halfway through the window
	TriggerReminder TriggerKind = "reminder"

	// TriggerSummary posts the daily digest when the window closes
	TriggerSummary TriggerKind = "summary"
)
