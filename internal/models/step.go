package models

// StandupStep is the ordinal of the outstanding question in a collection session
type StandupStep int

const (
	// StepYesterday asks what was worked on the prior day
	StepYesterday StandupStep = iota

	// StepToday asks what is planned for the current day
	StepToday

	// StepTechnical asks for technical notes
	StepTechnical

	// StepBlockerCategory asks the participant to pick a blocker category
	StepBlockerCategory

	// StepBlockerDetail asks for blocker details; only reachable when a blocker was picked
	StepBlockerDetail

	// StepMood asks for an optional 1-5 confidence/mood score
	StepMood

	// StepComplete means every question has been answered
	StepComplete
)

// QuestionCount is the number of prompts in a full session
const QuestionCount = int(StepComplete)

var stepNames = map[StandupStep]string{
	StepYesterday:       "yesterday",
	StepToday:           "today",
	StepTechnical:       "technical",
	StepBlockerCategory: "blocker_category",
	StepBlockerDetail:   "blocker_detail",
	StepMood:            "mood",
	StepComplete:        "complete",
}

// String returns the step name used in logs
func (s StandupStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether s is a known step
func (s StandupStep) IsValid() bool {
	return s >= StepYesterday && s <= StepComplete
}
