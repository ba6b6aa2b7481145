package models

import (
	"strings"
	"time"
)

const (
	// NoUpdateText fills the free-text answers of a "no update today" response
	NoUpdateText = "No update"

	// NoneText marks an answer that was intentionally left empty
	NoneText = "None"
)

// StandupAnswers holds the answers of one standup. Nil fields have not been answered.
type StandupAnswers struct {
	// Yesterday is the prior-day work
	Yesterday *string

	// Today is the current-day plan
	Today *string

	// Technical holds technical notes
	Technical *string

	// BlockerCategory is the selected blocker category
	BlockerCategory *BlockerCategory

	// BlockerDetail describes the blocker, NoneText when there is none
	BlockerDetail *string

	// Mood is the optional 1-5 confidence score
	Mood *int
}

// Merge copies every answered field of other into a, leaving fields that other
// has not answered untouched
func (a *StandupAnswers) Merge(other StandupAnswers) {
	if other.Yesterday != nil {
		a.Yesterday = other.Yesterday
	}
	if other.Today != nil {
		a.Today = other.Today
	}
	if other.Technical != nil {
		a.Technical = other.Technical
	}
	if other.BlockerCategory != nil {
		a.BlockerCategory = other.BlockerCategory
	}
	if other.BlockerDetail != nil {
		a.BlockerDetail = other.BlockerDetail
	}
	if other.Mood != nil {
		a.Mood = other.Mood
	}
}

// StandupResponse is the finalized standup of one participant for one logical date
type StandupResponse struct {
	// ID identifies the response; it survives edits and re-submissions
	ID string

	// ParticipantID is the participant who answered
	ParticipantID string

	// ParticipantName is the display name at submission time
	ParticipantName string

	// StandupDate is the logical standup date (YYYY-MM-DD)
	StandupDate string

	// Yesterday is the prior-day work
	Yesterday string

	// Today is the current-day plan
	Today string

	// Technical holds technical notes
	Technical string

	// BlockerCategory is the selected blocker category
	BlockerCategory BlockerCategory

	// BlockerDetail describes the blocker, NoneText when there is none
	BlockerDetail string

	// Mood is the optional 1-5 confidence score
	Mood *int

	// SubmittedAt is when the response was first finalized
	SubmittedAt time.Time

	// EditedAt is set whenever an existing response is updated
	EditedAt *time.Time

	// IsLate is true when the session started outside the collection window
	IsLate bool
}

// IsBlocked reports whether the response carries a real blocker
func (r *StandupResponse) IsBlocked() bool {
	detail := strings.TrimSpace(r.BlockerDetail)
	return detail != "" && !strings.EqualFold(detail, NoneText)
}

// ResponseField names an editable field of a finalized response
type ResponseField string

const (
	FieldYesterday       ResponseField = "yesterday"
	FieldToday           ResponseField = "today"
	FieldTechnical       ResponseField = "technical"
	FieldBlockerCategory ResponseField = "blocker_category"
	FieldBlockerDetail   ResponseField = "blocker_detail"
	FieldMood            ResponseField = "mood"
)

// ResponseFields lists the editable fields in display order
var ResponseFields = []ResponseField{
	FieldYesterday,
	FieldToday,
	FieldTechnical,
	FieldBlockerCategory,
	FieldBlockerDetail,
	FieldMood,
}

// IsValid reports whether f can be edited
func (f ResponseField) IsValid() bool {
	for _, field := range ResponseFields {
		if f == field {
			return true
		}
	}
	return false
}
