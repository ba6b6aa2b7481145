package models

import "strings"

// BlockerCategory classifies what is blocking a participant
type BlockerCategory string

const (
	BlockerNone       BlockerCategory = "None"
	BlockerTechnical  BlockerCategory = "Technical"
	BlockerProcess    BlockerCategory = "Process"
	BlockerDependency BlockerCategory = "Dependency"
	BlockerScheduling BlockerCategory = "Scheduling"
	BlockerOther      BlockerCategory = "Other"
)

// BlockerCategories lists the selectable categories in display order
var BlockerCategories = []BlockerCategory{
	BlockerNone,
	BlockerTechnical,
	BlockerProcess,
	BlockerDependency,
	BlockerScheduling,
	BlockerOther,
}

var blockerLabels = map[BlockerCategory]string{
	BlockerNone:       "No blockers",
	BlockerTechnical:  "Technical issue",
	BlockerProcess:    "Process/Workstream",
	BlockerDependency: "Waiting on someone",
	BlockerScheduling: "Scheduling/Time",
	BlockerOther:      "Other",
}

// Label returns the human readable label shown in the picker
func (c BlockerCategory) Label() string {
	if label, ok := blockerLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsValid reports whether c is one of the known categories
func (c BlockerCategory) IsValid() bool {
	_, ok := blockerLabels[c]
	return ok
}

// IsNone reports whether the participant has no blocker
func (c BlockerCategory) IsNone() bool {
	return c == BlockerNone
}

// ParseBlockerCategory matches a category value case-insensitively
func ParseBlockerCategory(value string) (BlockerCategory, bool) {
	for _, c := range BlockerCategories {
		if strings.EqualFold(string(c), value) {
			return c, true
		}
	}
	return "", false
}
