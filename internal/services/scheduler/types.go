package scheduler

import (
	"time"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/services/report"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	"github.com/KirkDiggler/standupbot/internal/services/summary"
	"github.com/charmbracelet/log"
)

const (
	// DefaultInterval is how often Run evaluates the triggers
	DefaultInterval = time.Minute

	// DefaultPace is the delay between two session starts of a batch
	DefaultPace = time.Second

	// DefaultMaxConcurrent bounds the session starts in flight during a batch
	DefaultMaxConcurrent = 4
)

// Config holds the dependencies of the scheduler
type Config struct {
	Repository standup.Repository
	Sessions   session.Service
	Reports    report.Service
	Summaries  summary.Service
	Publisher  Publisher
	Clock      clock.Clock

	// Logger is optional; defaults to the charmbracelet default logger
	Logger *log.Logger

	// Interval defaults to DefaultInterval
	Interval time.Duration

	// Pace defaults to DefaultPace
	Pace time.Duration

	// MaxConcurrent defaults to DefaultMaxConcurrent
	MaxConcurrent int
}

// TickOutput describes what a tick fired
type TickOutput struct {
	// Fired lists the triggers claimed by this tick
	Fired []models.TriggerKind

	Collection *BatchOutput
	Reminder   *BatchOutput
	Summary    *SummarizeOutput
}

// CollectInput contains parameters for a collection pass
type CollectInput struct {
}

// RemindInput contains parameters for a reminder pass
type RemindInput struct {
}

// BatchOutput counts the outcome of a bulk session start
type BatchOutput struct {
	StandupDate string

	// Started counts sessions that were started or resumed
	Started int

	// Skipped counts participants that responded or unregistered meanwhile
	Skipped int

	// Failed counts participants that could not be reached or stored
	Failed int
}

// Total returns the number of participants the batch attempted
func (o *BatchOutput) Total() int {
	return o.Started + o.Skipped + o.Failed
}

// SummarizeInput contains parameters for generating a digest
type SummarizeInput struct {
	// StandupDate is the date to summarize; empty means the current logical date
	StandupDate string

	// Publish posts the digest through the Publisher
	Publish bool
}

// SummarizeOutput contains the digest
type SummarizeOutput struct {
	StandupDate string
	Text        string

	// Stats are the figures the digest was built from
	Stats *report.StatsOutput

	// Failed is true when generation failed and Text is the fallback message
	Failed bool
}

// Publication is a digest ready for delivery
type Publication struct {
	ChannelID   string
	StandupDate string
	Text        string
}
