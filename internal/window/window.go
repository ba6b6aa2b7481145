// Package window derives logical standup dates and collection window membership
// from the configured start/end times and timezone.
package window

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/KirkDiggler/standupbot/internal/models"
)

// DateLayout is the format of logical standup dates
const DateLayout = "2006-01-02"

var (
	// ErrInvalidTime is returned for a time of day that is not HH:MM
	ErrInvalidTime = errors.New("time must be HH:MM in 24-hour format")

	// ErrInvalidTimezone is returned for an unknown IANA timezone
	ErrInvalidTimezone = errors.New("unknown timezone")

	// ErrEmptyWindow is returned when start and end are the same time of day
	ErrEmptyWindow = errors.New("collection start and end must differ")
)

// TimeOfDay is a wall-clock time without a date
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an HH:MM string. Single-digit hours are accepted and
// normalized by String.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String formats the time as zero-padded HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns minutes since midnight
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Of returns the wall-clock time of the given instant
func Of(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// Window is a validated collection window
type Window struct {
	start TimeOfDay
	end   TimeOfDay
	loc   *time.Location
}

// New validates and builds a window
func New(start, end, timezone string) (*Window, error) {
	startTime, err := ParseTimeOfDay(start)
	if err != nil {
		return nil, err
	}

	endTime, err := ParseTimeOfDay(end)
	if err != nil {
		return nil, err
	}

	if startTime == endTime {
		return nil, ErrEmptyWindow
	}

	loc, err := LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	return &Window{
		start: startTime,
		end:   endTime,
		loc:   loc,
	}, nil
}

// FromSettings builds the window described by the stored settings
func FromSettings(settings *models.Settings) (*Window, error) {
	if settings == nil {
		return nil, errors.New("settings cannot be nil")
	}
	return New(settings.StartTime, settings.EndTime, settings.Timezone)
}

// LoadLocation resolves an IANA timezone name. An empty name means UTC.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	return loc, nil
}

// Start returns the local start time
func (w *Window) Start() TimeOfDay {
	return w.start
}

// End returns the local end time
func (w *Window) End() TimeOfDay {
	return w.end
}

// Location returns the window's timezone
func (w *Window) Location() *time.Location {
	return w.loc
}

// Local converts an instant to the window's timezone
func (w *Window) Local(now time.Time) time.Time {
	return now.In(w.loc)
}

// Wraps reports whether the window spans midnight
func (w *Window) Wraps() bool {
	return w.end.Minutes() < w.start.Minutes()
}

// LogicalDate returns the standup date an instant belongs to. When the window
// spans midnight (compared on hours) an instant before the end hour belongs to
// the session opened the previous evening.
func (w *Window) LogicalDate(now time.Time) string {
	local := w.Local(now)
	if w.end.Hour < w.start.Hour && local.Hour() < w.end.Hour {
		return previousDay(local)
	}
	return local.Format(DateLayout)
}

// ClosingDate returns the logical date of the window that closes at the end-time
// tick containing now. For a window spanning midnight that is the previous
// calendar day.
func (w *Window) ClosingDate(now time.Time) string {
	local := w.Local(now)
	if w.Wraps() {
		return previousDay(local)
	}
	return local.Format(DateLayout)
}

// Contains reports whether now falls inside the collection window. The start is
// inclusive and the end exclusive.
func (w *Window) Contains(now time.Time) bool {
	current := Of(w.Local(now)).Minutes()
	start := w.start.Minutes()
	end := w.end.Minutes()

	if w.Wraps() {
		return current >= start || current < end
	}
	return start <= current && current < end
}

// ReminderTime returns the mid-window reminder time. The midpoint is computed on
// whole hours, so minutes of start and end are ignored.
func (w *Window) ReminderTime() TimeOfDay {
	startHour := w.start.Hour
	endHour := w.end.Hour
	if endHour < startHour {
		endHour += 24
	}
	return TimeOfDay{Hour: ((startHour + endHour) / 2) % 24}
}

// FormatDate formats a calendar date as a logical standup date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidateDate checks that value is a YYYY-MM-DD date
func ValidateDate(value string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return nil
}

func previousDay(local time.Time) string {
	y, m, d := local.Date()
	return time.Date(y, m, d-1, 12, 0, 0, 0, local.Location()).Format(DateLayout)
}
