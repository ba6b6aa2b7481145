package scheduler

// SchedulerError is a custom error type for scheduler-related errors
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     SchedulerError = "config cannot be nil"
	ErrNilRepository SchedulerError = "standup repository cannot be nil"
	ErrNilSessions   SchedulerError = "session service cannot be nil"
	ErrNilReports    SchedulerError = "report service cannot be nil"
	ErrNilSummaries  SchedulerError = "summary service cannot be nil"
	ErrNilPublisher  SchedulerError = "publisher cannot be nil"
	ErrNilClock      SchedulerError = "clock cannot be nil"
)
