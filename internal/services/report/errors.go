package report

// ReportError is a custom error type for report-related errors
type ReportError string

// Error implements the error interface
func (e ReportError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     ReportError = "config cannot be nil"
	ErrNilRepository ReportError = "standup repository cannot be nil"
	ErrNilClock      ReportError = "clock cannot be nil"
	ErrInvalidDate   ReportError = "date must be formatted as YYYY-MM-DD"
)
