package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Trailing windows used by insights and summaries, in days
	WeekDays       = 7
	MonthDays      = 30
	ThreeMonthDays = 90

	// MaxStreakLookback caps how far back a streak walk goes
	MaxStreakLookback = 30
)
