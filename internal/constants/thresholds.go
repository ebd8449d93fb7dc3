package constants

// Insight and summary thresholds. These are fixed policy values.
const (
	StepGoalMinDaysPerWeek = 3    // fewer weekly days at goal triggers the step challenge
	StepTrendRatio         = 1.10 // weekly average must exceed monthly average by this factor
	HydrationConcernRatio  = 0.80 // weekly water average below this share of goal is a concern
	SleepConcernRatio      = 0.85 // weekly sleep average below this share of goal is a concern
	ConsistencyStreakDays  = 7
	MoodConcernBelow       = 3.0
	MoodPositiveAtLeast    = 4.0
	WeightChangeNotableKg  = 2.0
	WeightChangeLargeKg    = 5.0

	// GoalsMetOverallRatio is the overall progress at which a day counts as "goals met"
	GoalsMetOverallRatio = 0.8

	// TrendNeutralBand is the absolute trend under which a chart reports no direction
	TrendNeutralBand = 0.1
)
