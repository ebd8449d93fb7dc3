package constants

const (
	// Storage keys. These match the keys written by earlier installs and must not change.
	KeyEntries             = "HealthEntries"
	KeyGoals               = "HealthGoals"
	KeyAchievements        = "Achievements"
	KeyTheme               = "AppTheme"
	KeyOnboardingCompleted = "HasCompletedOnboarding"
	KeyTimezone            = "Timezone"

	// Default goal values
	DefaultGoalSteps     = 10000
	DefaultGoalWater     = 2.5
	DefaultGoalSleep     = 8.0
	DefaultGoalHeartRate = 70
	DefaultGoalCalories  = 2000

	// Default Settings Values
	DefaultTheme    = ThemeSystem
	DefaultTimezone = "Local" // Use system local timezone by default
)
