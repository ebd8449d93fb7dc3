package models

import "github.com/julianstephens/healthtrack/internal/constants"

// HealthGoal holds the daily targets. HeartRate is an upper bound: lower is better.
type HealthGoal struct {
	Steps          int     `json:"steps" diff:"steps"`
	WaterIntake    float64 `json:"water_intake" diff:"water_intake"`
	SleepHours     float64 `json:"sleep_hours" diff:"sleep_hours"`
	HeartRate      int     `json:"heart_rate" diff:"heart_rate"`
	CaloriesBurned int     `json:"calories_burned" diff:"calories_burned"`
}

func DefaultHealthGoal() HealthGoal {
	return HealthGoal{
		Steps:          constants.DefaultGoalSteps,
		WaterIntake:    constants.DefaultGoalWater,
		SleepHours:     constants.DefaultGoalSleep,
		HeartRate:      constants.DefaultGoalHeartRate,
		CaloriesBurned: constants.DefaultGoalCalories,
	}
}
