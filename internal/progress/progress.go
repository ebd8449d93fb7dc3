// Package progress scores one day's entry against the daily goals.
package progress

import "github.com/julianstephens/healthtrack/internal/models"

// Progress holds per-metric completion in [0, 1]
type Progress struct {
	Steps     float64
	Water     float64
	Sleep     float64
	HeartRate float64
	Calories  float64
}

// Calculate scores entry against goal. A goal of zero for any metric scores
// that metric as zero.
func Calculate(entry models.HealthEntry, goal models.HealthGoal) Progress {
	return Progress{
		Steps:     Ratio(float64(entry.Steps), float64(goal.Steps)),
		Water:     Ratio(entry.WaterIntake, goal.WaterIntake),
		Sleep:     Ratio(entry.SleepHours, goal.SleepHours),
		HeartRate: heartRate(entry.HeartRate, goal.HeartRate),
		Calories:  Ratio(float64(entry.CaloriesBurned), float64(goal.CaloriesBurned)),
	}
}

// Ratio is value/goal clamped to [0, 1], or 0 when goal is not positive
func Ratio(value, goal float64) float64 {
	if goal <= 0 || value <= 0 {
		return 0
	}
	r := value / goal
	if r > 1 {
		return 1
	}
	return r
}

// heart rate is a ceiling: at or under scores 1, over scores 0.5
func heartRate(hr, goal int) float64 {
	switch {
	case goal <= 0 || hr <= 0:
		return 0
	case hr <= goal:
		return 1
	default:
		return 0.5
	}
}

// Overall is the mean of the five components
func (p Progress) Overall() float64 {
	return (p.Steps + p.Water + p.Sleep + p.HeartRate + p.Calories) / 5
}

// Metrics pairs each component with its label, in display order
func (p Progress) Metrics() []Component {
	return []Component{
		{Metric: models.MetricSteps, Value: p.Steps},
		{Metric: models.MetricWater, Value: p.Water},
		{Metric: models.MetricSleep, Value: p.Sleep},
		{Metric: models.MetricHeartRate, Value: p.HeartRate},
		{Metric: models.MetricCalories, Value: p.Calories},
	}
}

type Component struct {
	Metric models.Metric
	Value  float64
}
