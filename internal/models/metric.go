package models

import (
	"fmt"
	"strings"
)

// Metric names one charted quantity of an entry.
type Metric string

const (
	MetricSteps     Metric = "steps"
	MetricWater     Metric = "water"
	MetricSleep     Metric = "sleep"
	MetricHeartRate Metric = "heart_rate"
	MetricCalories  Metric = "calories"
	MetricWeight    Metric = "weight"
	MetricMood      Metric = "mood"
)

var AllMetrics = []Metric{
	MetricSteps, MetricWater, MetricSleep, MetricHeartRate,
	MetricCalories, MetricWeight, MetricMood,
}

func ParseMetric(input string) (Metric, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	switch s {
	case "hr", "heartrate":
		return MetricHeartRate, nil
	case "kcal", "calorie":
		return MetricCalories, nil
	}
	for _, m := range AllMetrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid metric: %q", input)
}

// Value extracts the metric from an entry. Mood is mapped onto its 1-5 score.
func (m Metric) Value(e HealthEntry) float64 {
	switch m {
	case MetricSteps:
		return float64(e.Steps)
	case MetricWater:
		return e.WaterIntake
	case MetricSleep:
		return e.SleepHours
	case MetricHeartRate:
		return float64(e.HeartRate)
	case MetricCalories:
		return float64(e.CaloriesBurned)
	case MetricWeight:
		return e.Weight
	case MetricMood:
		return e.Mood.Score()
	default:
		return 0
	}
}

func (m Metric) Label() string {
	switch m {
	case MetricSteps:
		return "Steps"
	case MetricWater:
		return "Water (L)"
	case MetricSleep:
		return "Sleep (hrs)"
	case MetricHeartRate:
		return "Heart Rate"
	case MetricCalories:
		return "Calories"
	case MetricWeight:
		return "Weight (kg)"
	case MetricMood:
		return "Mood"
	default:
		return string(m)
	}
}

// Format renders a value the way the charts display it.
func (m Metric) Format(v float64) string {
	switch m {
	case MetricSteps, MetricHeartRate, MetricCalories:
		return fmt.Sprintf("%.0f", v)
	case MetricMood:
		return fmt.Sprintf("%.1f/5", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

// FormatTrend renders a signed trend delta; positive values get a leading "+".
func (m Metric) FormatTrend(v float64) string {
	prefix := ""
	if v > 0 {
		prefix = "+"
	}
	switch m {
	case MetricSteps, MetricHeartRate, MetricCalories:
		return prefix + fmt.Sprintf("%.0f", v)
	default:
		return prefix + fmt.Sprintf("%.1f", v)
	}
}
