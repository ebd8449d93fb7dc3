package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/progress"
)

// Ranges accepted by summary and chart
var Ranges = []int{constants.WeekDays, constants.MonthDays, constants.ThreeMonthDays}

func ValidateRange(days int) error {
	for _, r := range Ranges {
		if r == days {
			return nil
		}
	}
	return fmt.Errorf("range must be one of 7, 30 or 90 days, got %d", days)
}

// Bar renders ratio in [0, 1] as a fixed-width bar
func Bar(ratio float64, width int) string {
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func Percent(ratio float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
}

// FormatDay renders a calendar day, e.g. "Sat, Mar 15"
func FormatDay(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// FormatMetric renders value in the metric's display units
func FormatMetric(m models.Metric, value float64) string {
	switch m {
	case models.MetricSteps, models.MetricCalories:
		return humanize.Comma(int64(value))
	case models.MetricWater:
		return humanize.FtoaWithDigits(value, 1) + "L"
	case models.MetricSleep:
		return humanize.FtoaWithDigits(value, 1) + "h"
	case models.MetricHeartRate:
		return fmt.Sprintf("%.0f bpm", value)
	case models.MetricWeight:
		return humanize.FtoaWithDigits(value, 1) + "kg"
	default:
		return m.Format(value)
	}
}

// GoalValue is the daily target for a progress metric
func GoalValue(m models.Metric, goal models.HealthGoal) float64 {
	switch m {
	case models.MetricSteps:
		return float64(goal.Steps)
	case models.MetricWater:
		return goal.WaterIntake
	case models.MetricSleep:
		return goal.SleepHours
	case models.MetricHeartRate:
		return float64(goal.HeartRate)
	case models.MetricCalories:
		return float64(goal.CaloriesBurned)
	default:
		return 0
	}
}

// ProgressLines renders one bar per goal metric and an overall line
func ProgressLines(entry models.HealthEntry, goal models.HealthGoal, p progress.Progress) []string {
	var lines []string
	for _, c := range p.Metrics() {
		value := c.Metric.Value(entry)
		target := GoalValue(c.Metric, goal)
		label := fmt.Sprintf("%s / %s", FormatMetric(c.Metric, value), FormatMetric(c.Metric, target))
		if c.Metric == models.MetricHeartRate {
			label = fmt.Sprintf("%s (max %s)", FormatMetric(c.Metric, value), FormatMetric(c.Metric, target))
		}
		lines = append(lines, fmt.Sprintf("  %-12s %s %4s  %s", c.Metric.Label(), Bar(c.Value, 20), Percent(c.Value), label))
	}
	lines = append(lines, fmt.Sprintf("  %-12s %s %4s", "Overall", Bar(p.Overall(), 20), Percent(p.Overall())))
	return lines
}

// AchievementLine renders one achievement with its unlock state
func AchievementLine(a models.Achievement) string {
	if a.IsUnlocked && a.DateUnlocked != nil {
		return fmt.Sprintf("  %s %-18s %s (unlocked %s)", a.Icon, a.Title, a.Description, humanize.Time(*a.DateUnlocked))
	}
	return fmt.Sprintf("  🔒 %-18s %s [%s]", a.Title, a.Description, a.Requirement)
}

// InsightLine renders one insight with its priority
func InsightLine(in models.HealthInsight) string {
	line := fmt.Sprintf("  %s [%s] %s: %s", in.Icon, in.Priority, in.Title, in.Description)
	if in.Value != "" {
		line += fmt.Sprintf(" (%s)", in.Value)
	}
	if in.ActionTitle != "" {
		line += fmt.Sprintf(" -> %s", in.ActionTitle)
	}
	return line
}
