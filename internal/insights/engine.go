// Package insights turns recent entries into prioritized observations.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/stats"
	"github.com/julianstephens/healthtrack/internal/utils"
)

// Engine holds no state beyond its clock; Generate is a pure function of its
// inputs and the current time.
type Engine struct {
	clock utils.Clock
	loc   *time.Location
}

type Option func(*Engine)

func WithClock(clock utils.Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{loc: time.Local}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate runs every rule and returns the insights, highest priority first.
// Rules of equal priority keep their rule order.
func (e *Engine) Generate(entries []models.HealthEntry, goal models.HealthGoal) []models.HealthInsight {
	now := e.clock.Now()
	weekly := stats.Within(entries, constants.WeekDays, now)
	monthly := stats.Within(entries, constants.MonthDays, now)

	var out []models.HealthInsight
	out = append(out, stepInsights(weekly, monthly, goal)...)
	out = append(out, waterInsights(weekly, goal)...)
	out = append(out, sleepInsights(weekly, goal)...)
	out = append(out, consistencyInsights(stats.Streak(entries, now, e.loc))...)
	out = append(out, moodInsights(weekly)...)
	out = append(out, weightInsights(monthly)...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

func steps(entries []models.HealthEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Steps
	}
	return out
}

func stepInsights(weekly, monthly []models.HealthEntry, goal models.HealthGoal) []models.HealthInsight {
	var out []models.HealthInsight

	weeklyAvg := stats.IntMean(steps(weekly))
	monthlyAvg := stats.IntMean(steps(monthly))

	daysAtGoal := 0
	for _, e := range weekly {
		if e.Steps >= goal.Steps {
			daysAtGoal++
		}
	}
	if daysAtGoal < constants.StepGoalMinDaysPerWeek {
		out = append(out, models.HealthInsight{
			Title:       "Step Goal Challenge",
			Description: fmt.Sprintf("You've only achieved your step goal %d times this week. Try taking short walks throughout the day.", daysAtGoal),
			Icon:        "🚶",
			Color:       "orange",
			Priority:    models.PriorityMedium,
			ActionTitle: "Set Walk Reminders",
			Value:       fmt.Sprintf("%d avg steps", weeklyAvg),
		})
	}

	if monthlyAvg > 0 && float64(weeklyAvg) > float64(monthlyAvg)*constants.StepTrendRatio {
		increase := int((float64(weeklyAvg)/float64(monthlyAvg) - 1) * 100)
		out = append(out, models.HealthInsight{
			Title:       "Great Step Progress!",
			Description: fmt.Sprintf("Your weekly average is %d%% higher than your monthly average. Keep it up!", increase),
			Icon:        "📈",
			Color:       "green",
			Priority:    models.PriorityLow,
			Value:       fmt.Sprintf("+%d steps", weeklyAvg-monthlyAvg),
		})
	}
	return out
}

func waterInsights(weekly []models.HealthEntry, goal models.HealthGoal) []models.HealthInsight {
	avg := stats.Mean(stats.Series(weekly, models.MetricWater))
	if avg >= goal.WaterIntake*constants.HydrationConcernRatio {
		return nil
	}
	return []models.HealthInsight{{
		Title:       "Hydration Needs Attention",
		Description: "Your average water intake is below your goal. Proper hydration improves energy and focus.",
		Icon:        "💧",
		Color:       "blue",
		Priority:    models.PriorityHigh,
		ActionTitle: "Set Water Reminders",
		Value:       fmt.Sprintf("%.1fL avg", avg),
	}}
}

func sleepInsights(weekly []models.HealthEntry, goal models.HealthGoal) []models.HealthInsight {
	avg := stats.Mean(stats.Series(weekly, models.MetricSleep))
	if avg >= goal.SleepHours*constants.SleepConcernRatio {
		return nil
	}
	return []models.HealthInsight{{
		Title:       "Sleep Quality Concern",
		Description: "You're averaging less sleep than recommended. Quality sleep is crucial for recovery and health.",
		Icon:        "🛏",
		Color:       "purple",
		Priority:    models.PriorityHigh,
		ActionTitle: "Sleep Tips",
		Value:       fmt.Sprintf("%.1fh avg", avg),
	}}
}

func consistencyInsights(streak int) []models.HealthInsight {
	switch {
	case streak >= constants.ConsistencyStreakDays:
		return []models.HealthInsight{{
			Title:       "Amazing Consistency!",
			Description: fmt.Sprintf("You've logged entries for %d consecutive days. Consistency is the key to lasting health improvements.", streak),
			Icon:        "🔥",
			Color:       "orange",
			Priority:    models.PriorityLow,
			Value:       fmt.Sprintf("%d days", streak),
		}}
	case streak == 0:
		return []models.HealthInsight{{
			Title:       "Get Back on Track",
			Description: "Regular logging helps you stay aware of your health patterns. Start your streak today!",
			Icon:        "📅",
			Color:       "red",
			Priority:    models.PriorityMedium,
			ActionTitle: "Log Today",
			Value:       "0 day streak",
		}}
	default:
		return nil
	}
}

func moodInsights(weekly []models.HealthEntry) []models.HealthInsight {
	if len(weekly) == 0 {
		return nil
	}
	avg := stats.AverageMood(weekly)
	switch {
	case avg < constants.MoodConcernBelow:
		return []models.HealthInsight{{
			Title:       "Mood Support Needed",
			Description: "Your mood has been lower than usual. Consider activities that boost your wellbeing.",
			Icon:        "❤️",
			Color:       "pink",
			Priority:    models.PriorityHigh,
			ActionTitle: "Wellness Tips",
			Value:       fmt.Sprintf("%.1f/5.0", avg),
		}}
	case avg >= constants.MoodPositiveAtLeast:
		return []models.HealthInsight{{
			Title:       "Positive Mood Trend",
			Description: "Your mood has been consistently positive this week. Keep doing what makes you happy!",
			Icon:        "😊",
			Color:       "yellow",
			Priority:    models.PriorityLow,
			Value:       fmt.Sprintf("%.1f/5.0", avg),
		}}
	default:
		return nil
	}
}

// weightInsights expects monthly in ascending date order
func weightInsights(monthly []models.HealthEntry) []models.HealthInsight {
	var weighed []models.HealthEntry
	for _, e := range monthly {
		if e.Weight > 0 {
			weighed = append(weighed, e)
		}
	}
	if len(weighed) < 2 {
		return nil
	}

	change := weighed[len(weighed)-1].Weight - weighed[0].Weight
	if math.Abs(change) <= constants.WeightChangeNotableKg {
		return nil
	}

	direction := "lost"
	if change > 0 {
		direction = "gained"
	}
	color := "blue"
	if math.Abs(change) > constants.WeightChangeLargeKg {
		color = "orange"
	}
	return []models.HealthInsight{{
		Title:       "Weight Change Detected",
		Description: fmt.Sprintf("You've %s %.1fkg this month. Monitor your trends.", direction, math.Abs(change)),
		Icon:        "⚖️",
		Color:       color,
		Priority:    models.PriorityMedium,
		ActionTitle: "View Trends",
		Value:       fmt.Sprintf("%+.1fkg", change),
	}}
}
