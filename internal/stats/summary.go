package stats

import (
	"time"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/progress"
)

// Summary is the overview of one date range
type Summary struct {
	RangeDays          int
	Entries            int
	AvgSteps           float64
	AvgWater           float64
	AvgSleep           float64
	AvgCalories        float64
	Trends             map[models.Metric]float64
	ConsistencyPercent int
	Streak             int
	BestDay            *models.HealthEntry
	MostActiveWeekday  *time.Weekday
	GoalsMet           int
	AverageMood        float64
}

var summaryTrendMetrics = []models.Metric{
	models.MetricSteps, models.MetricWater, models.MetricSleep, models.MetricCalories,
}

// Summarize computes the range overview. entries may be the whole history;
// the streak always looks at all of it.
func Summarize(entries []models.HealthEntry, goal models.HealthGoal, rangeDays int, now time.Time, loc *time.Location) Summary {
	inRange := Within(entries, rangeDays, now)

	s := Summary{
		RangeDays:          rangeDays,
		Entries:            len(inRange),
		AvgSteps:           Mean(Series(inRange, models.MetricSteps)),
		AvgWater:           Mean(Series(inRange, models.MetricWater)),
		AvgSleep:           Mean(Series(inRange, models.MetricSleep)),
		AvgCalories:        Mean(Series(inRange, models.MetricCalories)),
		Trends:             make(map[models.Metric]float64, len(summaryTrendMetrics)),
		ConsistencyPercent: ConsistencyPercent(len(inRange), rangeDays),
		Streak:             Streak(entries, now, loc),
		GoalsMet:           GoalsMet(inRange, goal),
		AverageMood:        AverageMood(inRange),
	}
	for _, m := range summaryTrendMetrics {
		s.Trends[m] = Trend(Series(inRange, m))
	}
	if best, ok := BestDay(inRange, goal); ok {
		s.BestDay = &best
	}
	if wd, ok := MostActiveWeekday(inRange, loc); ok {
		s.MostActiveWeekday = &wd
	}
	return s
}

// ConsistencyPercent is logged days over range days, truncated to an int
func ConsistencyPercent(logged, rangeDays int) int {
	if rangeDays <= 0 {
		return 0
	}
	return logged * 100 / rangeDays
}

// DayScore is the mean of the steps, water, sleep and calories ratios
func DayScore(e models.HealthEntry, goal models.HealthGoal) float64 {
	return (progress.Ratio(float64(e.Steps), float64(goal.Steps)) +
		progress.Ratio(e.WaterIntake, goal.WaterIntake) +
		progress.Ratio(e.SleepHours, goal.SleepHours) +
		progress.Ratio(float64(e.CaloriesBurned), float64(goal.CaloriesBurned))) / 4
}

// BestDay returns the highest scoring entry; the earliest wins ties
func BestDay(entries []models.HealthEntry, goal models.HealthGoal) (models.HealthEntry, bool) {
	if len(entries) == 0 {
		return models.HealthEntry{}, false
	}
	best, bestScore := entries[0], DayScore(entries[0], goal)
	for _, e := range entries[1:] {
		if score := DayScore(e, goal); score > bestScore {
			best, bestScore = e, score
		}
	}
	return best, true
}

// MostActiveWeekday groups by weekday and picks the highest integer mean of
// steps; Sunday-first order breaks ties.
func MostActiveWeekday(entries []models.HealthEntry, loc *time.Location) (time.Weekday, bool) {
	if len(entries) == 0 {
		return time.Sunday, false
	}
	byDay := make(map[time.Weekday][]int)
	for _, e := range entries {
		wd := e.Date.In(loc).Weekday()
		byDay[wd] = append(byDay[wd], e.Steps)
	}

	best, bestAvg, found := time.Sunday, 0, false
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		steps, ok := byDay[wd]
		if !ok {
			continue
		}
		if avg := IntMean(steps); !found || avg > bestAvg {
			best, bestAvg, found = wd, avg, true
		}
	}
	return best, found
}

// GoalsMet counts entries whose overall progress reaches GoalsMetOverallRatio
func GoalsMet(entries []models.HealthEntry, goal models.HealthGoal) int {
	n := 0
	for _, e := range entries {
		if progress.Calculate(e, goal).Overall() >= constants.GoalsMetOverallRatio {
			n++
		}
	}
	return n
}
