// Package stats holds the numeric helpers behind insights, summaries and
// charts. Every function is pure; "now" and the location are passed in.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/utils"
)

// Direction classifies a trend delta
type Direction string

const (
	Up      Direction = "up"
	Down    Direction = "down"
	Neutral Direction = "neutral"
)

func (d Direction) Arrow() string {
	switch d {
	case Up:
		return "↑"
	case Down:
		return "↓"
	default:
		return "→"
	}
}

// Mean returns the arithmetic mean, or 0 for no values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Max returns the largest value, or 0 for no values
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		m = math.Max(m, v)
	}
	return m
}

// MovingAverage returns the trailing mean over each full window. The result
// has len(values)-window+1 points, or none when window does not fit.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 || window > len(values) {
		return nil
	}
	out := make([]float64, 0, len(values)-window+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

// Trend compares the mean of the last n/2 values with the mean of the first
// n/2. With an odd count the middle value belongs to neither half.
func Trend(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	half := len(values) / 2
	return Mean(values[len(values)-half:]) - Mean(values[:half])
}

// DirectionOf treats deltas inside the neutral band as flat
func DirectionOf(trend float64) Direction {
	switch {
	case math.Abs(trend) < constants.TrendNeutralBand:
		return Neutral
	case trend > 0:
		return Up
	default:
		return Down
	}
}

// Within returns entries dated in [now-days, now], ascending by date
func Within(entries []models.HealthEntry, days int, now time.Time) []models.HealthEntry {
	cutoff := now.AddDate(0, 0, -days)
	var out []models.HealthEntry
	for _, e := range entries {
		if !e.Date.Before(cutoff) && !e.Date.After(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Streak counts consecutive calendar days with an entry, walking back from
// today. No entry today means a streak of 0; the walk stops after
// MaxStreakLookback days.
func Streak(entries []models.HealthEntry, now time.Time, loc *time.Location) int {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[utils.DayKey(e.Date, loc)] = true
	}

	streak := 0
	day := now.In(loc)
	for i := 0; i < constants.MaxStreakLookback; i++ {
		if !days[utils.DayKey(day, loc)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// Series extracts metric from each entry, in entry order
func Series(entries []models.HealthEntry, metric models.Metric) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = metric.Value(e)
	}
	return out
}

// AverageMood is the mean mood score, or 0 for no entries
func AverageMood(entries []models.HealthEntry) float64 {
	return Mean(Series(entries, models.MetricMood))
}

// IntMean is the truncated integer mean of ints, or 0 for none
func IntMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum / len(values)
}
