package stats

import (
	"time"

	"github.com/julianstephens/healthtrack/internal/models"
)

// Point is one plotted day
type Point struct {
	Date  time.Time
	Value float64
}

// ChartStats describes one metric over a range
type ChartStats struct {
	Metric    models.Metric
	Points    []Point
	Average   float64
	Maximum   float64
	Trend     float64
	Direction Direction
}

// Chart builds the series for metric over the last rangeDays. Days where the
// metric is not positive are left out; mood is always plotted by its score.
func Chart(entries []models.HealthEntry, metric models.Metric, rangeDays int, now time.Time) ChartStats {
	cs := ChartStats{Metric: metric}
	var values []float64
	for _, e := range Within(entries, rangeDays, now) {
		v := metric.Value(e)
		if v <= 0 {
			continue
		}
		cs.Points = append(cs.Points, Point{Date: e.Date, Value: v})
		values = append(values, v)
	}

	cs.Average = Mean(values)
	cs.Maximum = Max(values)
	cs.Trend = Trend(values)
	cs.Direction = DirectionOf(cs.Trend)
	return cs
}

func (c ChartStats) FormattedAverage() string {
	return c.Metric.Format(c.Average)
}

func (c ChartStats) FormattedMaximum() string {
	return c.Metric.Format(c.Maximum)
}

func (c ChartStats) FormattedTrend() string {
	return c.Metric.FormatTrend(c.Trend)
}
