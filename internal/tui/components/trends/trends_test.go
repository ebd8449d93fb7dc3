package trends

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/stats"
	"github.com/julianstephens/healthtrack/internal/tui/theme"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"all zero", []float64{0, 0}, "▁▁"},
		{"rising", []float64{0, 7, 14}, "▁▅█"},
		{"flat", []float64{5, 5, 5}, "███"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sparkline(tt.values); got != tt.want {
				t.Errorf("Sparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestViewShowsStats(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.HealthEntry{
		{ID: "a", Date: now.AddDate(0, 0, -1), Steps: 8000, Mood: models.MoodNeutral},
		{ID: "b", Date: now, Steps: 12000, Mood: models.MoodNeutral},
	}
	goal := models.DefaultHealthGoal()

	m := New(theme.New(constants.ThemeDark))
	m.SetData(
		stats.Chart(entries, models.MetricSteps, 7, now),
		stats.Summarize(entries, goal, 7, now, time.UTC),
	)

	view := m.View()
	for _, want := range []string{"Steps", "last 7 days", "Average 10000", "Max 12000", "Entries logged   2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewWithoutData(t *testing.T) {
	m := New(theme.New(constants.ThemeSystem))
	m.SetData(stats.ChartStats{Metric: models.MetricWater}, stats.Summary{RangeDays: 30})
	if !strings.Contains(m.View(), "No data for this range.") {
		t.Error("expected empty-range message")
	}
}
