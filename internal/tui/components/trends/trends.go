// Package trends renders one metric's chart and the range summary.
package trends

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/stats"
	"github.com/julianstephens/healthtrack/internal/tui/theme"
)

var levels = []rune("▁▂▃▄▅▆▇█")

type Model struct {
	styles  theme.Styles
	chart   stats.ChartStats
	summary stats.Summary
	width   int
}

func New(styles theme.Styles) Model {
	return Model{styles: styles}
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m *Model) SetData(chart stats.ChartStats, summary stats.Summary) {
	m.chart = chart
	m.summary = summary
}

// Sparkline scales values against their maximum, one rune per value
func Sparkline(values []float64) string {
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak <= 0 {
		return strings.Repeat(string(levels[0]), len(values))
	}

	var b strings.Builder
	for _, v := range values {
		i := int(math.Round(v / peak * float64(len(levels)-1)))
		b.WriteRune(levels[max(0, min(i, len(levels)-1))])
	}
	return b.String()
}

func (m Model) viewChart() string {
	c := m.chart
	title := fmt.Sprintf("%s · last %d days", c.Metric.Label(), m.summary.RangeDays)
	if len(c.Points) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render(title),
			"No data for this range.",
		)
	}

	values := make([]float64, len(c.Points))
	for i, p := range c.Points {
		values[i] = p.Value
	}
	first := cli.FormatDay(c.Points[0].Date)
	last := cli.FormatDay(c.Points[len(c.Points)-1].Date)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		lipgloss.NewStyle().Foreground(theme.Color("blue")).Render(Sparkline(values)),
		m.styles.Muted.Render(fmt.Sprintf("%s → %s", first, last)),
		"",
		fmt.Sprintf("Average %s   Max %s   Trend %s %s",
			c.FormattedAverage(), c.FormattedMaximum(), c.FormattedTrend(), c.Direction.Arrow()),
	)
}

func (m Model) viewSummary() string {
	s := m.summary
	lines := []string{
		fmt.Sprintf("Entries logged   %d (%d%% consistency)", s.Entries, s.ConsistencyPercent),
		fmt.Sprintf("Current streak   %d day(s)", s.Streak),
		fmt.Sprintf("Goals met        %d day(s)", s.GoalsMet),
		fmt.Sprintf("Avg steps        %s", cli.FormatMetric(models.MetricSteps, s.AvgSteps)),
		fmt.Sprintf("Avg water        %s", cli.FormatMetric(models.MetricWater, s.AvgWater)),
		fmt.Sprintf("Avg sleep        %s", cli.FormatMetric(models.MetricSleep, s.AvgSleep)),
	}
	if s.BestDay != nil {
		lines = append(lines, fmt.Sprintf("Best day         %s", cli.FormatDay(s.BestDay.Date)))
	}
	if s.MostActiveWeekday != nil {
		lines = append(lines, fmt.Sprintf("Most active      %s", s.MostActiveWeekday.String()))
	}
	return m.styles.Card.Render(strings.Join(lines, "\n"))
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewChart(),
		"",
		m.viewSummary(),
		m.styles.Muted.Render("m: next metric  r: next range"),
	)
}
