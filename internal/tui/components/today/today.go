// Package today renders the daily progress card.
package today

import (
	"fmt"
	"strings"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/progress"
	"github.com/julianstephens/healthtrack/internal/tui/theme"
)

const barWidth = 30

type Model struct {
	styles   theme.Styles
	bar      bprogress.Model
	entry    models.HealthEntry
	logged   bool
	goal     models.HealthGoal
	progress progress.Progress
	streak   int
	width    int
	height   int
}

func New(styles theme.Styles) Model {
	return Model{
		styles: styles,
		bar: bprogress.New(
			bprogress.WithDefaultGradient(),
			bprogress.WithWidth(barWidth),
			bprogress.WithoutPercentage(),
		),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces what the card shows. logged is false when today has no entry.
func (m *Model) SetData(entry models.HealthEntry, logged bool, goal models.HealthGoal, p progress.Progress, streak int) {
	m.entry = entry
	m.logged = logged
	m.goal = goal
	m.progress = p
	m.streak = streak
}

func (m Model) View() string {
	if !m.logged {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render("Today"),
			"Nothing logged yet today.",
			m.styles.Muted.Render("Press l to log your health data."),
		)
	}

	var rows []string
	for _, c := range m.progress.Metrics() {
		value := c.Metric.Value(m.entry)
		target := cli.GoalValue(c.Metric, m.goal)
		detail := fmt.Sprintf("%s / %s", cli.FormatMetric(c.Metric, value), cli.FormatMetric(c.Metric, target))
		if c.Metric == models.MetricHeartRate {
			detail = fmt.Sprintf("%s (max %s)", cli.FormatMetric(c.Metric, value), cli.FormatMetric(c.Metric, target))
		}
		rows = append(rows, fmt.Sprintf("%-12s %s %4s  %s",
			c.Metric.Label(), m.bar.ViewAs(c.Value), cli.Percent(c.Value), m.styles.Muted.Render(detail)))
	}

	overall := m.progress.Overall()
	rows = append(rows, "", fmt.Sprintf("%-12s %s %4s", "Overall", m.bar.ViewAs(overall), cli.Percent(overall)))

	var extra []string
	extra = append(extra, fmt.Sprintf("Mood %s %s", m.entry.Mood.Emoji(), m.entry.Mood.Label()))
	if m.entry.Weight > 0 {
		extra = append(extra, "Weight "+cli.FormatMetric(models.MetricWeight, m.entry.Weight))
	}
	extra = append(extra, fmt.Sprintf("Streak %d day(s)", m.streak))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Today"),
		strings.Join(rows, "\n"),
		"",
		m.styles.Card.Render(strings.Join(extra, "  ·  ")),
	)
}
