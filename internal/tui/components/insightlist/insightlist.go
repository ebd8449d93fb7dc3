// Package insightlist renders generated insights as priority-colored cards.
package insightlist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/tui/theme"
)

type Model struct {
	styles   theme.Styles
	insights []models.HealthInsight
	width    int
}

func New(styles theme.Styles) Model {
	return Model{styles: styles}
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m *Model) SetInsights(insights []models.HealthInsight) {
	m.insights = insights
}

func (m Model) cardWidth() int {
	if m.width <= 8 {
		return 60
	}
	return min(m.width-8, 80)
}

func (m Model) View() string {
	if len(m.insights) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render("Insights"),
			"No insights yet. Keep logging to see patterns.",
		)
	}

	cards := []string{m.styles.Title.Render("Insights")}
	for _, in := range m.insights {
		accent := theme.Color(in.Priority.Color())
		heading := lipgloss.NewStyle().Foreground(theme.Color(in.Color)).Bold(true).
			Render(in.Icon + " " + in.Title)
		badge := lipgloss.NewStyle().Foreground(accent).Render("[" + in.Priority.String() + "]")

		lines := []string{heading + " " + badge, in.Description}
		var meta []string
		if in.Value != "" {
			meta = append(meta, in.Value)
		}
		if in.ActionTitle != "" {
			meta = append(meta, "→ "+in.ActionTitle)
		}
		if len(meta) > 0 {
			lines = append(lines, m.styles.Muted.Render(strings.Join(meta, "  ")))
		}

		cards = append(cards, m.styles.Card.
			BorderForeground(accent).
			Width(m.cardWidth()).
			Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
