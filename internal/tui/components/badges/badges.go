// Package badges renders the achievement grid.
package badges

import (
	"fmt"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/tui/theme"
)

const (
	cardWidth = 24
	perRow    = 3
)

type Model struct {
	styles       theme.Styles
	bar          bprogress.Model
	achievements []models.Achievement
	progress     float64
	width        int
}

func New(styles theme.Styles) Model {
	return Model{
		styles: styles,
		bar:    bprogress.New(bprogress.WithDefaultGradient(), bprogress.WithWidth(40)),
	}
}

func (m *Model) SetSize(width int) {
	m.width = width
}

// SetAchievements replaces the grid. ratio is the unlocked share in [0, 1].
func (m *Model) SetAchievements(all []models.Achievement, ratio float64) {
	m.achievements = all
	m.progress = ratio
}

func (m Model) columns() int {
	if m.width > 0 && m.width < perRow*(cardWidth+4) {
		return max(1, m.width/(cardWidth+4))
	}
	return perRow
}

func (m Model) card(a models.Achievement) string {
	style := m.styles.Card.Width(cardWidth).Height(4)
	if !a.IsUnlocked {
		return style.BorderForeground(lipgloss.Color("240")).Render(
			m.styles.Muted.Render(fmt.Sprintf("🔒 %s\n%s", a.Title, a.Requirement)),
		)
	}

	when := ""
	if a.DateUnlocked != nil {
		when = humanize.Time(*a.DateUnlocked)
	}
	title := lipgloss.NewStyle().Foreground(theme.Color(a.Color)).Bold(true).Render(a.Icon + " " + a.Title)
	return style.BorderForeground(theme.Color(a.Color)).Render(
		fmt.Sprintf("%s\n%s\n%s", title, a.Description, m.styles.Muted.Render(when)),
	)
}

func (m Model) View() string {
	unlocked := 0
	for _, a := range m.achievements {
		if a.IsUnlocked {
			unlocked++
		}
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Achievements"),
		fmt.Sprintf("%d of %d unlocked", unlocked, len(m.achievements)),
		m.bar.ViewAs(m.progress),
		"",
	)

	cols := m.columns()
	var rows []string
	for i := 0; i < len(m.achievements); i += cols {
		end := min(i+cols, len(m.achievements))
		var cards []string
		for _, a := range m.achievements[i:end] {
			cards = append(cards, m.card(a))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
}
