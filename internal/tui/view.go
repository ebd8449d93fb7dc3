package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthtrack/internal/constants"
)

var tabTitles = []string{"Today", "Insights", "Achievements", "Trends"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateToday:
		content = m.today.View()
	case constants.StateInsights:
		content = m.insights.View()
	case constants.StateAchievements:
		content = m.badges.View()
	case constants.StateTrends:
		content = m.trends.View()
	case constants.StateLogEntry, constants.StateEditGoals:
		content = m.form.View()
	case constants.StateOnboarding:
		return m.viewOnboarding()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewBanner(),
		m.viewStatus(),
		m.styles.Doc.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		style := m.styles.InactiveTab
		if m.state == constants.SessionState(i) ||
			(m.state >= constants.TabCount && m.previousState == constants.SessionState(i)) {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewBanner shows newly unlocked achievements until the celebration ends
func (m Model) viewBanner() string {
	active := m.celebration.Active()
	if len(active) == 0 {
		return ""
	}
	names := make([]string, len(active))
	for i, a := range active {
		names[i] = a.Icon + " " + a.Title
	}
	label := "🎉 Achievement Unlocked! "
	if len(active) > 1 {
		label = "🎉 Achievements Unlocked! "
	}
	return m.styles.Banner.Render(label + strings.Join(names, " · "))
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if strings.HasPrefix(m.status, "Failed") {
		return m.styles.Danger.Render(m.status)
	}
	return m.styles.Success.Render(m.status)
}

func (m Model) viewOnboarding() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Welcome to healthtrack"),
		"Log steps, water, sleep, heart rate, calories, weight and mood once a day.",
		"Your progress is scored against daily goals you can change with g.",
		"Achievements unlock as you hit milestones, and insights appear as",
		"patterns emerge in your last week and month.",
		"",
		m.styles.Muted.Render("Press any key to start, or q to quit."),
	)
	card := m.styles.Card.Padding(1, 2).Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
