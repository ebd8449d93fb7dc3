package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthtrack/internal/achievements"
	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/input"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/tracker"
	"github.com/julianstephens/healthtrack/internal/tui/components/badges"
	"github.com/julianstephens/healthtrack/internal/tui/components/insightlist"
	"github.com/julianstephens/healthtrack/internal/tui/components/today"
	"github.com/julianstephens/healthtrack/internal/tui/components/trends"
	"github.com/julianstephens/healthtrack/internal/tui/theme"
)

var chartMetrics = []models.Metric{
	models.MetricSteps, models.MetricWater, models.MetricSleep,
	models.MetricHeartRate, models.MetricCalories, models.MetricWeight, models.MetricMood,
}

type Model struct {
	tracker     *tracker.Tracker
	store       storage.Provider
	celebration *achievements.Celebration
	styles      theme.Styles

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	today    today.Model
	insights insightlist.Model
	badges   badges.Model
	trends   trends.Model

	form      *huh.Form
	logForm   *input.Form
	goalForm  *GoalFormModel
	formError string
	status    string

	rangeIdx  int
	metricIdx int

	quitting bool
	width    int
	height   int
}

// NewModel builds the TUI over t. p supplies the display settings and
// records onboarding; c times the unlock banner.
func NewModel(t *tracker.Tracker, p storage.Provider, c *achievements.Celebration) Model {
	settings := storage.LoadSettings(p)
	styles := theme.New(settings.Theme)

	m := Model{
		tracker:     t,
		store:       p,
		celebration: c,
		styles:      styles,
		state:       constants.StateToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		today:       today.New(styles),
		insights:    insightlist.New(styles),
		badges:      badges.New(styles),
		trends:      trends.New(styles),
	}
	if !settings.OnboardingCompleted {
		m.state = constants.StateOnboarding
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh recomputes every view from the tracker
func (m *Model) refresh() {
	t := m.tracker
	entry, logged := t.Entries.Today()
	p, _ := t.TodayProgress()
	m.today.SetData(entry, logged, t.Goals.Get(), p, t.Entries.Streak())

	m.insights.SetInsights(t.CurrentInsights())
	m.badges.SetAchievements(t.Achievements.All(), t.Achievements.Progress())

	rangeDays := cli.Ranges[m.rangeIdx]
	m.trends.SetData(t.Chart(chartMetrics[m.metricIdx], rangeDays), t.Summary(rangeDays))
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.today.SetSize(width, height)
	m.insights.SetSize(width)
	m.badges.SetSize(width)
	m.trends.SetSize(width)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Log, m.keys.Goals}
	if m.state == constants.StateTrends {
		keys = append(keys, m.keys.Metric, m.keys.Range)
	}
	if len(m.celebration.Active()) > 0 {
		keys = append(keys, m.keys.Dismiss)
	}
	return append(keys, m.keys.Help, m.keys.Quit)
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Help, m.keys.Quit},
		{m.keys.Log, m.keys.Goals, m.keys.Dismiss},
		{m.keys.Metric, m.keys.Range},
	}
}
