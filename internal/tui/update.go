package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/input"
	"github.com/julianstephens/healthtrack/internal/logger"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage"
)

// celebrationDoneMsg ends the banner generation it carries
type celebrationDoneMsg struct {
	gen uint64
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case celebrationDoneMsg:
		if m.celebration.Dismiss(msg.gen) {
			m.tracker.Achievements.ClearRecentlyUnlocked()
		}
		return m, nil
	}

	switch m.state {
	case constants.StateLogEntry, constants.StateEditGoals:
		return m.updateForm(msg)
	case constants.StateOnboarding:
		if msg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(msg, m.keys.Quit) {
				m.quitting = true
				return m, tea.Quit
			}
			m.completeOnboarding()
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Dismiss):
		if len(m.celebration.Active()) > 0 {
			m.celebration.Stop()
			m.tracker.Achievements.ClearRecentlyUnlocked()
		}
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % constants.TabCount
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state + constants.TabCount - 1) % constants.TabCount
	case key.Matches(msg, m.keys.Log):
		return m, m.openLogForm()
	case key.Matches(msg, m.keys.Goals):
		return m, m.openGoalForm()
	case key.Matches(msg, m.keys.Metric) && m.state == constants.StateTrends:
		m.metricIdx = (m.metricIdx + 1) % len(chartMetrics)
		m.refresh()
	case key.Matches(msg, m.keys.Range) && m.state == constants.StateTrends:
		m.rangeIdx = (m.rangeIdx + 1) % len(cli.Ranges)
		m.refresh()
	}
	return m, nil
}

func (m *Model) openLogForm() tea.Cmd {
	m.formError = ""
	m.logForm = logFormFor(m.tracker.Entries.Today())
	m.form = m.newLogForm()
	m.previousState = m.state
	m.state = constants.StateLogEntry
	return m.form.Init()
}

func (m *Model) openGoalForm() tea.Cmd {
	m.formError = ""
	m.goalForm = goalFormFrom(m.tracker.Goals.Get())
	m.form = m.newGoalForm()
	m.previousState = m.state
	m.state = constants.StateEditGoals
	return m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.formError = ""
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == constants.StateLogEntry {
			return m, m.saveEntry()
		}
		return m, m.saveGoals()
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

// saveEntry runs the save flow and starts a banner for any unlocks
func (m *Model) saveEntry() tea.Cmd {
	res, err := m.tracker.Save(context.Background(), *m.logForm)
	if err != nil {
		if errors.Is(err, input.ErrNothingEntered) {
			// stay in the form so the user can fill something in
			m.formError = err.Error()
			m.form = m.newLogForm()
			return m.form.Init()
		}
		logger.Error("Failed to save entry", "error", err)
		m.formError = ""
		m.status = fmt.Sprintf("Failed to save entry: %v", err)
		m.state = m.previousState
		return nil
	}

	m.formError = ""
	m.state = m.previousState
	m.status = fmt.Sprintf("Saved %s (%s overall)", cli.FormatDay(res.Entry.Date), cli.Percent(res.Progress.Overall()))
	m.refresh()

	if len(res.Unlocked) == 0 {
		return nil
	}
	return m.celebrate(res.Unlocked)
}

func (m *Model) celebrate(unlocked []models.Achievement) tea.Cmd {
	gen := m.celebration.Begin(unlocked)
	return tea.Tick(m.celebration.Duration(), func(time.Time) tea.Msg {
		return celebrationDoneMsg{gen: gen}
	})
}

func (m *Model) saveGoals() tea.Cmd {
	m.state = m.previousState
	goal, err := m.goalForm.Goal()
	if err != nil {
		m.status = err.Error()
		return nil
	}
	changes, err := m.tracker.Goals.Set(goal)
	if err != nil {
		logger.Error("Failed to save goals", "error", err)
		m.status = fmt.Sprintf("Failed to save goals: %v", err)
		return nil
	}
	m.status = fmt.Sprintf("Goals updated (%d changed)", len(changes))
	m.refresh()
	return nil
}

func (m *Model) completeOnboarding() {
	settings := storage.LoadSettings(m.store)
	settings.OnboardingCompleted = true
	if err := storage.SaveSettings(m.store, settings); err != nil {
		logger.Warn("Failed to record onboarding", "error", err)
	}
	m.state = constants.StateToday
}
