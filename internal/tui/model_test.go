package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/healthtrack/internal/achievements"
	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/input"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/tracker"
)

var testNow = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, onboarded bool) (Model, *storage.MemoryStore) {
	t.Helper()
	p := storage.NewMemoryStore()
	if onboarded {
		if err := storage.SaveSettings(p, models.Settings{Theme: constants.ThemeDark, OnboardingCompleted: true}); err != nil {
			t.Fatal(err)
		}
	}
	tr := tracker.New(p,
		tracker.WithClock(func() time.Time { return testNow }),
		tracker.WithLocation(time.UTC),
	)
	return NewModel(tr, p, achievements.NewCelebration(time.Minute)), p
}

func press(m Model, keys string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return updated.(Model)
}

func TestOnboardingShownOnce(t *testing.T) {
	m, p := newTestModel(t, false)
	if m.state != constants.StateOnboarding {
		t.Fatalf("state = %v, want onboarding", m.state)
	}
	if !strings.Contains(m.View(), "Welcome to healthtrack") {
		t.Error("onboarding view missing welcome text")
	}

	m = press(m, "x")
	if m.state != constants.StateToday {
		t.Errorf("state after key = %v, want today", m.state)
	}
	if !storage.LoadSettings(p).OnboardingCompleted {
		t.Error("onboarding should be recorded")
	}
}

func TestTabCycling(t *testing.T) {
	m, _ := newTestModel(t, true)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.state != constants.StateInsights {
		t.Errorf("after tab state = %v, want insights", m.state)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if m.state != constants.StateTrends {
		t.Errorf("shift+tab from today should wrap to trends, got %v", m.state)
	}
}

func TestTrendsKeysCycle(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.state = constants.StateTrends

	m = press(m, "m")
	if m.metricIdx != 1 {
		t.Errorf("metricIdx = %d, want 1", m.metricIdx)
	}
	m = press(m, "r")
	m = press(m, "r")
	m = press(m, "r")
	if m.rangeIdx != 0 {
		t.Errorf("rangeIdx = %d, want wrap to 0", m.rangeIdx)
	}

	// metric key outside trends does nothing
	m.state = constants.StateToday
	m = press(m, "m")
	if m.metricIdx != 1 {
		t.Errorf("metric changed outside trends: %d", m.metricIdx)
	}
}

func TestLogKeyOpensPrefilledForm(t *testing.T) {
	m, _ := newTestModel(t, true)
	if _, err := m.tracker.Save(t.Context(), input.Form{Steps: "4200"}); err != nil {
		t.Fatal(err)
	}

	m = press(m, "l")
	if m.state != constants.StateLogEntry {
		t.Fatalf("state = %v, want log entry", m.state)
	}
	if m.logForm.Steps != "4200" {
		t.Errorf("form steps = %q, want prefilled 4200", m.logForm.Steps)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.state != constants.StateToday {
		t.Errorf("esc should return to today, got %v", m.state)
	}
}

func TestSaveEntryStartsCelebration(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.previousState = constants.StateToday
	m.logForm = &input.Form{Steps: "12000", Water: "1.0", Sleep: "7", HeartRate: "65", Calories: "2600"}

	cmd := m.saveEntry()
	if cmd == nil {
		t.Fatal("expected a dismissal tick after unlocks")
	}
	if !strings.Contains(m.status, "Saved") {
		t.Errorf("status = %q", m.status)
	}
	if got := len(m.celebration.Active()); got != 3 {
		t.Fatalf("banner shows %d achievements, want 3", got)
	}
	if !strings.Contains(m.View(), "Achievements Unlocked!") {
		t.Error("banner missing from view")
	}

	// a stale generation leaves the banner up
	updated, _ := m.Update(celebrationDoneMsg{gen: 0})
	m = updated.(Model)
	if len(m.celebration.Active()) == 0 {
		t.Error("stale dismissal cleared the banner")
	}

	updated, _ = m.Update(celebrationDoneMsg{gen: 1})
	m = updated.(Model)
	if len(m.celebration.Active()) != 0 {
		t.Error("current dismissal should clear the banner")
	}
	if len(m.tracker.Achievements.RecentlyUnlocked()) != 0 {
		t.Error("recently unlocked should be cleared with the banner")
	}
}

func TestSaveEntryRequiresAMetric(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.previousState = constants.StateToday
	m.state = constants.StateLogEntry
	m.logForm = &input.Form{Mood: string(models.MoodHappy)}

	m.saveEntry()
	if m.state != constants.StateLogEntry {
		t.Errorf("state = %v, want to stay in the form", m.state)
	}
	if m.formError != input.ErrNothingEntered.Error() {
		t.Errorf("formError = %q", m.formError)
	}
	if _, ok := m.tracker.Entries.Today(); ok {
		t.Error("nothing should be saved")
	}
}

func TestSaveGoals(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.previousState = constants.StateToday
	m.goalForm = goalFormFrom(models.DefaultHealthGoal())
	m.goalForm.Steps = "12000"

	m.saveGoals()
	if got := m.tracker.Goals.Get().Steps; got != 12000 {
		t.Errorf("steps goal = %d, want 12000", got)
	}
	if m.status != "Goals updated (1 changed)" {
		t.Errorf("status = %q", m.status)
	}
}

func TestGoalFormRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		edit func(*GoalFormModel)
	}{
		{"negative steps", func(f *GoalFormModel) { f.Steps = "-1" }},
		{"fractional calories", func(f *GoalFormModel) { f.Calories = "10.5" }},
		{"text water", func(f *GoalFormModel) { f.Water = "lots" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := goalFormFrom(models.DefaultHealthGoal())
			tt.edit(f)
			if _, err := f.Goal(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDismissKeyStopsBanner(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.celebration.Begin([]models.Achievement{{Title: "First Steps", Icon: "⭐"}})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if len(m.celebration.Active()) != 0 {
		t.Error("enter should dismiss the banner")
	}
}
