package insights

import (
	"testing"
	"time"

	"github.com/julianstephens/healthtrack/internal/models"
)

var testNow = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

func newEngine() *Engine {
	return New(WithClock(func() time.Time { return testNow }), WithLocation(time.UTC))
}

func entryOn(daysAgo int) models.HealthEntry {
	return models.NewHealthEntry(testNow.AddDate(0, 0, -daysAgo))
}

func find(insights []models.HealthInsight, title string) (models.HealthInsight, bool) {
	for _, in := range insights {
		if in.Title == title {
			return in, true
		}
	}
	return models.HealthInsight{}, false
}

func TestGenerateWithNoEntries(t *testing.T) {
	got := newEngine().Generate(nil, models.DefaultHealthGoal())

	want := []string{
		"Hydration Needs Attention",
		"Sleep Quality Concern",
		"Step Goal Challenge",
		"Get Back on Track",
	}
	if len(got) != len(want) {
		t.Fatalf("Generate() = %d insights, want %d: %+v", len(got), len(want), got)
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("insight %d = %q, want %q", i, got[i].Title, title)
		}
	}

	step, _ := find(got, "Step Goal Challenge")
	if step.Value != "0 avg steps" {
		t.Errorf("step value = %q", step.Value)
	}
}

func TestGenerateSortedByPriority(t *testing.T) {
	var entries []models.HealthEntry
	for d := 0; d < 7; d++ {
		e := entryOn(d)
		e.Mood = models.MoodVeryHappy
		entries = append(entries, e)
	}

	got := newEngine().Generate(entries, models.DefaultHealthGoal())
	for i := 1; i < len(got); i++ {
		if got[i].Priority > got[i-1].Priority {
			t.Fatalf("insights not sorted by priority at %d: %v after %v", i, got[i].Priority, got[i-1].Priority)
		}
	}
	if _, ok := find(got, "Amazing Consistency!"); !ok {
		t.Error("seven day streak should produce Amazing Consistency!")
	}
	if _, ok := find(got, "Positive Mood Trend"); !ok {
		t.Error("very happy week should produce Positive Mood Trend")
	}
}

func TestStepGoalChallenge(t *testing.T) {
	goal := models.DefaultHealthGoal()
	tests := []struct {
		name     string
		daysHit  int
		wantFire bool
	}{
		{"none", 0, true},
		{"two days", 2, true},
		{"three days", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []models.HealthEntry
			for d := 0; d < 5; d++ {
				e := entryOn(d)
				if d < tt.daysHit {
					e.Steps = goal.Steps
				}
				entries = append(entries, e)
			}
			_, fired := find(newEngine().Generate(entries, goal), "Step Goal Challenge")
			if fired != tt.wantFire {
				t.Errorf("fired = %v, want %v", fired, tt.wantFire)
			}
		})
	}
}

func TestGreatStepProgress(t *testing.T) {
	var entries []models.HealthEntry
	for _, d := range []int{20, 19, 18} {
		e := entryOn(d)
		e.Steps = 2000
		entries = append(entries, e)
	}
	for _, d := range []int{2, 1, 0} {
		e := entryOn(d)
		e.Steps = 8000
		entries = append(entries, e)
	}

	got, ok := find(newEngine().Generate(entries, models.DefaultHealthGoal()), "Great Step Progress!")
	if !ok {
		t.Fatal("expected Great Step Progress!")
	}
	if got.Value != "+3000 steps" {
		t.Errorf("value = %q, want +3000 steps", got.Value)
	}
	if got.Description != "Your weekly average is 60% higher than your monthly average. Keep it up!" {
		t.Errorf("description = %q", got.Description)
	}
	if got.Priority != models.PriorityLow {
		t.Errorf("priority = %v, want low", got.Priority)
	}
}

func TestGreatStepProgressNeedsMonthlyAverage(t *testing.T) {
	_, ok := find(newEngine().Generate([]models.HealthEntry{entryOn(0)}, models.DefaultHealthGoal()), "Great Step Progress!")
	if ok {
		t.Error("a zero monthly average should never report progress")
	}
}

func TestHydrationAndSleepThresholds(t *testing.T) {
	goal := models.DefaultHealthGoal()
	tests := []struct {
		name      string
		water     float64
		sleep     float64
		hydration bool
		sleepy    bool
	}{
		{"both low", 1.0, 5.0, true, true},
		{"at thresholds", goal.WaterIntake * 0.8, goal.SleepHours * 0.85, false, false},
		{"well rested", 3.0, 9.0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entryOn(0)
			e.WaterIntake = tt.water
			e.SleepHours = tt.sleep
			got := newEngine().Generate([]models.HealthEntry{e}, goal)

			if _, ok := find(got, "Hydration Needs Attention"); ok != tt.hydration {
				t.Errorf("hydration fired = %v, want %v", ok, tt.hydration)
			}
			if _, ok := find(got, "Sleep Quality Concern"); ok != tt.sleepy {
				t.Errorf("sleep fired = %v, want %v", ok, tt.sleepy)
			}
		})
	}
}

func TestConsistencyMiddleStreakIsQuiet(t *testing.T) {
	entries := []models.HealthEntry{entryOn(0), entryOn(1), entryOn(2)}
	got := newEngine().Generate(entries, models.DefaultHealthGoal())
	if _, ok := find(got, "Amazing Consistency!"); ok {
		t.Error("3 day streak should not be amazing")
	}
	if _, ok := find(got, "Get Back on Track"); ok {
		t.Error("3 day streak is not broken")
	}
}

func TestMoodInsights(t *testing.T) {
	tests := []struct {
		mood  models.Mood
		title string
		value string
	}{
		{models.MoodSad, "Mood Support Needed", "2.0/5.0"},
		{models.MoodHappy, "Positive Mood Trend", "4.0/5.0"},
		{models.MoodNeutral, "", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			e := entryOn(1)
			e.Mood = tt.mood
			got := newEngine().Generate([]models.HealthEntry{e}, models.DefaultHealthGoal())

			support, supportOK := find(got, "Mood Support Needed")
			positive, positiveOK := find(got, "Positive Mood Trend")
			switch tt.title {
			case "Mood Support Needed":
				if !supportOK || support.Value != tt.value {
					t.Errorf("want support insight %q, got %+v", tt.value, support)
				}
			case "Positive Mood Trend":
				if !positiveOK || positive.Value != tt.value {
					t.Errorf("want positive insight %q, got %+v", tt.value, positive)
				}
			default:
				if supportOK || positiveOK {
					t.Error("neutral mood should produce no mood insight")
				}
			}
		})
	}
}

func TestWeightChange(t *testing.T) {
	tests := []struct {
		name      string
		from, to  float64
		fire      bool
		color     string
		value     string
		direction string
	}{
		{"small change", 80, 81.5, false, "", "", ""},
		{"lost some", 80, 77, true, "blue", "-3.0kg", "lost"},
		{"gained a lot", 80, 86, true, "orange", "+6.0kg", "gained"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := entryOn(20)
			first.Weight = tt.from
			unweighed := entryOn(10)
			last := entryOn(0)
			last.Weight = tt.to

			got, ok := find(newEngine().Generate([]models.HealthEntry{last, unweighed, first}, models.DefaultHealthGoal()), "Weight Change Detected")
			if ok != tt.fire {
				t.Fatalf("fired = %v, want %v", ok, tt.fire)
			}
			if !ok {
				return
			}
			if got.Color != tt.color || got.Value != tt.value {
				t.Errorf("got color %q value %q, want %q %q", got.Color, got.Value, tt.color, tt.value)
			}
			if got.Priority != models.PriorityMedium {
				t.Errorf("priority = %v", got.Priority)
			}
		})
	}
}

func TestWeightIgnoresEntriesOutsideMonth(t *testing.T) {
	old := entryOn(45)
	old.Weight = 100
	recent := entryOn(0)
	recent.Weight = 80

	got := newEngine().Generate([]models.HealthEntry{recent, old}, models.DefaultHealthGoal())
	if _, ok := find(got, "Weight Change Detected"); ok {
		t.Error("a single weighed entry in the month is not a change")
	}
}

func TestHydrationFiresForLowWaterDay(t *testing.T) {
	today := entryOn(0)
	today.Steps = 12000
	today.WaterIntake = 1.0
	today.SleepHours = 7.0
	today.HeartRate = 65
	today.CaloriesBurned = 2600

	got, ok := find(newEngine().Generate([]models.HealthEntry{today}, models.DefaultHealthGoal()), "Hydration Needs Attention")
	if !ok {
		t.Fatal("1.0L against a 2.5L goal should fire hydration")
	}
	if got.Value != "1.0L avg" {
		t.Errorf("value = %q", got.Value)
	}
}
