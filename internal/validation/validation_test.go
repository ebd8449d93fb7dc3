package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/healthtrack/internal/models"
)

var testNow = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

func newValidator() *Validator {
	return New(WithClock(func() time.Time { return testNow }), WithLocation(time.UTC))
}

func entry(id string, at time.Time) models.HealthEntry {
	return models.HealthEntry{ID: id, Date: at, Mood: models.MoodNeutral}
}

func hasConflict(result ValidationResult, kind ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == kind {
			return true
		}
	}
	return false
}

func TestValidateEntries_Clean(t *testing.T) {
	entries := []models.HealthEntry{
		entry("a", testNow),
		entry("b", testNow.AddDate(0, 0, -1)),
	}

	result := newValidator().ValidateEntries(entries)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got %s", result.FormatReport())
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", result.FormatReport())
	}
}

func TestValidateEntries_DuplicateDay(t *testing.T) {
	entries := []models.HealthEntry{
		entry("a", time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)),
		entry("b", time.Date(2025, 3, 14, 22, 0, 0, 0, time.UTC)),
	}

	result := newValidator().ValidateEntries(entries)
	if !hasConflict(result, ConflictDuplicateDay) {
		t.Fatal("expected duplicate day conflict")
	}
	c := result.Conflicts[0]
	if c.Date != "2025-03-14" || len(c.EntryIDs) != 2 {
		t.Errorf("unexpected conflict %+v", c)
	}
}

func TestValidateEntries_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.HealthEntry)
		want   ConflictType
	}{
		{"negative steps", func(e *models.HealthEntry) { e.Steps = -5 }, ConflictNegativeValue},
		{"negative water", func(e *models.HealthEntry) { e.WaterIntake = -0.5 }, ConflictNegativeValue},
		{"negative weight", func(e *models.HealthEntry) { e.Weight = -1 }, ConflictNegativeValue},
		{"unknown mood", func(e *models.HealthEntry) { e.Mood = "ecstatic" }, ConflictInvalidMood},
		{"future", func(e *models.HealthEntry) { e.Date = testNow.AddDate(0, 0, 2) }, ConflictFutureDate},
		{"missing id", func(e *models.HealthEntry) { e.ID = "" }, ConflictMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entry("x", testNow)
			tt.modify(&e)
			result := newValidator().ValidateEntries([]models.HealthEntry{e})
			if !hasConflict(result, tt.want) {
				t.Errorf("expected %s, got %s", tt.want, result.FormatReport())
			}
		})
	}
}

func TestValidateEntries_LaterTodayIsNotFuture(t *testing.T) {
	e := entry("x", time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC))
	result := newValidator().ValidateEntries([]models.HealthEntry{e})
	if hasConflict(result, ConflictFutureDate) {
		t.Error("an entry later today is not in the future")
	}
}

func TestFix(t *testing.T) {
	early := entry("early", time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC))
	late := entry("late", time.Date(2025, 3, 14, 21, 0, 0, 0, time.UTC))
	late.Steps = -10
	late.Mood = "grumpy"
	today := entry("today", testNow)
	today.WaterIntake = 2

	fixed, actions := newValidator().Fix([]models.HealthEntry{early, late, today})

	if len(fixed) != 2 {
		t.Fatalf("Fix() kept %d entries, want 2", len(fixed))
	}
	if fixed[0].ID != "today" || fixed[1].ID != "late" {
		t.Errorf("Fix() order = %s, %s", fixed[0].ID, fixed[1].ID)
	}
	if fixed[1].Steps != 0 || fixed[1].Mood != models.MoodNeutral {
		t.Errorf("late entry not repaired: %+v", fixed[1])
	}
	if len(actions) != 3 {
		t.Errorf("Fix() reported %d actions, want 3", len(actions))
	}

	result := newValidator().ValidateEntries(fixed)
	if result.HasConflicts() {
		t.Errorf("fixed entries still conflict: %s", result.FormatReport())
	}
}

func TestStruct(t *testing.T) {
	v := newValidator()
	e := entry("x", testNow)
	if err := v.Struct(e); err != nil {
		t.Fatalf("Struct() on valid entry failed: %v", err)
	}

	e.HeartRate = -1
	err := v.Struct(e)
	if err == nil {
		t.Fatal("expected error for negative heart rate")
	}
	if !strings.HasPrefix(err.Error(), "HeartRate:") {
		t.Errorf("error should name the field, got %q", err.Error())
	}
}
