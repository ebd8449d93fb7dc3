package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateDay  ConflictType = "duplicate_day"
	ConflictNegativeValue ConflictType = "negative_value"
	ConflictFutureDate    ConflictType = "future_date"
	ConflictInvalidMood   ConflictType = "invalid_mood"
	ConflictMissingID     ConflictType = "missing_entry_id"
)

// Conflict represents a detected problem in the stored entries
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Field       string   // offending field (if applicable)
	EntryIDs    []string // IDs of entries involved (for auto-fixing)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string   // Human-readable description of the action
	SourceConflict Conflict // The conflict that triggered this fix action
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks entries against the record rules
type Validator struct {
	validate *validator.Validate
	clock    utils.Clock
	loc      *time.Location
}

type Option func(*Validator)

func WithClock(clock utils.Clock) Option {
	return func(v *Validator) {
		v.clock = clock
	}
}

func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// New creates a new Validator
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: NewStructValidator(),
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewStructValidator returns a validator with the "mood" tag registered
func NewStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return models.Mood(fl.Field().String()).IsValid()
	})
	return v
}

// Struct validates i and reduces a failure to its first field error
func (v *Validator) Struct(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return err
		}
		return fmt.Errorf("%s: %s", errs[0].Field(), errs[0].Error())
	}
	return nil
}

// ValidateEntries reports duplicate days, field violations and entries dated
// after today.
func (v *Validator) ValidateEntries(entries []models.HealthEntry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	byDay := make(map[string][]string)
	for _, e := range entries {
		day := utils.DayKey(e.Date, v.loc)
		byDay[day] = append(byDay[day], e.ID)
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if ids := byDay[day]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateDay,
				Description: fmt.Sprintf("%d entries on %s (IDs: %v)", len(ids), day, ids),
				Date:        day,
				EntryIDs:    ids,
			})
		}
	}

	today := utils.StartOfDay(v.clock.Now(), v.loc)
	for _, e := range entries {
		day := utils.DayKey(e.Date, v.loc)

		if e.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingID,
				Description: fmt.Sprintf("Entry on %s has no ID", day),
				Date:        day,
			})
		}

		if utils.StartOfDay(e.Date, v.loc).After(today) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFutureDate,
				Description: fmt.Sprintf("Entry %s is dated in the future (%s)", e.ID, day),
				Date:        day,
				EntryIDs:    []string{e.ID},
			})
		}

		result.Conflicts = append(result.Conflicts, v.fieldConflicts(e, day)...)
	}

	return result
}

func (v *Validator) fieldConflicts(e models.HealthEntry, day string) []Conflict {
	err := v.validate.Struct(e)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	var out []Conflict
	for _, fe := range errs {
		c := Conflict{
			Date:     day,
			Field:    fe.Field(),
			EntryIDs: []string{e.ID},
		}
		switch fe.Tag() {
		case "mood":
			c.Type = ConflictInvalidMood
			c.Description = fmt.Sprintf("Entry on %s has an unknown mood %q", day, fe.Value())
		default:
			c.Type = ConflictNegativeValue
			c.Description = fmt.Sprintf("Entry on %s has a negative %s (%v)", day, fe.Field(), fe.Value())
		}
		out = append(out, c)
	}
	return out
}

// Fix repairs what it safely can: duplicate days keep the latest entry,
// negative values become 0 and unknown moods become neutral. Future-dated
// entries are left for the user.
func (v *Validator) Fix(entries []models.HealthEntry) ([]models.HealthEntry, []FixAction) {
	var actions []FixAction

	latest := make(map[string]int)
	for i, e := range entries {
		day := utils.DayKey(e.Date, v.loc)
		j, seen := latest[day]
		if !seen || e.Date.After(entries[j].Date) {
			latest[day] = i
		}
	}

	fixed := make([]models.HealthEntry, 0, len(latest))
	for i, e := range entries {
		day := utils.DayKey(e.Date, v.loc)
		if latest[day] != i {
			actions = append(actions, FixAction{
				Action: fmt.Sprintf("Removed duplicate entry %s on %s", e.ID, day),
				SourceConflict: Conflict{
					Type:     ConflictDuplicateDay,
					Date:     day,
					EntryIDs: []string{e.ID, entries[latest[day]].ID},
				},
			})
			continue
		}

		for _, c := range v.fieldConflicts(e, day) {
			switch c.Type {
			case ConflictInvalidMood:
				e.Mood = models.MoodNeutral
				actions = append(actions, FixAction{Action: fmt.Sprintf("Reset mood on %s to neutral", day), SourceConflict: c})
			case ConflictNegativeValue:
				clampField(&e, c.Field)
				actions = append(actions, FixAction{Action: fmt.Sprintf("Set %s on %s to 0", c.Field, day), SourceConflict: c})
			}
		}
		fixed = append(fixed, e)
	}

	sort.SliceStable(fixed, func(i, j int) bool {
		return fixed[i].Date.After(fixed[j].Date)
	})
	return fixed, actions
}

// clampField zeroes a negative field, named as the validator reports it
func clampField(e *models.HealthEntry, field string) {
	switch field {
	case "Steps":
		e.Steps = 0
	case "WaterIntake":
		e.WaterIntake = 0
	case "SleepHours":
		e.SleepHours = 0
	case "HeartRate":
		e.HeartRate = 0
	case "CaloriesBurned":
		e.CaloriesBurned = 0
	case "Weight":
		e.Weight = 0
	}
}
