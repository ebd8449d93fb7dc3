// Package achievements evaluates and stores unlockable milestones.
package achievements

import (
	"time"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/logger"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/stats"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/utils"
)

// Engine owns the achievement list. Unlocks are one way: nothing here
// relocks an achievement. Not safe for concurrent use.
type Engine struct {
	provider     storage.Provider
	record       storage.Record[[]models.Achievement]
	achievements []models.Achievement
	recent       []models.Achievement
	clock        utils.Clock
	loc          *time.Location
}

type Option func(*Engine)

func WithClock(clock utils.Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// New loads saved unlock state merged over the defaults
func New(p storage.Provider, opts ...Option) *Engine {
	e := &Engine{
		provider: p,
		record:   storage.NewRecord[[]models.Achievement](p, constants.KeyAchievements),
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.achievements = Merge(Defaults(), e.record.Load(nil))
	return e
}

// Check unlocks every locked achievement that today's entry satisfies and
// returns the newly unlocked ones. The list is persisted only when something
// changed.
func (e *Engine) Check(entries []models.HealthEntry, goal models.HealthGoal) ([]models.Achievement, error) {
	now := e.clock.Now().In(e.loc)

	today, ok := todaysEntry(entries, now, e.loc)
	if !ok {
		return nil, nil
	}
	streak := stats.Streak(entries, now, e.loc)

	var unlocked []models.Achievement
	for i := range e.achievements {
		a := &e.achievements[i]
		if a.IsUnlocked || !Met(a.Requirement, today, streak, goal) {
			continue
		}
		stamp := now
		a.IsUnlocked = true
		a.DateUnlocked = &stamp
		unlocked = append(unlocked, *a)
		logger.Info("Achievement unlocked", "id", a.ID, "title", a.Title)
	}

	if len(unlocked) == 0 {
		return nil, nil
	}
	e.recent = append(e.recent, unlocked...)
	if err := e.record.Save(e.achievements); err != nil {
		return unlocked, err
	}

	// History is an audit trail; losing a row does not undo the unlock.
	for _, a := range unlocked {
		ev := storage.UnlockEvent{AchievementID: a.ID, Title: a.Title, UnlockedAt: *a.DateUnlocked}
		if err := storage.RecordUnlock(e.provider, ev); err != nil {
			logger.Warn("Failed to record unlock history", "id", a.ID, "error", err)
		}
	}
	return unlocked, nil
}

// History returns the recorded unlock events, oldest first
func (e *Engine) History() ([]storage.UnlockEvent, error) {
	return storage.UnlockHistory(e.provider)
}

func todaysEntry(entries []models.HealthEntry, now time.Time, loc *time.Location) (models.HealthEntry, bool) {
	for _, entry := range entries {
		if utils.SameDay(entry.Date, now, loc) {
			return entry, true
		}
	}
	return models.HealthEntry{}, false
}

// Met evaluates one requirement against today's entry. Perfect day checks
// steps, water and sleep only.
func Met(r models.Requirement, today models.HealthEntry, streak int, goal models.HealthGoal) bool {
	switch r.Kind {
	case models.RequirementSteps:
		return float64(today.Steps) >= r.Target
	case models.RequirementWater:
		return today.WaterIntake >= r.Target
	case models.RequirementSleep:
		return today.SleepHours >= r.Target
	case models.RequirementHeartRate:
		return today.HeartRate > 0 && float64(today.HeartRate) <= r.Target
	case models.RequirementCalories:
		return float64(today.CaloriesBurned) >= r.Target
	case models.RequirementConsecutiveDays:
		return float64(streak) >= r.Target
	case models.RequirementPerfectDay:
		return today.Steps >= goal.Steps &&
			today.WaterIntake >= goal.WaterIntake &&
			today.SleepHours >= goal.SleepHours
	default:
		return false
	}
}

// All returns a copy of every achievement in definition order
func (e *Engine) All() []models.Achievement {
	out := make([]models.Achievement, len(e.achievements))
	copy(out, e.achievements)
	return out
}

func (e *Engine) Unlocked() []models.Achievement {
	var out []models.Achievement
	for _, a := range e.achievements {
		if a.IsUnlocked {
			out = append(out, a)
		}
	}
	return out
}

func (e *Engine) Locked() []models.Achievement {
	var out []models.Achievement
	for _, a := range e.achievements {
		if !a.IsUnlocked {
			out = append(out, a)
		}
	}
	return out
}

// Progress is the unlocked fraction of all achievements
func (e *Engine) Progress() float64 {
	if len(e.achievements) == 0 {
		return 0
	}
	return float64(len(e.Unlocked())) / float64(len(e.achievements))
}

// RecentlyUnlocked returns unlocks not yet acknowledged by the UI
func (e *Engine) RecentlyUnlocked() []models.Achievement {
	out := make([]models.Achievement, len(e.recent))
	copy(out, e.recent)
	return out
}

func (e *Engine) ClearRecentlyUnlocked() {
	e.recent = nil
}
