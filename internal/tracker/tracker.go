// Package tracker wires the health services together and runs the save flow.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/healthtrack/internal/achievements"
	"github.com/julianstephens/healthtrack/internal/entries"
	"github.com/julianstephens/healthtrack/internal/goals"
	"github.com/julianstephens/healthtrack/internal/input"
	"github.com/julianstephens/healthtrack/internal/insights"
	"github.com/julianstephens/healthtrack/internal/logger"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/notifier"
	"github.com/julianstephens/healthtrack/internal/progress"
	"github.com/julianstephens/healthtrack/internal/stats"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/utils"
)

// UnlockNotifier is told about each newly unlocked achievement
type UnlockNotifier interface {
	NotifyUnlock(ctx context.Context, a models.Achievement) error
}

// Tracker owns one instance of every service over a single provider
type Tracker struct {
	Entries      *entries.Repository
	Goals        *goals.Store
	Achievements *achievements.Engine
	Insights     *insights.Engine

	notifier UnlockNotifier
	clock    utils.Clock
	loc      *time.Location
}

// SaveResult is everything a caller shows after a save
type SaveResult struct {
	Entry    models.HealthEntry
	Progress progress.Progress
	Unlocked []models.Achievement
	Insights []models.HealthInsight
}

type Option func(*Tracker)

func WithClock(clock utils.Clock) Option {
	return func(t *Tracker) {
		t.clock = clock
	}
}

func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithNotifier sends unlocks to n. Nil disables notifications.
func WithNotifier(n UnlockNotifier) Option {
	return func(t *Tracker) {
		t.notifier = n
	}
}

func New(p storage.Provider, opts ...Option) *Tracker {
	t := &Tracker{loc: time.Local}
	for _, opt := range opts {
		opt(t)
	}

	t.Entries = entries.New(p, entries.WithClock(t.clock), entries.WithLocation(t.loc))
	t.Goals = goals.New(p)
	t.Achievements = achievements.New(p, achievements.WithClock(t.clock), achievements.WithLocation(t.loc))
	t.Insights = insights.New(insights.WithClock(t.clock), insights.WithLocation(t.loc))
	return t
}

// Now is the tracker clock in its location
func (t *Tracker) Now() time.Time {
	return t.clock.Now().In(t.loc)
}

func (t *Tracker) Location() *time.Location {
	return t.loc
}

// Save parses form as today's entry and runs the save flow
func (t *Tracker) Save(ctx context.Context, form input.Form) (SaveResult, error) {
	entry, err := input.ParseForm(form, t.Now())
	if err != nil {
		return SaveResult{}, err
	}
	return t.SaveEntry(ctx, entry)
}

// SaveEntry stores entry, replacing its day, then checks achievements,
// notifies each unlock and regenerates insights.
func (t *Tracker) SaveEntry(ctx context.Context, entry models.HealthEntry) (SaveResult, error) {
	if err := t.Entries.AddOrReplace(entry); err != nil {
		return SaveResult{}, fmt.Errorf("save entry: %w", err)
	}

	all := t.Entries.All()
	goal := t.Goals.Get()
	result := SaveResult{
		Entry:    entry,
		Progress: progress.Calculate(entry, goal),
	}

	unlocked, err := t.Achievements.Check(all, goal)
	result.Unlocked = unlocked
	if err != nil {
		return result, fmt.Errorf("save achievements: %w", err)
	}
	t.notify(ctx, unlocked)

	result.Insights = t.Insights.Generate(all, goal)
	return result, nil
}

func (t *Tracker) notify(ctx context.Context, unlocked []models.Achievement) {
	if t.notifier == nil {
		return
	}
	for _, a := range unlocked {
		err := t.notifier.NotifyUnlock(ctx, a)
		switch {
		case err == nil:
		case errors.Is(err, notifier.ErrTrayNotRunning):
			logger.Debug("Tray not running, skipping notification", "achievement", a.ID)
		default:
			logger.Warn("Failed to send unlock notification", "achievement", a.ID, "error", err)
		}
	}
}

// TodayProgress scores today's entry, or zero progress when none exists
func (t *Tracker) TodayProgress() (progress.Progress, bool) {
	today, ok := t.Entries.Today()
	if !ok {
		return progress.Progress{}, false
	}
	return progress.Calculate(today, t.Goals.Get()), true
}

func (t *Tracker) CurrentInsights() []models.HealthInsight {
	return t.Insights.Generate(t.Entries.All(), t.Goals.Get())
}

func (t *Tracker) Summary(rangeDays int) stats.Summary {
	return stats.Summarize(t.Entries.All(), t.Goals.Get(), rangeDays, t.Now(), t.loc)
}

func (t *Tracker) Chart(metric models.Metric, rangeDays int) stats.ChartStats {
	return stats.Chart(t.Entries.All(), metric, rangeDays, t.Now())
}
