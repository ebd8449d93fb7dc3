// Package entries owns the collection of daily health entries.
package entries

import (
	"sort"
	"time"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/logger"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/stats"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/utils"
)

// Repository keeps at most one entry per calendar day, newest first, and
// writes the whole collection on every change. Not safe for concurrent use.
type Repository struct {
	record  storage.Record[[]models.HealthEntry]
	entries []models.HealthEntry
	clock   utils.Clock
	loc     *time.Location
}

type Option func(*Repository)

func WithClock(clock utils.Clock) Option {
	return func(r *Repository) {
		r.clock = clock
	}
}

// WithLocation sets the timezone that decides calendar days
func WithLocation(loc *time.Location) Option {
	return func(r *Repository) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// New loads the stored entries. Missing or malformed data starts empty.
func New(p storage.Provider, opts ...Option) *Repository {
	r := &Repository{
		record: storage.NewRecord[[]models.HealthEntry](p, constants.KeyEntries),
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.entries = r.record.Load(nil)
	r.sort()
	logger.Debug("Loaded entries", "count", len(r.entries))
	return r
}

func (r *Repository) now() time.Time {
	return r.clock.Now().In(r.loc)
}

// Location returns the timezone used for day boundaries
func (r *Repository) Location() *time.Location {
	return r.loc
}

func (r *Repository) sort() {
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Date.After(r.entries[j].Date)
	})
}

// AddOrReplace stores entry, replacing any entry on the same calendar day
// in place, then persists. The in-memory collection keeps the change even
// when the write fails.
func (r *Repository) AddOrReplace(entry models.HealthEntry) error {
	replaced := false
	for i, existing := range r.entries {
		if utils.SameDay(existing.Date, entry.Date, r.loc) {
			r.entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		r.entries = append(r.entries, entry)
	}
	r.sort()

	logger.Debug("Saved entry", "id", entry.ID, "day", utils.DayKey(entry.Date, r.loc), "replaced", replaced)
	return r.record.Save(r.entries)
}

// Delete removes the entry with id. An unknown id is not an error.
func (r *Repository) Delete(id string) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			logger.Debug("Deleted entry", "id", id)
			break
		}
	}
	return r.record.Save(r.entries)
}

// Get finds an entry by id
func (r *Repository) Get(id string) (models.HealthEntry, bool) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.HealthEntry{}, false
}

// OnDay returns the entry on day's calendar day
func (r *Repository) OnDay(day time.Time) (models.HealthEntry, bool) {
	for _, e := range r.entries {
		if utils.SameDay(e.Date, day, r.loc) {
			return e, true
		}
	}
	return models.HealthEntry{}, false
}

// Today returns the entry for the current calendar day
func (r *Repository) Today() (models.HealthEntry, bool) {
	return r.OnDay(r.now())
}

// Recent returns entries from the last windowDays up to now, oldest first
func (r *Repository) Recent(windowDays int) []models.HealthEntry {
	return stats.Within(r.entries, windowDays, r.now())
}

// All returns a copy of every entry, newest first
func (r *Repository) All() []models.HealthEntry {
	out := make([]models.HealthEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Streak counts consecutive logged days ending today
func (r *Repository) Streak() int {
	return stats.Streak(r.entries, r.now(), r.loc)
}

// Now is the repository clock in its location
func (r *Repository) Now() time.Time {
	return r.now()
}

// ReplaceAll swaps in a repaired or imported collection. Later entries win
// when two share a calendar day.
func (r *Repository) ReplaceAll(entries []models.HealthEntry) error {
	r.entries = nil
	for _, e := range entries {
		replaced := false
		for i, existing := range r.entries {
			if utils.SameDay(existing.Date, e.Date, r.loc) {
				r.entries[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			r.entries = append(r.entries, e)
		}
	}
	r.sort()
	return r.record.Save(r.entries)
}
