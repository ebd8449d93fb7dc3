package cli

import (
	"errors"
	"time"

	"github.com/julianstephens/healthtrack/internal/backup"
	"github.com/julianstephens/healthtrack/internal/config"
	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/logger"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/tracker"
	"github.com/julianstephens/healthtrack/internal/utils"
)

// Context is handed to every command's Run method
type Context struct {
	Store  storage.Provider
	Config *config.Config
	// Target is the database path or connection string Store was opened from
	Target   string
	Clock    utils.Clock
	Notifier tracker.UnlockNotifier

	tracker *tracker.Tracker
	loc     *time.Location
}

// Location decides calendar days: the configured timezone wins over the
// stored setting, and anything unreadable falls back to local time.
func (c *Context) Location() *time.Location {
	if c.loc != nil {
		return c.loc
	}

	tz := ""
	if c.Config != nil {
		tz = string(c.Config.Timezone)
	}
	if tz == "" && c.Store != nil {
		tz = storage.LoadSettings(c.Store).Timezone
	}

	loc, err := utils.LoadLocation(tz)
	if err != nil {
		logger.Warn("Invalid timezone, using local time", "timezone", tz, "error", err)
		loc = time.Local
	}
	c.loc = loc
	return loc
}

// Now is the context clock in the user's timezone
func (c *Context) Now() time.Time {
	return c.Clock.Now().In(c.Location())
}

// Tracker builds the service graph on first use
func (c *Context) Tracker() *tracker.Tracker {
	if c.tracker == nil {
		opts := []tracker.Option{
			tracker.WithClock(c.Clock),
			tracker.WithLocation(c.Location()),
		}
		if c.Notifier != nil {
			opts = append(opts, tracker.WithNotifier(c.Notifier))
		}
		c.tracker = tracker.New(c.Store, opts...)
	}
	return c.tracker
}

// Celebration is how long unlock banners stay up
func (c *Context) Celebration() time.Duration {
	if c.Config == nil {
		return constants.DefaultCelebrationSeconds * time.Second
	}
	return c.Config.Celebration()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if IsPostgres(c.Target) {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		if errors.Is(err, backup.ErrNoDatabase) {
			return
		}
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
