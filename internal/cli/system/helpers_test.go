package system

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/config"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage/sqlite"
)

var testNow = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

func newTestContext(t *testing.T) (*cli.Context, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return &cli.Context{
		Store:  store,
		Config: &config.Config{Timezone: "UTC"},
		Target: dbPath,
		Clock:  func() time.Time { return testNow },
	}, dbPath
}

func seedEntry(t *testing.T, ctx *cli.Context, daysAgo int, mutate func(*models.HealthEntry)) models.HealthEntry {
	t.Helper()
	e := models.NewHealthEntry(testNow.AddDate(0, 0, -daysAgo))
	mutate(&e)
	if err := ctx.Tracker().Entries.AddOrReplace(e); err != nil {
		t.Fatalf("AddOrReplace() failed: %v", err)
	}
	return e
}
