package postgres

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage"
)

// TestStore_Integration needs a reachable database.
// Example: HEALTHTRACK_TEST_POSTGRES="postgres://tracker@localhost:5432/health_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("HEALTHTRACK_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("HEALTHTRACK_TEST_POSTGRES not set, skipping PostgreSQL integration test")
	}

	store := New(connStr, WithPassword(os.Getenv("HEALTHTRACK_TEST_POSTGRES_PASSWORD")))
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	t.Run("Values", func(t *testing.T) {
		key := "IntegrationTest-" + time.Now().Format("150405.000")
		defer store.Delete(key)

		if _, err := store.Get(key); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Get() error = %v, want ErrNotFound", err)
		}
		if err := store.Set(key, []byte(`{"a":1}`)); err != nil {
			t.Fatalf("Set() failed: %v", err)
		}
		if err := store.Set(key, []byte(`{"a":2}`)); err != nil {
			t.Fatalf("Set() overwrite failed: %v", err)
		}
		got, err := store.Get(key)
		if err != nil {
			t.Fatalf("Get() failed: %v", err)
		}
		if string(got) != `{"a":2}` {
			t.Errorf("Get() = %s, want {\"a\":2}", got)
		}
	})

	t.Run("Settings", func(t *testing.T) {
		want := models.Settings{Theme: constants.ThemeDark, OnboardingCompleted: true, Timezone: "UTC"}
		if err := storage.SaveSettings(store, want); err != nil {
			t.Fatalf("SaveSettings() failed: %v", err)
		}
		if got := storage.LoadSettings(store); got != want {
			t.Errorf("LoadSettings() = %+v, want %+v", got, want)
		}
	})

	t.Run("UnlockHistory", func(t *testing.T) {
		ev := storage.UnlockEvent{AchievementID: "first-steps", Title: "First Steps", UnlockedAt: time.Now().UTC().Truncate(time.Second)}
		if err := store.RecordUnlock(ev); err != nil {
			t.Fatalf("RecordUnlock() failed: %v", err)
		}
		history, err := store.UnlockHistory()
		if err != nil {
			t.Fatalf("UnlockHistory() failed: %v", err)
		}
		found := false
		for _, h := range history {
			if h.AchievementID == ev.AchievementID && h.UnlockedAt.Equal(ev.UnlockedAt) {
				found = true
			}
		}
		if !found {
			t.Errorf("recorded unlock missing from history")
		}
	})

	t.Run("Migrations", func(t *testing.T) {
		st, err := store.MigrationStatus(t.Context())
		if err != nil {
			t.Fatalf("MigrationStatus() failed: %v", err)
		}
		if len(st.Pending) != 0 {
			t.Errorf("expected no pending migrations, got %d", len(st.Pending))
		}
	})
}
