package sqlite

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/healthtrack/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestGetSetDelete(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.Get("HealthGoals"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	if err := store.Set("HealthGoals", []byte(`{"daily_steps":8000}`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("HealthGoals", []byte(`{"daily_steps":12000}`)); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	got, err := store.Get("HealthGoals")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != `{"daily_steps":12000}` {
		t.Errorf("Get() = %s, want the overwritten value", got)
	}

	if err := store.Delete("HealthGoals"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := store.Get("HealthGoals"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
}

func TestSetRejectsInvalidJSON(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Set("HealthEntries", []byte("not json")); !errors.Is(err, storage.ErrInvalidValue) {
		t.Errorf("Set() error = %v, want ErrInvalidValue", err)
	}
}

func TestKeysSorted(t *testing.T) {
	store := setupTestStore(t)
	for _, key := range []string{"HealthGoals", "Achievements", "HealthEntries"} {
		if err := store.Set(key, []byte(`[]`)); err != nil {
			t.Fatalf("Set(%s) failed: %v", key, err)
		}
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	want := []string{"Achievements", "HealthEntries", "HealthGoals"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := store.Set("AppTheme", []byte(`"dark"`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("AppTheme")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != `"dark"` {
		t.Errorf("Get() = %s, want \"dark\"", got)
	}
}

func TestMigrationStatusAfterInit(t *testing.T) {
	store := setupTestStore(t)
	st, err := store.MigrationStatus(t.Context())
	if err != nil {
		t.Fatalf("MigrationStatus() failed: %v", err)
	}
	if len(st.Pending) != 0 || st.Current != st.Latest {
		t.Errorf("expected fully migrated database, got %+v", st)
	}
}

func TestUnlockHistory(t *testing.T) {
	store := setupTestStore(t)
	first := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(26 * time.Hour)

	events := []storage.UnlockEvent{
		{AchievementID: "step-master", Title: "Step Master", UnlockedAt: second},
		{AchievementID: "first-steps", Title: "First Steps", UnlockedAt: first},
	}
	for _, ev := range events {
		if err := store.RecordUnlock(ev); err != nil {
			t.Fatalf("RecordUnlock() failed: %v", err)
		}
	}
	// duplicates are ignored
	if err := store.RecordUnlock(events[0]); err != nil {
		t.Fatalf("RecordUnlock() duplicate failed: %v", err)
	}

	history, err := store.UnlockHistory()
	if err != nil {
		t.Fatalf("UnlockHistory() failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 events, got %d", len(history))
	}
	if history[0].AchievementID != "first-steps" || !history[0].UnlockedAt.Equal(first) {
		t.Errorf("history[0] = %+v, want first-steps at %v", history[0], first)
	}
	if history[1].Title != "Step Master" {
		t.Errorf("history[1].Title = %q, want Step Master", history[1].Title)
	}
}

func TestCopyToJSONStore(t *testing.T) {
	src := setupTestStore(t)
	if err := src.Set("HealthGoals", []byte(`{"daily_steps":9000}`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	ev := storage.UnlockEvent{AchievementID: "first-steps", Title: "First Steps", UnlockedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	if err := src.RecordUnlock(ev); err != nil {
		t.Fatalf("RecordUnlock() failed: %v", err)
	}

	dst := storage.NewJSONStore(filepath.Join(t.TempDir(), "export.json"))
	if err := dst.Init(); err != nil {
		t.Fatalf("JSONStore.Init() failed: %v", err)
	}

	copied, err := storage.Copy(dst, src)
	if err != nil {
		t.Fatalf("Copy() failed: %v", err)
	}
	if copied != 1 {
		t.Errorf("Copy() = %d, want 1", copied)
	}

	history, err := storage.UnlockHistory(dst)
	if err != nil {
		t.Fatalf("UnlockHistory() failed: %v", err)
	}
	if len(history) != 1 || history[0].AchievementID != "first-steps" {
		t.Errorf("history = %+v, want the copied unlock", history)
	}
}
