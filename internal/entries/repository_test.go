package entries

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage"
)

var testNow = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newRepo(t *testing.T, p storage.Provider) *Repository {
	t.Helper()
	return New(p, WithClock(fixedClock), WithLocation(time.UTC))
}

func entryAt(at time.Time, steps int) models.HealthEntry {
	e := models.NewHealthEntry(at)
	e.Steps = steps
	return e
}

func TestAddOrReplaceKeepsOnePerDay(t *testing.T) {
	repo := newRepo(t, storage.NewMemoryStore())

	morning := entryAt(time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC), 1000)
	evening := entryAt(time.Date(2025, 3, 15, 21, 30, 0, 0, time.UTC), 9000)
	yesterday := entryAt(time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC), 5000)

	for _, e := range []models.HealthEntry{morning, yesterday, evening} {
		if err := repo.AddOrReplace(e); err != nil {
			t.Fatalf("AddOrReplace() failed: %v", err)
		}
	}

	all := repo.All()
	if len(all) != 2 {
		t.Fatalf("All() = %d entries, want 2", len(all))
	}
	if all[0].ID != evening.ID {
		t.Errorf("today's entry should be the replacement, got steps %d", all[0].Steps)
	}
	if all[1].ID != yesterday.ID {
		t.Errorf("All() should be newest first")
	}
}

func TestAddOrReplaceSortsDescending(t *testing.T) {
	repo := newRepo(t, storage.NewMemoryStore())
	for _, d := range []int{3, 1, 5, 2} {
		if err := repo.AddOrReplace(entryAt(testNow.AddDate(0, 0, -d), d)); err != nil {
			t.Fatal(err)
		}
	}

	all := repo.All()
	for i := 1; i < len(all); i++ {
		if all[i].Date.After(all[i-1].Date) {
			t.Fatalf("entries not descending at %d", i)
		}
	}
}

func TestPersistsAcrossInstances(t *testing.T) {
	p := storage.NewMemoryStore()
	repo := newRepo(t, p)
	e := entryAt(testNow, 4200)
	e.Mood = models.MoodHappy
	e.Weight = 72.5
	if err := repo.AddOrReplace(e); err != nil {
		t.Fatal(err)
	}

	reloaded := newRepo(t, p)
	got, ok := reloaded.Today()
	if !ok {
		t.Fatal("Today() found nothing after reload")
	}
	if got.ID != e.ID || got.Steps != 4200 || got.Mood != models.MoodHappy || got.Weight != 72.5 {
		t.Errorf("reloaded entry = %+v, want %+v", got, e)
	}
	if !got.Date.Equal(e.Date) {
		t.Errorf("reloaded date = %v, want %v", got.Date, e.Date)
	}
}

func TestLoadMalformedStartsEmpty(t *testing.T) {
	p := storage.NewMemoryStore()
	if err := p.Set(constants.KeyEntries, []byte(`{"not":"a list"}`)); err != nil {
		t.Fatal(err)
	}
	repo := newRepo(t, p)
	if len(repo.All()) != 0 {
		t.Errorf("All() = %d entries, want 0", len(repo.All()))
	}
}

func TestLoadUnknownMoodIsNeutral(t *testing.T) {
	p := storage.NewMemoryStore()
	raw := `[{"id":"a","date":"2025-03-15T09:00:00Z","steps":10,"mood":"ecstatic"}]`
	if err := p.Set(constants.KeyEntries, []byte(raw)); err != nil {
		t.Fatal(err)
	}
	got, ok := newRepo(t, p).Today()
	if !ok {
		t.Fatal("Today() found nothing")
	}
	if got.Mood != models.MoodNeutral {
		t.Errorf("Mood = %q, want neutral", got.Mood)
	}
}

func TestDelete(t *testing.T) {
	p := storage.NewMemoryStore()
	repo := newRepo(t, p)
	e := entryAt(testNow, 10)
	if err := repo.AddOrReplace(e); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete("does-not-exist"); err != nil {
		t.Errorf("Delete() of unknown id error = %v, want nil", err)
	}
	if len(repo.All()) != 1 {
		t.Fatal("unknown id should leave the collection alone")
	}

	if err := repo.Delete(e.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok := repo.Get(e.ID); ok {
		t.Error("entry still present after Delete")
	}
	if len(newRepo(t, p).All()) != 0 {
		t.Error("Delete() was not persisted")
	}
}

func TestRecentWindow(t *testing.T) {
	repo := newRepo(t, storage.NewMemoryStore())
	for _, d := range []int{0, 2, 6, 7, 8, 30} {
		if err := repo.AddOrReplace(entryAt(testNow.AddDate(0, 0, -d), d)); err != nil {
			t.Fatal(err)
		}
	}

	week := repo.Recent(constants.WeekDays)
	if len(week) != 4 {
		t.Fatalf("Recent(7) = %d entries, want 4", len(week))
	}
	if week[0].Steps != 7 || week[3].Steps != 0 {
		t.Errorf("Recent(7) should be ascending, got first=%d last=%d", week[0].Steps, week[3].Steps)
	}

	if got := len(repo.Recent(constants.MonthDays)); got != 6 {
		t.Errorf("Recent(30) = %d entries, want 6", got)
	}
}

func TestTodayRespectsLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 20:00 UTC is still the 15th in New York, 02:00 UTC on the 16th is not
	repo := New(storage.NewMemoryStore(), WithClock(fixedClock), WithLocation(ny))
	late := entryAt(time.Date(2025, 3, 16, 2, 0, 0, 0, time.UTC), 1)
	if err := repo.AddOrReplace(late); err != nil {
		t.Fatal(err)
	}

	got, ok := repo.Today()
	if !ok || got.ID != late.ID {
		t.Errorf("Today() in New York should find the 02:00 UTC entry")
	}
}

func TestStreak(t *testing.T) {
	repo := newRepo(t, storage.NewMemoryStore())
	for _, d := range []int{0, 1, 2, 4} {
		if err := repo.AddOrReplace(entryAt(testNow.AddDate(0, 0, -d), 1)); err != nil {
			t.Fatal(err)
		}
	}
	if got := repo.Streak(); got != 3 {
		t.Errorf("Streak() = %d, want 3", got)
	}
}

type failingStore struct {
	*storage.MemoryStore
}

func (f failingStore) Set(string, []byte) error {
	return errors.New("disk full")
}

func TestWriteFailureReturnsError(t *testing.T) {
	repo := newRepo(t, failingStore{storage.NewMemoryStore()})
	err := repo.AddOrReplace(entryAt(testNow, 1))
	if err == nil {
		t.Fatal("AddOrReplace() should surface the write error")
	}
	if _, ok := repo.Today(); !ok {
		t.Error("in-memory collection should keep the entry")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	repo := newRepo(t, storage.NewMemoryStore())
	if err := repo.AddOrReplace(entryAt(testNow, 5)); err != nil {
		t.Fatal(err)
	}
	all := repo.All()
	all[0].Steps = 999
	if got, _ := repo.Today(); got.Steps != 5 {
		t.Error("mutating All() result changed the repository")
	}
}

func TestReplaceAll(t *testing.T) {
	p := storage.NewMemoryStore()
	repo := newRepo(t, p)
	if err := repo.AddOrReplace(entryAt(testNow, 1)); err != nil {
		t.Fatal(err)
	}

	first := entryAt(testNow.AddDate(0, 0, -2), 10)
	dup := entryAt(testNow.AddDate(0, 0, -2).Add(time.Hour), 20)
	other := entryAt(testNow.AddDate(0, 0, -1), 30)
	if err := repo.ReplaceAll([]models.HealthEntry{first, other, dup}); err != nil {
		t.Fatal(err)
	}

	all := newRepo(t, p).All()
	if len(all) != 2 {
		t.Fatalf("ReplaceAll() kept %d entries, want 2", len(all))
	}
	if all[0].Steps != 30 || all[1].Steps != 20 {
		t.Errorf("unexpected entries after replace: %d, %d", all[0].Steps, all[1].Steps)
	}
}
