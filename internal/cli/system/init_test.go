package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/config"
	"github.com/julianstephens/healthtrack/internal/entries"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage/sqlite"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return &cli.Context{
		Store:  store,
		Config: &config.Config{Timezone: "UTC"},
		Target: dbPath,
		Clock:  func() time.Time { return testNow },
	}, dbPath
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath := setupTestInitDB(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _ := setupTestInitDB(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, _ := setupTestInitDB(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}
	if err := ctx.Store.Set("marker", []byte(`true`)); err != nil {
		t.Fatal(err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("force init failed: %v", err)
	}
	if _, err := ctx.Store.Get("marker"); err == nil {
		t.Error("force init should start from an empty database")
	}
}

func TestInitCmd_ForceWithNonExistentDatabase(t *testing.T) {
	ctx, _ := setupTestInitDB(t)
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Errorf("force init on missing database failed: %v", err)
	}
}

func TestInitCmd_ForceRejectsSameSource(t *testing.T) {
	ctx, dbPath := setupTestInitDB(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&InitCmd{Force: true, Source: dbPath}).Run(ctx); err == nil {
		t.Error("expected error when source and destination are the same")
	}
}

func TestInitCmd_CopiesFromSource(t *testing.T) {
	src, srcPath := newTestContext(t)
	seedEntry(t, src, 0, func(e *models.HealthEntry) { e.Steps = 777 })

	dst, _ := setupTestInitDB(t)
	if err := (&InitCmd{Source: srcPath}).Run(dst); err != nil {
		t.Fatalf("init with source failed: %v", err)
	}

	repo := entries.New(dst.Store, entries.WithClock(dst.Clock), entries.WithLocation(time.UTC))
	today, ok := repo.Today()
	if !ok || today.Steps != 777 {
		t.Errorf("copied today = %+v, ok = %v", today, ok)
	}
}
