package system

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/healthtrack/internal/backup"
	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/migration"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/utils"
	"github.com/julianstephens/healthtrack/internal/validation"
)

type DoctorCmd struct{}

// statusReporter is implemented by the SQL-backed providers
type statusReporter interface {
	MigrationStatus(ctx context.Context) (migration.Status, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type diagnostic struct {
	name string
	// needsDB checks are skipped when the database is unreachable
	needsDB bool
	// warnOnly failures do not fail the run
	warnOnly bool
	run      func(*cli.Context) error
}

var diagnostics = []diagnostic{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Stored records", needsDB: true, run: checkStoredRecords},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, d := range diagnostics {
		if d.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", d.name)
			continue
		}
		err := d.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", d.name)
		case d.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", d.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", d.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil && !errors.Is(err, migration.ErrSchemaTooNew) {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if p, ok := ctx.Store.(pinger); ok {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Ping(c); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sr, ok := ctx.Store.(statusReporter)
	if !ok {
		return nil
	}
	if _, err := sr.MigrationStatus(context.Background()); err != nil {
		if errors.Is(err, migration.ErrSchemaTooNew) {
			return err
		}
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	sr, ok := ctx.Store.(statusReporter)
	if !ok {
		return nil
	}
	st, err := sr.MigrationStatus(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	if len(st.Pending) > 0 {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'healthtrack migrate')", st.Current, st.Latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if cli.IsPostgres(ctx.Target) {
		return nil
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'healthtrack backup create'")
	}
	return nil
}

// checkStoredRecords decodes every known key strictly; the services fall
// back to defaults on bad data, which would otherwise hide it.
func checkStoredRecords(ctx *cli.Context) error {
	targets := map[string]any{
		constants.KeyEntries:      &[]models.HealthEntry{},
		constants.KeyGoals:        &models.HealthGoal{},
		constants.KeyAchievements: &[]models.Achievement{},
	}
	for key, dst := range targets {
		raw, err := ctx.Store.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("%s does not decode: %w", key, err)
		}
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	loc := ctx.Location()
	v := validation.New(validation.WithClock(ctx.Clock), validation.WithLocation(loc))
	result := v.ValidateEntries(ctx.Tracker().Entries.All())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found (run 'healthtrack validate --fix')", len(result.Conflicts))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if ctx.Config != nil && !utils.ValidateTimezone(string(ctx.Config.Timezone)) {
		return fmt.Errorf("configured timezone %q is not a valid IANA name", ctx.Config.Timezone)
	}
	tz := storage.LoadSettings(ctx.Store).Timezone
	if !utils.ValidateTimezone(tz) {
		return fmt.Errorf("stored timezone %q is not a valid IANA name", tz)
	}
	return nil
}
