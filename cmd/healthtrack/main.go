package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/cli/backups"
	"github.com/julianstephens/healthtrack/internal/cli/health"
	"github.com/julianstephens/healthtrack/internal/cli/reports"
	"github.com/julianstephens/healthtrack/internal/cli/settings"
	"github.com/julianstephens/healthtrack/internal/cli/system"
	"github.com/julianstephens/healthtrack/internal/config"
	"github.com/julianstephens/healthtrack/internal/constants"
	apperrors "github.com/julianstephens/healthtrack/internal/errors"
	"github.com/julianstephens/healthtrack/internal/logger"
	"github.com/julianstephens/healthtrack/internal/notifier"
)

var CLI struct {
	Version    kong.VersionFlag
	DB         string `name:"db" help:"SQLite path or PostgreSQL connection string. PostgreSQL passwords belong in the OS keyring, not the string." placeholder:"PATH|DSN"`
	ConfigFile string `name:"config-file" help:"YAML config file." type:"path" default:"${config_file}"`
	Debug      bool   `help:"Log at debug level and mirror logs to stderr."`

	Init     system.InitCmd     `cmd:"" help:"Initialize healthtrack storage."`
	Migrate  system.MigrateCmd  `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check stored entries for conflicts."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Log   health.LogCmd   `cmd:"" help:"Log or update a day's health data."`
	Today health.TodayCmd `cmd:"" help:"Show today's progress."`
	Entry struct {
		List   health.EntryListCmd   `cmd:"" help:"List recent entries." default:"1"`
		Delete health.EntryDeleteCmd `cmd:"" help:"Delete an entry."`
	} `cmd:"" help:"Manage logged entries."`
	Goals struct {
		Show  health.GoalsShowCmd  `cmd:"" help:"Show daily goals." default:"1"`
		Set   health.GoalsSetCmd   `cmd:"" help:"Change daily goals."`
		Reset health.GoalsResetCmd `cmd:"" help:"Restore the default goals."`
	} `cmd:"" help:"Manage daily goals."`

	Achievements reports.AchievementsCmd `cmd:"" help:"Show achievements."`
	Insights     reports.InsightsCmd     `cmd:"" help:"Show insights from recent entries."`
	Summary      reports.SummaryCmd      `cmd:"" help:"Summarize a date range."`
	Chart        reports.ChartCmd        `cmd:"" help:"Chart one metric over a date range."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Export   system.ExportCmd     `cmd:"" help:"Export all records to a JSON file."`
	Import   system.ImportCmd     `cmd:"" help:"Import records from a JSON export."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL password."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove a stored PostgreSQL password."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check the OS keyring." default:"1"`
	} `cmd:"" help:"Manage PostgreSQL credentials in the OS keyring."`
	Inspect system.DebugCmd `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Notify  system.NotifyCmd `cmd:"" hidden:"" help:"Send a reminder to the tray app (used by timers)."`
}

// skipsLoad lists commands that open the store themselves or not at all
var skipsLoad = []string{"init", "keyring", "doctor"}

func needsLoad(command string) bool {
	for _, prefix := range skipsLoad {
		if command == prefix || strings.HasPrefix(command, prefix+" ") {
			return false
		}
	}
	return true
}

// target picks the database: the flag, then the config file, then the default path
func target(cfg *config.Config) string {
	switch {
	case CLI.DB != "":
		return CLI.DB
	case cfg.DB.Connection != "":
		return cfg.DB.Connection
	case cfg.DB.Path != "":
		return cfg.DB.Path
	default:
		return constants.DefaultConfigPath
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily health tracker: log metrics, meet goals, unlock achievements.\n\n"+config.Usage()),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": constants.DefaultConfigFile,
		},
	)

	cfg, err := config.Load(kong.ExpandPath(CLI.ConfigFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || cfg.Debug,
		JSON:      cfg.LogJSON,
		ConfigDir: filepath.Dir(kong.ExpandPath(constants.DefaultConfigFile)),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	dbTarget := target(cfg)
	store, err := cli.OpenStore(dbTarget)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
		Target: dbTarget,
	}
	if cfg.NotificationsEnabled() {
		appCtx.Notifier = notifier.New()
	}

	if needsLoad(ctx.Command()) {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	logger.Debug("Running command", "command", ctx.Command(), "target", store.GetConfigPath())
	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	apperrors.Fatal(err)
}
