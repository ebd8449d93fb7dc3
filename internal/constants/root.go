package constants

import (
	"time"
)

// SessionState represents the current state of the TUI application
type SessionState int

// Theme is the user's display theme preference
type Theme string

const (
	AppName            = "healthtrack"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/healthtrack/healthtrack.db"
	DefaultConfigFile  = "~/.config/healthtrack/config.yaml"
	Version            = "v0.3.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "healthtrack-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "healthtrack-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.healthtrack"
	TrayExecutablePrefix   = "healthtrack-tray"

	// DefaultCelebrationSeconds is how long an unlock banner stays visible
	DefaultCelebrationSeconds = 3

	// Theme constants
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Session states. The first four are the TUI tabs, in display order.
const (
	StateToday SessionState = iota
	StateInsights
	StateAchievements
	StateTrends
	StateLogEntry
	StateEditGoals
	StateOnboarding
)

// TabCount is the number of TUI tabs
const TabCount = 4
