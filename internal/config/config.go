// Package config reads optional YAML settings and HEALTHTRACK_* environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/utils"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

// Timezone is an IANA name or "Local"
type Timezone string

func (tz *Timezone) SetValue(s string) error {
	if !utils.ValidateTimezone(s) {
		return configNotLoadedErr("invalid timezone %q", s)
	}
	*tz = Timezone(s)
	return nil
}

type Config struct {
	Debug    bool     `yaml:"debug" env:"HEALTHTRACK_DEBUG" env-description:"log at debug level and mirror logs to stderr"`
	LogJSON  bool     `yaml:"log_json" env:"HEALTHTRACK_LOG_JSON" env-description:"write the log file as JSON lines"`
	Timezone Timezone `yaml:"timezone" env:"HEALTHTRACK_TIMEZONE" env-description:"IANA timezone deciding day boundaries"`

	// CelebrationSeconds is how long the unlock banner stays up
	CelebrationSeconds int `yaml:"celebration_seconds" env:"HEALTHTRACK_CELEBRATION_SECONDS" env-default:"3"`

	Notifications struct {
		// defaults apply only to zero values, so the switch is phrased negatively
		Quiet bool `yaml:"quiet" env:"QUIET"`
	} `yaml:"notifications" env-prefix:"HEALTHTRACK_NOTIFICATIONS_"`

	DB struct {
		Path       string `yaml:"path" env:"PATH"`
		Connection string `yaml:"connection" env:"CONNECTION"`
	} `yaml:"db" env-prefix:"HEALTHTRACK_DB_"`
}

// Load reads filePath when it exists, then applies environment overrides.
// A missing file is not an error.
func Load(filePath string) (*Config, error) {
	cfg := &Config{}

	var err error
	if filePath != "" && fileExists(filePath) {
		err = cleanenv.ReadConfig(filePath, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Timezone != "" {
		if !utils.ValidateTimezone(string(c.Timezone)) {
			return configNotLoadedErr("invalid timezone %q", c.Timezone)
		}
	}
	if c.CelebrationSeconds < 0 || c.CelebrationSeconds > 60 {
		return configNotLoadedErr("celebration_seconds must be between 0 and 60, got %d", c.CelebrationSeconds)
	}
	return nil
}

// Celebration returns the banner duration, falling back to the default
func (c *Config) Celebration() time.Duration {
	if c.CelebrationSeconds <= 0 {
		return constants.DefaultCelebrationSeconds * time.Second
	}
	return time.Duration(c.CelebrationSeconds) * time.Second
}

// NotificationsEnabled reports whether unlocks go to the tray app
func (c *Config) NotificationsEnabled() bool {
	return !c.Notifications.Quiet
}

// Usage describes every environment variable Config reads
func Usage() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return header
	}
	return text
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
