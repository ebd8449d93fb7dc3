package settings

import (
	"fmt"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme               *string `help:"Display theme: light, dark or system."`
	Timezone            *string `help:"IANA timezone deciding day boundaries (e.g. Europe/London, or Local)."`
	OnboardingCompleted *bool   `name:"onboarding-completed" help:"Mark the welcome flow as finished."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := storage.LoadSettings(ctx.Store)

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:                 %s\n", settings.Theme)
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Printf("  Onboarding Completed:  %v\n", settings.OnboardingCompleted)
		if ctx.Config != nil && ctx.Config.Timezone != "" {
			fmt.Printf("\n  (timezone overridden by config: %s)\n", ctx.Config.Timezone)
		}
		fmt.Println("\nStorage:")
		fmt.Printf("  Database:              %s\n", ctx.Store.GetConfigPath())
		return nil
	}

	updated := false
	if c.Theme != nil {
		theme, err := models.ParseTheme(*c.Theme)
		if err != nil {
			return err
		}
		settings.Theme = theme
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.OnboardingCompleted != nil {
		settings.OnboardingCompleted = *c.OnboardingCompleted
		updated = true
	}

	if updated {
		if err := storage.SaveSettings(ctx.Store, settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
