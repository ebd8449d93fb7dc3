package models

import (
	"fmt"

	"github.com/julianstephens/healthtrack/internal/constants"
)

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}

// ParseTheme accepts light, dark or system in any case ("Dark" was the stored
// form in earlier installs).
func ParseTheme(value string) (constants.Theme, error) {
	switch value {
	case "light", "Light":
		return constants.ThemeLight, nil
	case "dark", "Dark":
		return constants.ThemeDark, nil
	case "system", "System", "":
		return constants.ThemeSystem, nil
	default:
		return "", fmt.Errorf("invalid theme: %q", value)
	}
}
