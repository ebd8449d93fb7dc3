package models

import "github.com/julianstephens/healthtrack/internal/constants"

// Settings represents application-wide preferences. None of these feed the
// health calculations except Timezone, which decides calendar-day boundaries.
type Settings struct {
	Theme               constants.Theme `json:"theme"`                // light, dark or system
	OnboardingCompleted bool            `json:"onboarding_completed"` // whether the welcome flow was finished
	Timezone            string          `json:"timezone"`             // IANA timezone name (e.g. "Europe/London") or "Local"
}
