package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Mood string

const (
	MoodVeryHappy Mood = "very_happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very_sad"
)

// AllMoods lists the mood levels from best to worst.
var AllMoods = []Mood{MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad}

// Score maps a mood onto the 1-5 scale used by averages and charts.
func (m Mood) Score() float64 {
	switch m {
	case MoodVeryHappy:
		return 5.0
	case MoodHappy:
		return 4.0
	case MoodSad:
		return 2.0
	case MoodVerySad:
		return 1.0
	default:
		return 3.0
	}
}

func (m Mood) Emoji() string {
	switch m {
	case MoodVeryHappy:
		return "😄"
	case MoodHappy:
		return "🙂"
	case MoodSad:
		return "🙁"
	case MoodVerySad:
		return "😢"
	default:
		return "😐"
	}
}

func (m Mood) Label() string {
	switch m {
	case MoodVeryHappy:
		return "Very Happy"
	case MoodHappy:
		return "Happy"
	case MoodSad:
		return "Sad"
	case MoodVerySad:
		return "Very Sad"
	default:
		return "Neutral"
	}
}

func (m Mood) IsValid() bool {
	switch m {
	case MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad:
		return true
	default:
		return false
	}
}

// ParseMood accepts a mood name ("very_happy", "very happy", "Very-Happy") or a score 1-5.
func ParseMood(input string) (Mood, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	switch s {
	case "5":
		return MoodVeryHappy, nil
	case "4":
		return MoodHappy, nil
	case "3", "":
		return MoodNeutral, nil
	case "2":
		return MoodSad, nil
	case "1":
		return MoodVerySad, nil
	}
	m := Mood(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid mood: %q", input)
	}
	return m, nil
}

// UnmarshalJSON decodes unknown or empty moods as neutral so that an old or
// hand-edited record never fails to load.
func (m *Mood) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*m = MoodNeutral
		return nil
	}
	parsed, err := ParseMood(s)
	if err != nil {
		parsed = MoodNeutral
	}
	*m = parsed
	return nil
}

// HealthEntry is one day of logged metrics. The calendar day of Date is its
// identity within the repository; ID identifies it for deletion.
type HealthEntry struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Steps          int       `json:"steps" validate:"gte=0"`
	WaterIntake    float64   `json:"water_intake" validate:"gte=0"` // liters
	SleepHours     float64   `json:"sleep_hours" validate:"gte=0"`  // hours
	HeartRate      int       `json:"heart_rate" validate:"gte=0"`   // bpm, 0 = not recorded
	CaloriesBurned int       `json:"calories_burned" validate:"gte=0"`
	Mood           Mood      `json:"mood" validate:"mood"`
	Weight         float64   `json:"weight" validate:"gte=0"` // kg, 0 = not recorded
}

// NewHealthEntry returns an empty neutral-mood entry for date with a fresh ID.
func NewHealthEntry(date time.Time) HealthEntry {
	return HealthEntry{
		ID:   uuid.New().String(),
		Date: date,
		Mood: MoodNeutral,
	}
}

// IsEmpty reports whether nothing beyond the default mood was logged.
func (e HealthEntry) IsEmpty() bool {
	return e.Steps == 0 && e.WaterIntake == 0 && e.SleepHours == 0 &&
		e.HeartRate == 0 && e.CaloriesBurned == 0 && e.Weight == 0
}
