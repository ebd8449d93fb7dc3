package models

import (
	"fmt"
	"time"
)

type RequirementKind string

const (
	RequirementSteps           RequirementKind = "steps"
	RequirementWater           RequirementKind = "water"
	RequirementSleep           RequirementKind = "sleep"
	RequirementConsecutiveDays RequirementKind = "consecutive_days"
	RequirementHeartRate       RequirementKind = "heart_rate"
	RequirementCalories        RequirementKind = "calories"
	RequirementPerfectDay      RequirementKind = "perfect_day"
)

// Requirement is the unlock condition of an achievement. Kind selects the
// variant; Target is unused for RequirementPerfectDay.
type Requirement struct {
	Kind   RequirementKind `json:"kind"`
	Target float64         `json:"target,omitempty"`
}

func StepsRequirement(n int) Requirement {
	return Requirement{Kind: RequirementSteps, Target: float64(n)}
}

func WaterRequirement(liters float64) Requirement {
	return Requirement{Kind: RequirementWater, Target: liters}
}

func SleepRequirement(hours float64) Requirement {
	return Requirement{Kind: RequirementSleep, Target: hours}
}

func ConsecutiveDaysRequirement(n int) Requirement {
	return Requirement{Kind: RequirementConsecutiveDays, Target: float64(n)}
}

func HeartRateRequirement(max int) Requirement {
	return Requirement{Kind: RequirementHeartRate, Target: float64(max)}
}

func CaloriesRequirement(n int) Requirement {
	return Requirement{Kind: RequirementCalories, Target: float64(n)}
}

func PerfectDayRequirement() Requirement {
	return Requirement{Kind: RequirementPerfectDay}
}

func (r Requirement) String() string {
	switch r.Kind {
	case RequirementSteps:
		return fmt.Sprintf("%.0f+ steps", r.Target)
	case RequirementWater:
		return fmt.Sprintf("%.1fL+ water", r.Target)
	case RequirementSleep:
		return fmt.Sprintf("%.1fh+ sleep", r.Target)
	case RequirementConsecutiveDays:
		return fmt.Sprintf("%.0f day streak", r.Target)
	case RequirementHeartRate:
		return fmt.Sprintf("heart rate at or under %.0f bpm", r.Target)
	case RequirementCalories:
		return fmt.Sprintf("%.0f+ calories", r.Target)
	case RequirementPerfectDay:
		return "steps, water and sleep goals in one day"
	default:
		return string(r.Kind)
	}
}

// Achievement pairs a fixed definition with its unlock state. Title is the
// persistence identity; ID is a stable slug used for lookups.
type Achievement struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Icon         string      `json:"icon"`
	Color        string      `json:"color"`
	Requirement  Requirement `json:"requirement"`
	IsUnlocked   bool        `json:"is_unlocked"`
	DateUnlocked *time.Time  `json:"date_unlocked,omitempty"`
}
