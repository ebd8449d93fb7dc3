package achievements

import "github.com/julianstephens/healthtrack/internal/models"

// Defaults returns the built-in achievements, locked, in display order
func Defaults() []models.Achievement {
	return []models.Achievement{
		{ID: "first-steps", Title: "First Steps", Description: "Log your first health entry", Icon: "⭐", Color: "bronze", Requirement: models.StepsRequirement(1)},
		{ID: "step-master", Title: "Step Master", Description: "Walk 10,000 steps in a day", Icon: "🚶", Color: "gold", Requirement: models.StepsRequirement(10000)},
		{ID: "hydration-hero", Title: "Hydration Hero", Description: "Drink 3L of water in a day", Icon: "💧", Color: "blue", Requirement: models.WaterRequirement(3.0)},
		{ID: "sleep-champion", Title: "Sleep Champion", Description: "Get 8+ hours of sleep", Icon: "🛏", Color: "purple", Requirement: models.SleepRequirement(8.0)},
		{ID: "perfect-day", Title: "Perfect Day", Description: "Meet all your daily goals", Icon: "✅", Color: "gold", Requirement: models.PerfectDayRequirement()},
		{ID: "consistency-king", Title: "Consistency King", Description: "Log entries for 7 consecutive days", Icon: "📅", Color: "green", Requirement: models.ConsecutiveDaysRequirement(7)},
		{ID: "calorie-crusher", Title: "Calorie Crusher", Description: "Burn 2500+ calories in a day", Icon: "🔥", Color: "gold", Requirement: models.CaloriesRequirement(2500)},
	}
}

// Merge lays saved unlock state over the defaults, matching by title. The
// result has exactly the defaults, in their order; saved titles with no
// default are dropped.
func Merge(defaults, saved []models.Achievement) []models.Achievement {
	byTitle := make(map[string]models.Achievement, len(saved))
	for _, a := range saved {
		if _, seen := byTitle[a.Title]; !seen {
			byTitle[a.Title] = a
		}
	}

	merged := make([]models.Achievement, len(defaults))
	for i, def := range defaults {
		merged[i] = def
		if s, ok := byTitle[def.Title]; ok && s.IsUnlocked {
			merged[i].IsUnlocked = true
			merged[i].DateUnlocked = s.DateUnlocked
		}
	}
	return merged
}
