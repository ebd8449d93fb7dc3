package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/input"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/tracker"
	"github.com/julianstephens/healthtrack/internal/utils"
)

// LogCmd records or replaces the entry for a day. Values are taken as typed;
// anything unreadable counts as 0.
type LogCmd struct {
	Steps     string `help:"Steps walked."`
	Water     string `help:"Water drunk, in liters."`
	Sleep     string `help:"Hours slept."`
	HeartRate string `name:"heart-rate" help:"Resting heart rate in bpm."`
	Calories  string `help:"Calories burned."`
	Weight    string `help:"Body weight in kg."`
	Mood      string `help:"Mood: very_happy, happy, neutral, sad, very_sad or 1-5."`
	Date      string `help:"Day to log (YYYY-MM-DD). Defaults to today."`
}

func (c *LogCmd) form() input.Form {
	return input.Form{
		Steps:     c.Steps,
		Water:     c.Water,
		Sleep:     c.Sleep,
		HeartRate: c.HeartRate,
		Calories:  c.Calories,
		Weight:    c.Weight,
		Mood:      c.Mood,
	}
}

// when resolves --date. Past days are stamped at noon so they sit well inside
// their calendar day in any nearby timezone.
func (c *LogCmd) when(ctx *cli.Context) (time.Time, error) {
	now := ctx.Now()
	if c.Date == "" {
		return now, nil
	}

	day, err := utils.ParseDateInLocation(c.Date, ctx.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", c.Date, err)
	}
	today := utils.StartOfDay(now, ctx.Location())
	switch {
	case day.After(today):
		return time.Time{}, errors.New("cannot log an entry for a future day")
	case day.Equal(today):
		return now, nil
	default:
		return day.Add(12 * time.Hour), nil
	}
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	when, err := c.when(ctx)
	if err != nil {
		return err
	}

	entry, err := input.ParseForm(c.form(), when)
	if err != nil {
		return err
	}

	result, err := ctx.Tracker().SaveEntry(context.Background(), entry)
	if err != nil {
		return err
	}
	printResult(ctx, result)
	return nil
}

func printResult(ctx *cli.Context, result tracker.SaveResult) {
	fmt.Printf("✓ Saved entry for %s\n\n", cli.FormatDay(result.Entry.Date))
	for _, line := range cli.ProgressLines(result.Entry, ctx.Tracker().Goals.Get(), result.Progress) {
		fmt.Println(line)
	}

	if len(result.Unlocked) > 0 {
		fmt.Printf("\n🏆 %s unlocked!\n", pluralAchievements(len(result.Unlocked)))
		for _, a := range result.Unlocked {
			fmt.Printf("  %s %s: %s\n", a.Icon, a.Title, a.Description)
		}
	}

	var urgent []models.HealthInsight
	for _, in := range result.Insights {
		if in.Priority == models.PriorityHigh {
			urgent = append(urgent, in)
		}
	}
	if len(urgent) > 0 {
		fmt.Println("\nNeeds attention:")
		for _, in := range urgent {
			fmt.Println(cli.InsightLine(in))
		}
	}
}

func pluralAchievements(n int) string {
	if n == 1 {
		return "Achievement"
	}
	return humanize.Comma(int64(n)) + " achievements"
}
