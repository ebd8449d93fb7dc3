package health

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/stats"
)

type EntryListCmd struct {
	Days int `help:"How many days back to list." default:"30"`
}

func (c *EntryListCmd) Run(ctx *cli.Context) error {
	if c.Days <= 0 {
		return fmt.Errorf("--days must be positive, got %d", c.Days)
	}
	t := ctx.Tracker()
	entries := stats.Within(t.Entries.All(), c.Days, t.Now())
	if len(entries) == 0 {
		fmt.Printf("No entries in the last %d days.\n", c.Days)
		return nil
	}

	fmt.Printf("%-10s  %-36s  %8s  %6s  %6s  %4s  %6s  %s\n", "Date", "ID", "Steps", "Water", "Sleep", "HR", "Kcal", "Mood")
	// newest first, like the repository
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Printf("%-10s  %-36s  %8s  %5.1fL  %5.1fh  %4d  %6s  %s\n",
			e.Date.In(ctx.Location()).Format(constants.DateFormat),
			e.ID,
			humanize.Comma(int64(e.Steps)),
			e.WaterIntake,
			e.SleepHours,
			e.HeartRate,
			humanize.Comma(int64(e.CaloriesBurned)),
			e.Mood.Emoji(),
		)
	}
	fmt.Printf("\n%d entries, streak %d day(s)\n", len(entries), t.Entries.Streak())
	return nil
}

type EntryDeleteCmd struct {
	ID string `arg:"" help:"ID of the entry to delete."`
}

func (c *EntryDeleteCmd) Run(ctx *cli.Context) error {
	repo := ctx.Tracker().Entries
	entry, found := repo.Get(c.ID)
	if err := repo.Delete(c.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if !found {
		fmt.Printf("No entry with ID %s; nothing to delete.\n", c.ID)
		return nil
	}
	fmt.Printf("✓ Deleted entry for %s\n", entry.Date.In(ctx.Location()).Format(constants.DateFormat))
	return nil
}
