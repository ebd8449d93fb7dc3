package reports

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/healthtrack/internal/cli"
)

type AchievementsCmd struct {
	Locked  bool `help:"Show only achievements still locked."`
	History bool `help:"Show the unlock history instead."`
}

func (c *AchievementsCmd) Run(ctx *cli.Context) error {
	engine := ctx.Tracker().Achievements

	if c.History {
		events, err := engine.History()
		if err != nil {
			return fmt.Errorf("failed to read unlock history: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("Nothing unlocked yet.")
			return nil
		}
		for _, ev := range events {
			fmt.Printf("  %s  %-18s (%s)\n", ev.UnlockedAt.In(ctx.Location()).Format("2006-01-02 15:04"), ev.Title, humanize.Time(ev.UnlockedAt))
		}
		return nil
	}

	list := engine.All()
	if c.Locked {
		list = engine.Locked()
	}

	fmt.Printf("Achievements: %d of %d unlocked (%s)\n\n", len(engine.Unlocked()), len(engine.All()), cli.Percent(engine.Progress()))
	if len(list) == 0 {
		fmt.Println("  Everything is unlocked. 🎉")
		return nil
	}
	for _, a := range list {
		fmt.Println(cli.AchievementLine(a))
	}
	return nil
}
