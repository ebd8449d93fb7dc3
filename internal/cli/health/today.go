package health

import (
	"fmt"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/progress"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	t := ctx.Tracker()
	goal := t.Goals.Get()

	fmt.Printf("Today, %s\n\n", cli.FormatDay(t.Now()))
	today, ok := t.Entries.Today()
	if !ok {
		for _, line := range cli.ProgressLines(today, goal, progress.Progress{}) {
			fmt.Println(line)
		}
		fmt.Println("\nNothing logged yet. Use 'healthtrack log' to add today's entry.")
		return nil
	}

	for _, line := range cli.ProgressLines(today, goal, progress.Calculate(today, goal)) {
		fmt.Println(line)
	}
	fmt.Printf("\n  Mood         %s %s\n", today.Mood.Emoji(), today.Mood.Label())
	if today.Weight > 0 {
		fmt.Printf("  Weight       %.1f kg\n", today.Weight)
	}
	fmt.Printf("  Streak       %d day(s)\n", t.Entries.Streak())
	return nil
}
