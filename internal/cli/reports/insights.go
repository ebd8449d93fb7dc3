package reports

import (
	"fmt"

	"github.com/julianstephens/healthtrack/internal/cli"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	insights := ctx.Tracker().CurrentInsights()
	if len(insights) == 0 {
		fmt.Println("No insights right now. Keep logging!")
		return nil
	}
	fmt.Println("Insights:")
	for _, in := range insights {
		fmt.Println(cli.InsightLine(in))
	}
	return nil
}
