package reports

import (
	"fmt"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/models"
)

type ChartCmd struct {
	Metric string `arg:"" help:"Metric to chart: steps, water, sleep, heart_rate, calories, weight or mood."`
	Range  int    `help:"Days to chart: 7, 30 or 90." default:"7"`
}

func (c *ChartCmd) Run(ctx *cli.Context) error {
	metric, err := models.ParseMetric(c.Metric)
	if err != nil {
		return err
	}
	if err := cli.ValidateRange(c.Range); err != nil {
		return err
	}

	chart := ctx.Tracker().Chart(metric, c.Range)
	fmt.Printf("%s, last %d days\n\n", metric.Label(), c.Range)
	if len(chart.Points) == 0 {
		fmt.Println("No data for this range.")
		return nil
	}

	for _, p := range chart.Points {
		ratio := 0.0
		if chart.Maximum > 0 {
			ratio = p.Value / chart.Maximum
		}
		fmt.Printf("  %-11s %s %s\n", cli.FormatDay(p.Date.In(ctx.Location())), cli.Bar(ratio, 30), metric.Format(p.Value))
	}
	fmt.Printf("\n  Average %s  Max %s  Trend %s %s\n", chart.FormattedAverage(), chart.FormattedMaximum(), chart.Direction.Arrow(), chart.FormattedTrend())
	return nil
}
