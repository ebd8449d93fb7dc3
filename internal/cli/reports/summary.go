package reports

import (
	"fmt"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/stats"
)

type SummaryCmd struct {
	Range int `help:"Days to summarize: 7, 30 or 90." default:"7"`
}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	if err := cli.ValidateRange(c.Range); err != nil {
		return err
	}
	s := ctx.Tracker().Summary(c.Range)

	fmt.Printf("Summary for the last %d days\n\n", s.RangeDays)
	if s.Entries == 0 {
		fmt.Println("No entries in this range.")
		return nil
	}

	fmt.Printf("  Entries:      %d (%d%% consistency)\n", s.Entries, s.ConsistencyPercent)
	fmt.Printf("  Streak:       %d day(s)\n", s.Streak)
	fmt.Printf("  Goals met:    %d day(s)\n", s.GoalsMet)
	fmt.Printf("  Avg mood:     %.1f/5\n\n", s.AverageMood)

	rows := []struct {
		metric models.Metric
		avg    float64
	}{
		{models.MetricSteps, s.AvgSteps},
		{models.MetricWater, s.AvgWater},
		{models.MetricSleep, s.AvgSleep},
		{models.MetricCalories, s.AvgCalories},
	}
	for _, r := range rows {
		trend := s.Trends[r.metric]
		fmt.Printf("  %-12s avg %-10s %s %s\n", r.metric.Label(), cli.FormatMetric(r.metric, r.avg), stats.DirectionOf(trend).Arrow(), r.metric.FormatTrend(trend))
	}

	if s.BestDay != nil {
		fmt.Printf("\n  Best day:     %s\n", cli.FormatDay(s.BestDay.Date.In(ctx.Location())))
	}
	if s.MostActiveWeekday != nil {
		fmt.Printf("  Most active:  %s\n", s.MostActiveWeekday.String())
	}
	return nil
}
