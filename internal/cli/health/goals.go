package health

import (
	"errors"
	"fmt"

	"github.com/julianstephens/healthtrack/internal/cli"
	"github.com/julianstephens/healthtrack/internal/goals"
	"github.com/julianstephens/healthtrack/internal/models"
)

type GoalsShowCmd struct{}

func (c *GoalsShowCmd) Run(ctx *cli.Context) error {
	goal := ctx.Tracker().Goals.Get()
	fmt.Println("Daily goals:")
	fmt.Printf("  Steps:       %s\n", cli.FormatMetric(models.MetricSteps, float64(goal.Steps)))
	fmt.Printf("  Water:       %s\n", cli.FormatMetric(models.MetricWater, goal.WaterIntake))
	fmt.Printf("  Sleep:       %s\n", cli.FormatMetric(models.MetricSleep, goal.SleepHours))
	fmt.Printf("  Heart rate:  at most %s\n", cli.FormatMetric(models.MetricHeartRate, float64(goal.HeartRate)))
	fmt.Printf("  Calories:    %s\n", cli.FormatMetric(models.MetricCalories, float64(goal.CaloriesBurned)))
	return nil
}

type GoalsSetCmd struct {
	Steps     *int     `help:"Daily steps."`
	Water     *float64 `help:"Daily water in liters."`
	Sleep     *float64 `help:"Nightly sleep in hours."`
	HeartRate *int     `name:"heart-rate" help:"Resting heart rate ceiling in bpm."`
	Calories  *int     `help:"Daily calories burned."`
}

func (c *GoalsSetCmd) apply(goal models.HealthGoal) (models.HealthGoal, error) {
	if c.Steps != nil {
		goal.Steps = *c.Steps
	}
	if c.Water != nil {
		goal.WaterIntake = *c.Water
	}
	if c.Sleep != nil {
		goal.SleepHours = *c.Sleep
	}
	if c.HeartRate != nil {
		goal.HeartRate = *c.HeartRate
	}
	if c.Calories != nil {
		goal.CaloriesBurned = *c.Calories
	}
	if goal.Steps < 0 || goal.WaterIntake < 0 || goal.SleepHours < 0 || goal.HeartRate < 0 || goal.CaloriesBurned < 0 {
		return goal, errors.New("goals cannot be negative")
	}
	return goal, nil
}

func (c *GoalsSetCmd) Run(ctx *cli.Context) error {
	store := ctx.Tracker().Goals
	goal, err := c.apply(store.Get())
	if err != nil {
		return err
	}

	changes, err := store.Set(goal)
	if err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	if len(changes) == 0 {
		fmt.Println("No changes specified. Use flags such as --steps to update goals.")
		return nil
	}
	fmt.Println("✓ Goals updated:")
	for _, line := range goals.DescribeChanges(changes) {
		fmt.Printf("  %s\n", line)
	}
	return nil
}

type GoalsResetCmd struct{}

func (c *GoalsResetCmd) Run(ctx *cli.Context) error {
	changes, err := ctx.Tracker().Goals.Reset()
	if err != nil {
		return fmt.Errorf("failed to reset goals: %w", err)
	}
	fmt.Printf("✓ Goals reset to defaults (%d changed)\n", len(changes))
	return nil
}
