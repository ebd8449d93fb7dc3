package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthtrack/internal/input"
	"github.com/julianstephens/healthtrack/internal/models"
)

// GoalFormModel holds the goal editor's text fields
type GoalFormModel struct {
	Steps     string
	Water     string
	Sleep     string
	HeartRate string
	Calories  string
}

func goalFormFrom(g models.HealthGoal) *GoalFormModel {
	return &GoalFormModel{
		Steps:     strconv.Itoa(g.Steps),
		Water:     strconv.FormatFloat(g.WaterIntake, 'f', -1, 64),
		Sleep:     strconv.FormatFloat(g.SleepHours, 'f', -1, 64),
		HeartRate: strconv.Itoa(g.HeartRate),
		Calories:  strconv.Itoa(g.CaloriesBurned),
	}
}

func validateWhole(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number of 0 or more")
	}
	return nil
}

func validateDecimal(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return fmt.Errorf("enter a number of 0 or more")
	}
	return nil
}

// Goal converts the validated fields back into a goal
func (f *GoalFormModel) Goal() (models.HealthGoal, error) {
	for _, check := range []struct {
		value string
		valid func(string) error
	}{
		{f.Steps, validateWhole},
		{f.Water, validateDecimal},
		{f.Sleep, validateDecimal},
		{f.HeartRate, validateWhole},
		{f.Calories, validateWhole},
	} {
		if err := check.valid(check.value); err != nil {
			return models.HealthGoal{}, err
		}
	}

	steps, _ := strconv.Atoi(strings.TrimSpace(f.Steps))
	water, _ := strconv.ParseFloat(strings.TrimSpace(f.Water), 64)
	sleep, _ := strconv.ParseFloat(strings.TrimSpace(f.Sleep), 64)
	hr, _ := strconv.Atoi(strings.TrimSpace(f.HeartRate))
	calories, _ := strconv.Atoi(strings.TrimSpace(f.Calories))
	return models.HealthGoal{
		Steps:          steps,
		WaterIntake:    water,
		SleepHours:     sleep,
		HeartRate:      hr,
		CaloriesBurned: calories,
	}, nil
}

func (m *Model) newGoalForm() *huh.Form {
	f := m.goalForm
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Steps").Value(&f.Steps).Validate(validateWhole),
			huh.NewInput().Title("Water (L)").Value(&f.Water).Validate(validateDecimal),
			huh.NewInput().Title("Sleep (hours)").Value(&f.Sleep).Validate(validateDecimal),
			huh.NewInput().Title("Max resting heart rate (bpm)").Value(&f.HeartRate).Validate(validateWhole),
			huh.NewInput().Title("Calories burned").Value(&f.Calories).Validate(validateWhole),
		).Title("Daily goals"),
	).WithTheme(m.styles.Form()).WithShowHelp(true)
}

func moodOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.AllMoods))
	for _, mood := range models.AllMoods {
		opts = append(opts, huh.NewOption(mood.Emoji()+" "+mood.Label(), string(mood)))
	}
	return opts
}

// newLogForm edits m.logForm in place. Blank fields mean "not recorded".
func (m *Model) newLogForm() *huh.Form {
	f := m.logForm
	if f.Mood == "" {
		f.Mood = string(models.MoodNeutral)
	}
	title := "Log today"
	if m.formError != "" {
		title = fmt.Sprintf("Log today (%s)", m.formError)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Steps").Value(&f.Steps).Placeholder("0"),
			huh.NewInput().Title("Water (L)").Value(&f.Water).Placeholder("0.0"),
			huh.NewInput().Title("Sleep (hours)").Value(&f.Sleep).Placeholder("0.0"),
		).Title(title),
		huh.NewGroup(
			huh.NewInput().Title("Heart rate (bpm)").Value(&f.HeartRate).Placeholder("0"),
			huh.NewInput().Title("Calories burned").Value(&f.Calories).Placeholder("0"),
			huh.NewInput().Title("Weight (kg)").Value(&f.Weight).Placeholder("0.0"),
			huh.NewSelect[string]().Title("Mood").Options(moodOptions()...).Value(&f.Mood),
		),
	).WithTheme(m.styles.Form()).WithShowHelp(true)
}

// logFormFor pre-fills the editor from today's entry when there is one
func logFormFor(entry models.HealthEntry, ok bool) *input.Form {
	if !ok {
		return &input.Form{Mood: string(models.MoodNeutral)}
	}
	f := input.FormFromEntry(entry)
	return &f
}
