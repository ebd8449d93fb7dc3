// Package input converts the loosely typed entry form into a HealthEntry.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/validation"
)

// ErrNothingEntered is returned when every numeric field is blank
var ErrNothingEntered = errors.New("Please enter at least one health metric.")

// Form holds raw field text as typed by the user. Mood is a name or 1-5 score.
type Form struct {
	Steps     string `validate:"required_without_all=Water Sleep HeartRate Calories Weight"`
	Water     string
	Sleep     string
	HeartRate string
	Calories  string
	Weight    string
	Mood      string
}

var validate = validation.NewStructValidator()

func (f Form) trimmed() Form {
	return Form{
		Steps:     strings.TrimSpace(f.Steps),
		Water:     strings.TrimSpace(f.Water),
		Sleep:     strings.TrimSpace(f.Sleep),
		HeartRate: strings.TrimSpace(f.HeartRate),
		Calories:  strings.TrimSpace(f.Calories),
		Weight:    strings.TrimSpace(f.Weight),
		Mood:      strings.TrimSpace(f.Mood),
	}
}

// ParseForm builds an entry dated at date with a fresh ID. Blank or
// unparseable numbers become 0 and negatives are clamped to 0; an unknown
// mood is neutral. Only a form with every numeric field blank is refused.
func ParseForm(form Form, date time.Time) (models.HealthEntry, error) {
	form = form.trimmed()
	if err := validate.Struct(form); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return models.HealthEntry{}, ErrNothingEntered
		}
		return models.HealthEntry{}, fmt.Errorf("validate form: %w", err)
	}

	entry := models.NewHealthEntry(date)
	entry.Steps = parseInt(form.Steps)
	entry.WaterIntake = parseFloat(form.Water)
	entry.SleepHours = parseFloat(form.Sleep)
	entry.HeartRate = parseInt(form.HeartRate)
	entry.CaloriesBurned = parseInt(form.Calories)
	entry.Weight = parseFloat(form.Weight)

	if mood, err := models.ParseMood(form.Mood); err == nil {
		entry.Mood = mood
	}
	return entry, nil
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FormFromEntry pre-fills a form from an existing entry. Zero values are left
// blank so the user sees an empty field rather than "0".
func FormFromEntry(e models.HealthEntry) Form {
	form := Form{Mood: string(e.Mood)}
	if e.Steps != 0 {
		form.Steps = strconv.Itoa(e.Steps)
	}
	if e.WaterIntake != 0 {
		form.Water = fmt.Sprintf("%.1f", e.WaterIntake)
	}
	if e.SleepHours != 0 {
		form.Sleep = fmt.Sprintf("%.1f", e.SleepHours)
	}
	if e.HeartRate != 0 {
		form.HeartRate = strconv.Itoa(e.HeartRate)
	}
	if e.CaloriesBurned != 0 {
		form.Calories = strconv.Itoa(e.CaloriesBurned)
	}
	if e.Weight != 0 {
		form.Weight = fmt.Sprintf("%.1f", e.Weight)
	}
	return form
}
