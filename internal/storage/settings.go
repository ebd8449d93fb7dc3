package storage

import (
	"fmt"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/logger"
	"github.com/julianstephens/healthtrack/internal/models"
)

// KeyUnlockHistory holds unlock events for providers without a history table
const KeyUnlockHistory = "UnlockHistory"

// LoadSettings reads the preference keys, filling defaults for anything
// missing or invalid.
func LoadSettings(p Provider) models.Settings {
	settings := models.Settings{
		OnboardingCompleted: NewRecord[bool](p, constants.KeyOnboardingCompleted).Load(false),
		Timezone:            NewRecord[string](p, constants.KeyTimezone).Load(""),
	}

	raw := NewRecord[string](p, constants.KeyTheme).Load("")
	theme, err := models.ParseTheme(raw)
	if err != nil {
		logger.Warn("Ignoring stored theme", "value", raw, "error", err)
	}
	settings.Theme = theme

	models.ApplyDefaultSettings(&settings)
	return settings
}

// SaveSettings writes each preference to its own key
func SaveSettings(p Provider, settings models.Settings) error {
	if _, err := models.ParseTheme(string(settings.Theme)); err != nil {
		return err
	}
	if err := NewRecord[string](p, constants.KeyTheme).Save(string(settings.Theme)); err != nil {
		return err
	}
	if err := NewRecord[bool](p, constants.KeyOnboardingCompleted).Save(settings.OnboardingCompleted); err != nil {
		return err
	}
	if err := NewRecord[string](p, constants.KeyTimezone).Save(settings.Timezone); err != nil {
		return err
	}
	return nil
}

// RecordUnlock appends ev to the provider's unlock history
func RecordUnlock(p Provider, ev UnlockEvent) error {
	if r, ok := p.(UnlockRecorder); ok {
		return r.RecordUnlock(ev)
	}
	rec := NewRecord[[]UnlockEvent](p, KeyUnlockHistory)
	return rec.Save(append(rec.Load(nil), ev))
}

// UnlockHistory returns every recorded unlock, oldest first
func UnlockHistory(p Provider) ([]UnlockEvent, error) {
	if r, ok := p.(UnlockRecorder); ok {
		return r.UnlockHistory()
	}
	return NewRecord[[]UnlockEvent](p, KeyUnlockHistory).Load(nil), nil
}

// Copy writes every key of src into dst and returns how many were copied
func Copy(dst, src Provider) (int, error) {
	keys, err := src.Keys()
	if err != nil {
		return 0, fmt.Errorf("failed to list source keys: %w", err)
	}

	copied := 0
	for _, key := range keys {
		value, err := src.Get(key)
		if err != nil {
			return copied, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if err := dst.Set(key, value); err != nil {
			return copied, fmt.Errorf("failed to write %s: %w", key, err)
		}
		copied++
	}

	if err := copyUnlockHistory(dst, src); err != nil {
		return copied, fmt.Errorf("failed to copy unlock history: %w", err)
	}
	return copied, nil
}

func copyUnlockHistory(dst, src Provider) error {
	_, srcTable := src.(UnlockRecorder)
	dstTable, toTable := dst.(UnlockRecorder)
	if !srcTable && !toTable {
		// history travelled with the keys
		return nil
	}

	history, err := UnlockHistory(src)
	if err != nil {
		return err
	}
	if !toTable {
		return NewRecord[[]UnlockEvent](dst, KeyUnlockHistory).Save(history)
	}
	for _, ev := range history {
		if err := dstTable.RecordUnlock(ev); err != nil {
			return err
		}
	}
	return nil
}
