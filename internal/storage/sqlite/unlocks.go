package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/leporo/sqlf"

	"github.com/julianstephens/healthtrack/internal/storage"
)

func (s *Store) RecordUnlock(ev storage.UnlockEvent) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}

	_, err := sqlf.InsertInto("unlock_log").
		Set("achievement_id", ev.AchievementID).
		Set("title", ev.Title).
		Set("unlocked_at", ev.UnlockedAt.UTC().Format(time.RFC3339Nano)).
		Clause("ON CONFLICT DO NOTHING").
		ExecAndClose(context.Background(), s.db)
	return err
}

func (s *Store) UnlockHistory() ([]storage.UnlockEvent, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}

	var (
		row      storage.UnlockEvent
		at       string
		history  []storage.UnlockEvent
		parseErr error
	)
	err := sqlf.From("unlock_log").
		Select("achievement_id").To(&row.AchievementID).
		Select("title").To(&row.Title).
		Select("unlocked_at").To(&at).
		OrderBy("unlocked_at").
		QueryAndClose(context.Background(), s.db, func(rows *sql.Rows) {
			t, err := time.Parse(time.RFC3339Nano, at)
			if err != nil {
				parseErr = err
				return
			}
			ev := row
			ev.UnlockedAt = t
			history = append(history, ev)
		})
	if err != nil {
		return nil, err
	}
	return history, parseErr
}
