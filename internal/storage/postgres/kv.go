package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/leporo/sqlf"

	"github.com/julianstephens/healthtrack/internal/storage"
)

func (s *Store) Get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}

	var value []byte
	err := sqlf.PostgreSQL.From("kv_store").
		Select("value").To(&value).
		Where("key = ?", key).
		QueryRowAndClose(context.Background(), s.db)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) Set(key string, value []byte) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}
	if !json.Valid(value) {
		return fmt.Errorf("%w: %s", storage.ErrInvalidValue, key)
	}

	_, err := sqlf.PostgreSQL.InsertInto("kv_store").
		Set("key", key).
		Set("value", value).
		Set("updated_at", time.Now().UTC()).
		Clause("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ExecAndClose(context.Background(), s.db)
	return err
}

func (s *Store) Delete(key string) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}

	_, err := sqlf.PostgreSQL.DeleteFrom("kv_store").
		Where("key = ?", key).
		ExecAndClose(context.Background(), s.db)
	return err
}

func (s *Store) Keys() ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}

	var (
		key  string
		keys []string
	)
	err := sqlf.PostgreSQL.From("kv_store").
		Select("key").To(&key).
		OrderBy("key").
		QueryAndClose(context.Background(), s.db, func(rows *sql.Rows) {
			keys = append(keys, key)
		})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Store) RecordUnlock(ev storage.UnlockEvent) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}

	_, err := sqlf.PostgreSQL.InsertInto("unlock_log").
		Set("achievement_id", ev.AchievementID).
		Set("title", ev.Title).
		Set("unlocked_at", ev.UnlockedAt.UTC()).
		Clause("ON CONFLICT DO NOTHING").
		ExecAndClose(context.Background(), s.db)
	return err
}

func (s *Store) UnlockHistory() ([]storage.UnlockEvent, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}

	var (
		row     storage.UnlockEvent
		history []storage.UnlockEvent
	)
	err := sqlf.PostgreSQL.From("unlock_log").
		Select("achievement_id").To(&row.AchievementID).
		Select("title").To(&row.Title).
		Select("unlocked_at").To(&row.UnlockedAt).
		OrderBy("unlocked_at").
		QueryAndClose(context.Background(), s.db, func(rows *sql.Rows) {
			history = append(history, row)
		})
	if err != nil {
		return nil, err
	}
	return history, nil
}
