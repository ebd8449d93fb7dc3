package sqlite

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
	err := sqlf.From("kv_store").
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

	_, err := sqlf.InsertInto("kv_store").
		Set("key", key).
		Set("value", value).
		Set("updated_at", time.Now().UTC().Format(time.RFC3339)).
		Clause("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ExecAndClose(context.Background(), s.db)
	return err
}

func (s *Store) Delete(key string) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}

	_, err := sqlf.DeleteFrom("kv_store").
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
	err := sqlf.From("kv_store").
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
