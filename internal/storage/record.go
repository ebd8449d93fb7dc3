package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/healthtrack/internal/logger"
)

// Record is a typed view of one key in a Provider
type Record[T any] struct {
	p   Provider
	key string
}

func NewRecord[T any](p Provider, key string) Record[T] {
	return Record[T]{p: p, key: key}
}

func (r Record[T]) Key() string {
	return r.key
}

// Load decodes the stored value over fallback, so fields absent from the
// stored JSON (or a stored null) keep their fallback values. A missing key
// yields fallback silently; an unreadable or malformed value yields fallback
// with a warning. Slice fallbacks must not be shared, since decoding reuses
// their backing array.
func (r Record[T]) Load(fallback T) T {
	data, err := r.p.Get(r.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to read stored value, using default", "key", r.key, "error", err)
		}
		return fallback
	}

	v := fallback
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("Stored value is malformed, using default", "key", r.key, "error", err)
		return fallback
	}
	return v
}

// Save encodes v and replaces the stored value
func (r Record[T]) Save(v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	if err := r.p.Set(r.key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", r.key, err)
	}
	return nil
}
