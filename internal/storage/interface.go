package storage

import (
	"errors"
	"time"

	apperrors "github.com/julianstephens/healthtrack/internal/errors"
)

var (
	ErrNotFound           = errors.New("key not found")
	ErrNotLoaded          = errors.New("storage not loaded")
	ErrNotInitialized     = apperrors.WithHint(errors.New("storage not initialized"), "run 'healthtrack init' first")
	ErrAlreadyInitialized = errors.New("storage already initialized")
	ErrInvalidValue       = errors.New("value is not a JSON document")
)

// Provider is a string-keyed store of JSON documents. Writes replace the
// whole value for a key.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// UnlockEvent is one row of achievement unlock history
type UnlockEvent struct {
	AchievementID string    `json:"achievement_id"`
	Title         string    `json:"title"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// UnlockRecorder is implemented by backends with a dedicated history table.
// Other providers keep the history under KeyUnlockHistory.
type UnlockRecorder interface {
	RecordUnlock(UnlockEvent) error
	UnlockHistory() ([]UnlockEvent, error)
}
