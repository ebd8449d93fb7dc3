package cli

import (
	"errors"
	"strings"

	"github.com/alecthomas/kong"

	apperrors "github.com/julianstephens/healthtrack/internal/errors"
	"github.com/julianstephens/healthtrack/internal/keyring"
	"github.com/julianstephens/healthtrack/internal/logger"
	"github.com/julianstephens/healthtrack/internal/storage"
	"github.com/julianstephens/healthtrack/internal/storage/postgres"
	"github.com/julianstephens/healthtrack/internal/storage/sqlite"
)

// IsPostgres reports whether target is a PostgreSQL URI or key=value DSN
func IsPostgres(target string) bool {
	return strings.HasPrefix(target, "postgres://") ||
		strings.HasPrefix(target, "postgresql://") ||
		strings.Contains(target, "host=")
}

// OpenStore picks the provider for target without connecting. SQLite paths
// may start with "~". Postgres passwords come from the OS keyring, falling
// back to libpq's own sources (PGPASSWORD, .pgpass).
func OpenStore(target string) (storage.Provider, error) {
	if !IsPostgres(target) {
		return sqlite.NewStore(kong.ExpandPath(target)), nil
	}

	if ok, err := postgres.ValidateConnString(target); !ok {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, apperrors.WithHint(err, "remove the password and store it with 'healthtrack keyring set'")
		}
		return nil, err
	}

	var opts []postgres.Option
	role := postgres.Role(target)
	password, err := keyring.GetPassword(role)
	switch {
	case err == nil:
		opts = append(opts, postgres.WithPassword(password))
	case errors.Is(err, keyring.ErrNotFound):
		logger.Debug("No keyring password, relying on libpq", "role", role)
	default:
		logger.Warn("Keyring lookup failed", "role", role, "error", err)
	}
	return postgres.New(target, opts...), nil
}
