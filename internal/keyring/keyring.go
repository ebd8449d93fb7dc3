package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/healthtrack/internal/constants"
)

var (
	// ErrNotFound is returned when no password is stored for the role
	ErrNotFound = errors.New("password not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// service scopes entries so several databases can share one role name
func service() string {
	return constants.AppName + "-postgres"
}

func account(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return constants.DefaultKeyringUser
	}
	return role
}

// GetPassword returns the stored Postgres password for role. An empty role
// uses the default account.
func GetPassword(role string) (string, error) {
	pw, err := keyring.Get(service(), account(role))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return pw, nil
}

// SetPassword stores the Postgres password for role
func SetPassword(role, password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(service(), account(role), password); err != nil {
		return fmt.Errorf("failed to store password in keyring: %w", err)
	}
	return nil
}

// DeletePassword removes the stored password for role
func DeletePassword(role string) error {
	err := keyring.Delete(service(), account(role))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete password from keyring: %w", err)
	}
	return nil
}

// IsAvailable reports whether the OS keyring answers at all. A not-found
// reply counts as available.
func IsAvailable() bool {
	_, err := keyring.Get(service(), "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
