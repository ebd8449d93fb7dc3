// Package goals stores the user's daily targets.
package goals

import (
	"fmt"
	"strings"

	"github.com/r3labs/diff"

	"github.com/julianstephens/healthtrack/internal/constants"
	"github.com/julianstephens/healthtrack/internal/logger"
	"github.com/julianstephens/healthtrack/internal/models"
	"github.com/julianstephens/healthtrack/internal/storage"
)

// Store holds the current goals, replaced wholesale on Set
type Store struct {
	record  storage.Record[models.HealthGoal]
	current models.HealthGoal
}

// New loads the stored goals, falling back to the defaults
func New(p storage.Provider) *Store {
	s := &Store{
		record: storage.NewRecord[models.HealthGoal](p, constants.KeyGoals),
	}
	s.current = s.record.Load(models.DefaultHealthGoal())
	return s
}

func (s *Store) Get() models.HealthGoal {
	return s.current
}

// Set persists goal and then makes it current, returning what changed. On a
// failed write the previous goals stay current.
func (s *Store) Set(goal models.HealthGoal) (diff.Changelog, error) {
	changes, err := diff.Diff(s.current, goal)
	if err != nil {
		// the change log is informational only
		logger.Warn("Failed to diff goals", "error", err)
		changes = nil
	}

	if err := s.record.Save(goal); err != nil {
		return nil, err
	}
	s.current = goal
	logger.Debug("Goals updated", "changes", len(changes))
	return changes, nil
}

// Reset restores the default goals
func (s *Store) Reset() (diff.Changelog, error) {
	return s.Set(models.DefaultHealthGoal())
}

// DescribeChanges renders a change log one field per line, e.g.
// "steps: 10000 -> 12000"
func DescribeChanges(changes diff.Changelog) []string {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, fmt.Sprintf("%s: %v -> %v", strings.Join(c.Path, "."), c.From, c.To))
	}
	return lines
}
