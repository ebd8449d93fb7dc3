package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/healthtrack/internal/logger"
)

// HintError pairs an error with a suggested next step for the user.
type HintError struct {
	Err        error
	Suggestion string
}

func (e *HintError) Error() string {
	return e.Err.Error()
}

func (e *HintError) Unwrap() error {
	return e.Err
}

// WithHint attaches a suggestion that Format prints under the error.
func WithHint(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &HintError{Err: err, Suggestion: suggestion}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	var hint *HintError
	if stderrors.As(err, &hint) && hint.Suggestion != "" {
		return fmt.Sprintf("Error: %v\n  Hint: %s", err, hint.Suggestion)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
