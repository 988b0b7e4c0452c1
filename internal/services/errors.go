package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputFormat marks malformed user input: range expressions, flag
	// values, exclusion lists. The wrapped message carries the literal
	// offending text so the user can see what was rejected.
	ErrInputFormat = errors.New("input format error")
	// ErrDataSource marks a missing or unreadable catalog file. The wrapped
	// message carries the attempted path.
	ErrDataSource = errors.New("data source error")
	// ErrNotFound marks a details lookup that matched no episode title.
	ErrNotFound = errors.New("not found")
	// ErrConfiguration marks unusable configuration values.
	ErrConfiguration = errors.New("configuration error")
	// ErrEnrichment marks a failed rating lookup. Enrichment failures are
	// swallowed by the enrichment step and logged; they never surface to the
	// user as a fatal error.
	ErrEnrichment = errors.New("enrichment failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrInputFormat
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps a pipeline error to the process exit status. Every taxonomy
// error exits non-zero; an empty candidate set is not an error and never
// reaches this function.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNotFound):
		return 1
	case errors.Is(err, ErrInputFormat), errors.Is(err, ErrConfiguration):
		return 2
	case errors.Is(err, ErrDataSource):
		return 3
	default:
		return 1
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
