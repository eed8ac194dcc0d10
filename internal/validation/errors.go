// Package validation cross-checks the competency matrix against the answers
// table for naming consistency and forbidden characters.
package validation

import "strings"

// ValidationError aggregates every violation found in one pass so the user
// can fix all problems at once instead of one at a time.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "\n")
}
