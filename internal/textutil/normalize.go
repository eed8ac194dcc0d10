// Package textutil provides text canonicalization helpers used by every
// stage of the assessment pipeline.
package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeSpaces collapses every run of whitespace to a single space and
// trims leading/trailing whitespace. Empty input yields the empty string.
func NormalizeSpaces(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// CleanText normalizes whitespace and additionally strips the _x000D_
// artifact that Excel exports leave in place of carriage returns.
func CleanText(text string) string {
	cleaned := NormalizeSpaces(text)
	return strings.ReplaceAll(cleaned, "_x000D_", "")
}

// SplitList splits a comma-separated reference list into trimmed, non-empty
// parts. Used for competency references in answers and task definitions.
func SplitList(value string) []string {
	var parts []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// SplitIndicators splits an indicator reference cell. Indicator names may
// themselves contain commas, so the export separates them with ";\n".
func SplitIndicators(value string) []string {
	var parts []string
	for _, part := range strings.Split(value, ";\n") {
		part = strings.TrimSpace(strings.Trim(part, ";"))
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
