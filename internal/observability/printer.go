// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/antonv/assessment-client/internal/table"
	"github.com/antonv/assessment-client/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Truncation and
// padding count runes, not bytes; most box content is Cyrillic.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padLine(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", padLine(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// padLine truncates a line to width runes (with a "..." marker) and pads
// shorter lines with spaces to exactly width runes.
func padLine(line string, width int) string {
	runes := []rune(line)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-len(runes))
}

// PrintDropReports outputs one warning line per sanitized-away row, in
// source-row order.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDropReports(drops []table.DropReport) {
	for _, drop := range drops {
		fmt.Fprintf(p.out, "⚠ %s\n", drop)
	}
}

// PrintMatrixSummary outputs a human-readable summary of the built
// competency matrix.
func (p *Printer) PrintMatrixSummary(competencies []types.Competency) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Компетенций: %d\n", len(competencies)))

	count := min(len(competencies), maxItemsToShow)
	for i := 0; i < count; i++ {
		comp := competencies[i]
		sb.WriteString(fmt.Sprintf("  • %s (вес %.1f, индикаторов %d)\n", comp.Name, comp.Weight, len(comp.Indicators)))
	}
	if len(competencies) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... и ещё %d\n", len(competencies)-maxItemsToShow))
	}

	p.printBox("Матрица компетенций", strings.TrimRight(sb.String(), "\n"))
}

// PrintRequestSummary outputs per-participant category counts.
func (p *Printer) PrintRequestSummary(req *types.AssessmentRequest) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Имя:      %s\n", req.UserName))
	sb.WriteString(fmt.Sprintf("Позиция:  %s\n", req.PositionTitle))
	sb.WriteString("\n")

	categories := []struct {
		label string
		count int
	}{
		{"Утверждения", len(req.Statements)},
		{"Открытые вопросы", len(req.OpenQuestions)},
		{"Дилеммы", len(req.Dilemmas)},
		{"Мини-кейсы", len(req.MiniCases)},
		{"Большие кейсы", len(req.BigCases)},
	}
	for _, cat := range categories {
		if cat.count > 0 {
			sb.WriteString(fmt.Sprintf("  • %s: %d\n", cat.label, cat.count))
		}
	}

	p.printBox(req.UserEmail, strings.TrimRight(sb.String(), "\n"))
}

// PrintSubmission outputs the outcome of one participant submission.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSubmission(email string, statusCode int, errMsg string) {
	switch {
	case errMsg != "":
		fmt.Fprintf(p.out, "✗ %s: %s\n", email, errMsg)
	case statusCode >= 200 && statusCode < 300:
		fmt.Fprintf(p.out, "✓ %s: отправлено (HTTP %d)\n", email, statusCode)
	default:
		fmt.Fprintf(p.out, "⚠ %s: сервис вернул HTTP %d\n", email, statusCode)
	}
}
