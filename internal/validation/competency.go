package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/antonv/assessment-client/internal/table"
	"github.com/antonv/assessment-client/internal/textutil"
)

// Column names the cross-check operates on.
const (
	MatrixNameColumn    = "competency"
	AnswersRefColumn    = "Компетенции"
	answersEmailColumn  = "Email"
	maxExamples         = 5
	spreadsheetRowShift = 2 // 1-indexed rows plus the header row
)

// ValidateCompetencyData cross-checks a sanitized competency table against a
// sanitized answers table. All detectable violations are collected before a
// single aggregate ValidationError is returned; a missing column is recorded
// as a violation and the remaining checks run against an empty fallback
// series instead of short-circuiting.
func ValidateCompetencyData(matrix, answers *table.Table) error {
	var errs []string

	var matrixNames []string
	if !matrix.HasColumn(MatrixNameColumn) {
		errs = append(errs, fmt.Sprintf("В матрице компетенций отсутствует колонка '%s'.", MatrixNameColumn))
	} else {
		matrixNames = make([]string, len(matrix.Rows))
		for i, raw := range matrix.Column(MatrixNameColumn) {
			matrixNames[i] = textutil.NormalizeSpaces(raw)
		}

		if rows, offending := collect(matrixNames, func(name string) bool {
			return strings.Contains(name, ",")
		}); len(rows) > 0 {
			errs = append(errs, fmt.Sprintf(
				"Матрица компетенций, строки %s: запрещены запятые в названии. Исправьте: %s",
				joinRows(rows), joinExamples(offending)))
		}

		if rows, offending := collect(matrixNames, containsParens); len(rows) > 0 {
			errs = append(errs, fmt.Sprintf(
				"Матрица компетенций, строки %s: уберите текст в скобках из '%s'. Найдены: %s",
				joinRows(rows), MatrixNameColumn, joinExamples(offending)))
		}

		if rows, _ := collect(matrixNames, func(name string) bool {
			return name == ""
		}); len(rows) > 0 {
			errs = append(errs, fmt.Sprintf(
				"Матрица компетенций, строки %s: пустые значения в колонке '%s'.",
				joinRows(rows), MatrixNameColumn))
		}
	}

	var answerRefs []string
	if !answers.HasColumn(AnswersRefColumn) {
		errs = append(errs, fmt.Sprintf("В таблице ответов отсутствует колонка '%s'.", AnswersRefColumn))
	} else {
		answerRefs = make([]string, len(answers.Rows))
		for i, raw := range answers.Column(AnswersRefColumn) {
			answerRefs[i] = textutil.NormalizeSpaces(raw)
		}

		var details []string
		total := 0
		emails := answers.Column(answersEmailColumn)
		for i, value := range answerRefs {
			if !containsParens(value) {
				continue
			}
			total++
			if len(details) < maxExamples {
				email := emails[i]
				if email == "" {
					email = "N/A"
				}
				details = append(details, fmt.Sprintf("Email %s: %s", email, value))
			}
		}
		if total > 0 {
			suffix := ""
			if total > maxExamples {
				suffix = " ..."
			}
			errs = append(errs, fmt.Sprintf(
				"Уберите текст в скобках в колонке '%s' таблицы ответов. Примеры: %s%s",
				AnswersRefColumn, strings.Join(details, "; "), suffix))
		}
	}

	// Every referenced competency must exist in the matrix. The check is
	// deliberately asymmetric: unreferenced matrix competencies are allowed.
	matrixSet := make(map[string]struct{}, len(matrixNames))
	for _, name := range matrixNames {
		if name != "" {
			matrixSet[name] = struct{}{}
		}
	}

	missing := make(map[string]struct{})
	for _, value := range answerRefs {
		for _, part := range textutil.SplitList(value) {
			if _, ok := matrixSet[part]; !ok {
				missing[part] = struct{}{}
			}
		}
	}
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		errs = append(errs, "В таблице ответов найдены компетенции без соответствий в матрице: "+strings.Join(names, ", "))
	}

	if len(errs) > 0 {
		return &ValidationError{Violations: errs}
	}
	return nil
}

func containsParens(value string) bool {
	return strings.ContainsAny(value, "()")
}

// collect returns the spreadsheet row numbers (capped) and distinct offending
// values (first-seen order) for which the predicate holds.
func collect(values []string, match func(string) bool) (rows []int, offending []string) {
	seen := make(map[string]struct{})
	for i, value := range values {
		if !match(value) {
			continue
		}
		if len(rows) < maxExamples {
			rows = append(rows, i+spreadsheetRowShift)
		}
		if _, ok := seen[value]; !ok {
			seen[value] = struct{}{}
			offending = append(offending, value)
		}
	}
	return rows, offending
}

func joinRows(rows []int) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = strconv.Itoa(row)
	}
	return strings.Join(parts, ", ")
}

func joinExamples(values []string) string {
	if len(values) > maxExamples {
		return strings.Join(values[:maxExamples], ", ") + " ..."
	}
	return strings.Join(values, ", ")
}
