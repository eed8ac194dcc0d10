package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonv/assessment-client/internal/table"
)

func matrixTable(names ...string) *table.Table {
	t := &table.Table{Columns: []string{"competency", "competency_description"}}
	for _, name := range names {
		t.Rows = append(t.Rows, table.Row{"competency": name, "competency_description": "описание"})
	}
	return t
}

func answersTable(refs ...string) *table.Table {
	t := &table.Table{Columns: []string{"Email", "Компетенции"}}
	for i, ref := range refs {
		email := "user@example.com"
		if i > 0 {
			email = "other@example.com"
		}
		t.Rows = append(t.Rows, table.Row{"Email": email, "Компетенции": ref})
	}
	return t
}

func TestValidate_AcceptsConsistentTables(t *testing.T) {
	matrix := matrixTable("Коммуникация", "Лидерство")
	answers := answersTable("Коммуникация", "Лидерство, Коммуникация")
	require.NoError(t, ValidateCompetencyData(matrix, answers))
}

func TestValidate_RejectsCommaInMatrixName(t *testing.T) {
	err := ValidateCompetencyData(matrixTable("Лидерство, влияние"), answersTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "запрещены запятые")
	assert.Contains(t, err.Error(), "Лидерство, влияние")
}

func TestValidate_RejectsParenthesesInMatrixName(t *testing.T) {
	err := ValidateCompetencyData(matrixTable("Лидерство (soft)"), answersTable("Лидерство (soft)"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "скобках")
	assert.Contains(t, err.Error(), "Лидерство (soft)")
}

func TestValidate_RejectsEmptyMatrixName(t *testing.T) {
	err := ValidateCompetencyData(matrixTable("Коммуникация", "   "), answersTable("Коммуникация"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "пустые значения")
	assert.Contains(t, err.Error(), "строки 3")
}

func TestValidate_RejectsParenthesesInAnswerRefs(t *testing.T) {
	matrix := matrixTable("Коммуникация")
	err := ValidateCompetencyData(matrix, answersTable("Коммуникация (нельзя)"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "таблицы ответов")
	assert.Contains(t, err.Error(), "Email user@example.com: Коммуникация (нельзя)")
}

func TestValidate_NamesUnknownCompetencies(t *testing.T) {
	matrix := matrixTable("Коммуникация")
	err := ValidateCompetencyData(matrix, answersTable("НеизвестнаяКомпетенция"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "без соответствий в матрице: НеизвестнаяКомпетенция")
}

func TestValidate_DoesNotFlagUnreferencedMatrixCompetencies(t *testing.T) {
	// Asymmetric on purpose: an extra matrix competency is not an error.
	matrix := matrixTable("Коммуникация", "Лишняя компетенция")
	require.NoError(t, ValidateCompetencyData(matrix, answersTable("Коммуникация")))
}

func TestValidate_NormalizesBeforeComparing(t *testing.T) {
	matrix := matrixTable("Коммуникация  и влияние")
	answers := answersTable(" Коммуникация и   влияние ")
	require.NoError(t, ValidateCompetencyData(matrix, answers))
}

func TestValidate_CollectsAllViolationsAtOnce(t *testing.T) {
	matrix := matrixTable("Лидерство, влияние", "Гибкость (soft)")
	answers := answersTable("Неизвестная")

	err := ValidateCompetencyData(matrix, answers)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Violations, 3)
}

func TestValidate_MissingColumnsAreViolationsNotPanics(t *testing.T) {
	matrix := &table.Table{Columns: []string{"weight"}}
	answers := &table.Table{Columns: []string{"Email"}}

	err := ValidateCompetencyData(matrix, answers)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, err.Error(), "В матрице компетенций отсутствует колонка 'competency'.")
	assert.Contains(t, err.Error(), "В таблице ответов отсутствует колонка 'Компетенции'.")
}

func TestValidate_CapsExamplesAtFive(t *testing.T) {
	matrix := matrixTable(
		"А (1)", "Б (2)", "В (3)", "Г (4)", "Д (5)", "Е (6)", "Ж (7)",
	)
	err := ValidateCompetencyData(matrix, answersTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "...")
	assert.NotContains(t, err.Error(), "Ж (7)")
}
