package assemble

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonv/assessment-client/internal/table"
)

func statementsTable(rows ...table.Row) *table.Table {
	return &table.Table{Columns: StatementColumns, Rows: rows}
}

func statementRow(number, email, question string) table.Row {
	return table.Row{
		ColStatementNumber: number,
		ColStatementEmail:  email,
		ColStatementText:   question,
		ColStatementType:   "Прямая",
		ColStatementComp:   "Коммуникация",
		ColStatementAnswer: "Согласен",
	}
}

func TestStatementChecks_GroupsByEmail(t *testing.T) {
	tbl := statementsTable(
		statementRow("1", "a@example.com", "Я умею слушать"),
		statementRow("2", "b@example.com", "Я делегирую задачи"),
		statementRow("3", "a@example.com", "Я держу сроки"),
	)

	requests, err := StatementChecks(tbl, "https://ntfy.sh/assessment")
	require.NoError(t, err)
	require.Len(t, requests, 2)

	assert.Len(t, requests[0].Statements, 2)
	assert.Equal(t, "a@example.com", requests[0].Statements[0].Email)
	assert.Equal(t, "1", requests[0].Statements[0].QuestionNumber)
	assert.Equal(t, "3", requests[0].Statements[1].QuestionNumber)
	assert.Equal(t, "https://ntfy.sh/assessment", requests[0].WebhookURL)

	assert.Len(t, requests[1].Statements, 1)
}

func TestStatementChecks_KeepsNonNumericNumbersDistinct(t *testing.T) {
	tbl := statementsTable(
		statementRow("1а", "a@example.com", "Я умею слушать"),
		statementRow("1б", "a@example.com", "Я держу сроки"),
	)

	requests, err := StatementChecks(tbl, "https://ntfy.sh/assessment")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	require.Len(t, requests[0].Statements, 2)
	assert.Equal(t, "1а", requests[0].Statements[0].QuestionNumber)
	assert.Equal(t, "1б", requests[0].Statements[1].QuestionNumber)
}

func TestStatementChecks_SkipsRowsWithoutEmail(t *testing.T) {
	tbl := statementsTable(
		statementRow("1", " ", "Без адресата"),
		statementRow("2", "a@example.com", "Я умею слушать"),
	)

	requests, err := StatementChecks(tbl, "https://ntfy.sh/assessment")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Len(t, requests[0].Statements, 1)
}

func TestStatementChecks_MissingColumnsAreFatal(t *testing.T) {
	broken := &table.Table{Columns: []string{ColStatementEmail}}
	_, err := StatementChecks(broken, "https://ntfy.sh/assessment")
	require.Error(t, err)

	var schemaErr *table.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "Таблица утверждений", schemaErr.Dataset)
}
