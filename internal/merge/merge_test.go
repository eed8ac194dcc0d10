package merge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonv/assessment-client/internal/table"
)

func answersTable(rows ...table.Row) *table.Table {
	return &table.Table{Columns: AnswerColumns, Rows: rows}
}

func tasksTable(rows ...table.Row) *table.Table {
	return &table.Table{Columns: TaskColumns, Rows: rows}
}

func answerRow(email, task string) table.Row {
	return table.Row{
		ColEmail:       email,
		ColName:        "Анна",
		ColPosition:    "Менеджер",
		ColChapter:     "Дилеммы",
		ColTaskName:    task,
		ColSubmittedAt: "2024-05-01 10:00",
		ColAnswer:      "ответ участника",
	}
}

func taskRow(task string) table.Row {
	return table.Row{
		ColTaskName:     task,
		ColQuestion:     "Текст задания " + task,
		ColEvalType:     "Прямая",
		ColCompetencies: "Коммуникация",
		ColIndicators:   "Слушание;\nАргументация",
	}
}

func TestTasks_InnerJoinCarriesTaskMetadata(t *testing.T) {
	merged, err := Tasks(
		answersTable(answerRow("a@example.com", "Задача А"), answerRow("b@example.com", "Задача Б")),
		tasksTable(taskRow("Задача А"), taskRow("Задача Б"), taskRow("Задача В")),
	)
	require.NoError(t, err)
	require.Len(t, merged, 2)

	assert.Equal(t, "a@example.com", merged[0].Email)
	assert.Equal(t, "Текст задания Задача А", merged[0].Question)
	assert.Equal(t, "Прямая", merged[0].EvaluationType)
	assert.Equal(t, "Коммуникация", merged[0].Competencies)
}

func TestTasks_UnmatchedRowsVanishSilently(t *testing.T) {
	merged, err := Tasks(
		answersTable(answerRow("a@example.com", "Задача А"), answerRow("b@example.com", "Без определения")),
		tasksTable(taskRow("Задача А")),
	)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "a@example.com", merged[0].Email)
}

func TestTasks_DropsTaskRowsWithEmptyName(t *testing.T) {
	merged, err := Tasks(
		answersTable(answerRow("a@example.com", "Задача А"), answerRow("b@example.com", "")),
		tasksTable(taskRow("Задача А"), taskRow("  ")),
	)
	require.NoError(t, err)
	require.Len(t, merged, 1)
}

func TestTasks_CaseMismatchYieldsJoinEmptyError(t *testing.T) {
	_, err := Tasks(
		answersTable(answerRow("a@example.com", "задача а")),
		tasksTable(taskRow("Задача А")),
	)
	require.Error(t, err)

	var joinErr *JoinEmptyError
	require.True(t, errors.As(err, &joinErr))
	assert.Equal(t, 1, joinErr.AnswerRows)
	assert.Equal(t, 1, joinErr.TaskRows)
	assert.Contains(t, err.Error(), "регистр")
	assert.Contains(t, err.Error(), "Название задания")
}

func TestTasks_MissingTaskColumnsAreFatal(t *testing.T) {
	broken := &table.Table{Columns: []string{ColTaskName, ColQuestion}}
	_, err := Tasks(answersTable(answerRow("a@example.com", "Задача А")), broken)
	require.Error(t, err)

	var schemaErr *table.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "Таблица заданий", schemaErr.Dataset)
	assert.ElementsMatch(t, []string{ColEvalType, ColCompetencies, ColIndicators}, schemaErr.Missing)
}

func TestTasks_MissingAnswerColumnsAreFatal(t *testing.T) {
	broken := &table.Table{Columns: []string{ColEmail}}
	_, err := Tasks(broken, tasksTable(taskRow("Задача А")))
	require.Error(t, err)

	var schemaErr *table.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "Таблица ответов", schemaErr.Dataset)
}

func TestTasks_OutputNeverExceedsMatchingSubset(t *testing.T) {
	merged, err := Tasks(
		answersTable(
			answerRow("a@example.com", "Задача А"),
			answerRow("a@example.com", "Задача Б"),
			answerRow("b@example.com", "Задача А"),
		),
		tasksTable(taskRow("Задача А")),
	)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(merged), 3)
	assert.Len(t, merged, 2)
}
