// Package merge joins the participant-answers table with the task-definition
// table on task name, producing typed per-answer rows that carry the task's
// metadata.
package merge

import (
	"strings"

	"github.com/antonv/assessment-client/internal/table"
)

// Answers table columns. Headers are a byte-for-byte contract with the
// spreadsheet export.
const (
	ColEmail       = "Email"
	ColName        = "Name"
	ColPosition    = "Позиция"
	ColChapter     = "Название главы"
	ColTaskName    = "Название задания"
	ColSubmittedAt = "Дата отправки"
	ColAnswer      = "Ответ участника"
)

// Task-definition table columns.
const (
	ColQuestion     = "Вопрос"
	ColEvalType     = "Тип оценки"
	ColCompetencies = "Компетенции"
	ColIndicators   = "Индикаторы"
)

// AnswerColumns is the column contract of the participant-answers table.
var AnswerColumns = []string{ColEmail, ColName, ColPosition, ColChapter, ColTaskName, ColSubmittedAt, ColAnswer}

// TaskColumns is the column contract of the task-definition table.
var TaskColumns = []string{ColTaskName, ColQuestion, ColEvalType, ColCompetencies, ColIndicators}

// Row is one participant answer enriched with its task definition. Fields
// are raw cell values; normalization happens during payload assembly.
type Row struct {
	Email       string
	Name        string
	Position    string
	Chapter     string
	TaskName    string
	SubmittedAt string
	Answer      string

	Question       string
	EvaluationType string
	Competencies   string // comma-separated competency names
	Indicators     string // ";\n"-separated indicator names
}

// JoinEmptyError reports an inner join that produced zero rows. Task-name
// mismatch between the two files is the dominant real-world failure mode, so
// it gets a targeted diagnostic instead of a generic "no data" message.
type JoinEmptyError struct {
	AnswerRows int
	TaskRows   int
}

func (e *JoinEmptyError) Error() string {
	return "Объединение таблицы ответов с таблицей заданий не дало ни одной строки. " +
		"Проверьте, что значения в колонке 'Название задания' совпадают в обоих файлах " +
		"(лишние пробелы, регистр, опечатки)."
}

// Tasks inner-joins the answers table with the task-definition table on task
// name. Task rows with an empty task name are discarded before joining;
// answer rows without a matching task (and tasks without answers) vanish from
// the output. A zero-row result is a JoinEmptyError.
func Tasks(answers, tasks *table.Table) ([]Row, error) {
	if err := answers.RequireColumns("Таблица ответов", AnswerColumns); err != nil {
		return nil, err
	}
	if err := tasks.RequireColumns("Таблица заданий", TaskColumns); err != nil {
		return nil, err
	}

	byTask := make(map[string][]table.Row, len(tasks.Rows))
	taskCount := 0
	for _, task := range tasks.Rows {
		name := task[ColTaskName]
		if strings.TrimSpace(name) == "" {
			continue
		}
		byTask[name] = append(byTask[name], task)
		taskCount++
	}

	var merged []Row
	for _, answer := range answers.Rows {
		for _, task := range byTask[answer[ColTaskName]] {
			merged = append(merged, Row{
				Email:          answer[ColEmail],
				Name:           answer[ColName],
				Position:       answer[ColPosition],
				Chapter:        answer[ColChapter],
				TaskName:       answer[ColTaskName],
				SubmittedAt:    answer[ColSubmittedAt],
				Answer:         answer[ColAnswer],
				Question:       task[ColQuestion],
				EvaluationType: task[ColEvalType],
				Competencies:   task[ColCompetencies],
				Indicators:     task[ColIndicators],
			})
		}
	}

	if len(merged) == 0 {
		return nil, &JoinEmptyError{AnswerRows: len(answers.Rows), TaskRows: taskCount}
	}

	return merged, nil
}
