package assemble

import (
	"strings"

	"github.com/antonv/assessment-client/internal/table"
	"github.com/antonv/assessment-client/internal/types"
)

// Statements-file columns for the standalone statements-check flow.
const (
	ColStatementNumber = "№"
	ColStatementEmail  = "Email"
	ColStatementText   = "Вопрос"
	ColStatementType   = `П\О`
	ColStatementComp   = "Компетенции"
	ColStatementAnswer = "Ответ участника"
)

// StatementColumns is the column contract of the statements file.
var StatementColumns = []string{
	ColStatementNumber, ColStatementEmail, ColStatementText,
	ColStatementType, ColStatementComp, ColStatementAnswer,
}

// StatementChecks builds one StatementCheckRequest per distinct email from a
// single statements table, grouping rows in first-seen email order.
func StatementChecks(t *table.Table, webhookURL string) ([]types.StatementCheckRequest, error) {
	if err := t.RequireColumns("Таблица утверждений", StatementColumns); err != nil {
		return nil, err
	}

	var order []string
	byEmail := make(map[string][]types.StatementRow)
	for _, row := range t.Rows {
		email := strings.TrimSpace(row[ColStatementEmail])
		if email == "" {
			continue
		}
		if _, ok := byEmail[email]; !ok {
			order = append(order, email)
		}
		byEmail[email] = append(byEmail[email], types.StatementRow{
			QuestionNumber:    strings.TrimSpace(row[ColStatementNumber]),
			Email:             email,
			Question:          row[ColStatementText],
			QuestionType:      row[ColStatementType],
			Competency:        row[ColStatementComp],
			ParticipantAnswer: row[ColStatementAnswer],
		})
	}

	requests := make([]types.StatementCheckRequest, 0, len(order))
	for _, email := range order {
		requests = append(requests, types.StatementCheckRequest{
			Statements: byEmail[email],
			WebhookURL: webhookURL,
		})
	}
	return requests, nil
}
