package types

import "github.com/go-playground/validator/v10"

// StatementRow is one statement shown to a participant together with the
// participant's raw answer, used by the standalone statements-check flow.
type StatementRow struct {
	// QuestionNumber is the raw "№" cell. Kept as text so non-numeric
	// values pass through instead of collapsing onto a default.
	QuestionNumber    string `json:"question_number"`
	Email             string `json:"email" validate:"required,email"`
	Question          string `json:"question" validate:"required"`
	QuestionType      string `json:"question_type"` // polarity, e.g. "Прямая" or "Обратная"
	Competency        string `json:"competency"`
	ParticipantAnswer string `json:"participant_answer"`
}

// StatementCheckRequest is the per-participant payload of the standalone
// statements-check flow.
type StatementCheckRequest struct {
	Statements []StatementRow `json:"statements" validate:"required,min=1,dive"`
	WebhookURL string         `json:"webhook_url" validate:"required,url"`
}

// Validate validates the StatementCheckRequest using the validator.
func (r *StatementCheckRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
