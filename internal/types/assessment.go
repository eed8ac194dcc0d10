// Package types provides the structured payload definitions exchanged with
// the assessment evaluation service.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Assessment type keys accepted by the evaluation service.
const (
	AssessmentExternal    = "external"
	AssessmentInternal    = "internal"
	AssessmentDevelopment = "development"
)

// EvalTypeKeys lists the evaluator keys the service exposes, in menu order.
var EvalTypeKeys = []string{AssessmentExternal, AssessmentInternal, AssessmentDevelopment}

// IndicatorLevels holds the four ordered proficiency-level descriptions of
// one indicator.
type IndicatorLevels struct {
	Level0 string `json:"level_0"`
	Level1 string `json:"level_1"`
	Level2 string `json:"level_2"`
	Level3 string `json:"level_3"`
}

// Indicator is one measurable facet of a competency.
type Indicator struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Levels      IndicatorLevels `json:"levels"`
}

// Competency is a named evaluated capability decomposed into indicators.
// Built once per ingestion run and never mutated afterward, so it is safe to
// share across participant requests without copying.
type Competency struct {
	Name        string      `json:"competency" validate:"required"`
	Description string      `json:"competency_description"`
	Weight      float64     `json:"weight"`
	Indicators  []Indicator `json:"indicators"`
}

// StatementEntry is one quick self-assessment answer. The competency
// reference is kept as the raw cell string, not split into a list.
type StatementEntry struct {
	Question       string `json:"question"`
	EvaluationType string `json:"evaluation_type"`
	Competency     string `json:"competency"`
	Answer         string `json:"answer"`
}

// CaseEntry is one answer to an open question, dilemma, mini-case or
// big-case, tagged with the competencies and indicators the task evaluates.
type CaseEntry struct {
	Question     string   `json:"question"`
	Answer       string   `json:"answer"`
	Competencies []string `json:"competencies"`
	Indicators   []string `json:"indicators"`
}

// AssessmentRequest is the per-participant record sent to the evaluation
// service. Category fields are nil when the participant has no rows of that
// category; an empty slice never stands in for "not applicable".
type AssessmentRequest struct {
	UserEmail        string           `json:"user_email" validate:"required,email"`
	UserName         string           `json:"user_name" validate:"required"`
	PositionTitle    string           `json:"position_title"`
	AssessmentInfo   string           `json:"assessment_info"`
	WebhookURL       string           `json:"webhook_url" validate:"required,url"`
	AssessmentType   string           `json:"assessment_type" validate:"required,oneof=external internal development"`
	CompetencyMatrix []Competency     `json:"competency_matrix" validate:"required,min=1,dive"`
	Statements       []StatementEntry `json:"statements,omitempty"`
	OpenQuestions    []CaseEntry      `json:"open_questions,omitempty"`
	Dilemmas         []CaseEntry      `json:"dilemmas,omitempty"`
	MiniCases        []CaseEntry      `json:"mini_cases,omitempty"`
	BigCases         []CaseEntry      `json:"big_cases,omitempty"`
}

// Validate validates the AssessmentRequest using the validator.
func (r *AssessmentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
