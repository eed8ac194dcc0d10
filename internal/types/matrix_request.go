package types

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// AssessmentGoal labels offered to the user when requesting a matrix.
const (
	GoalIPRUpdate          = "Срез уровня сотрудников для обновления ИПР"
	GoalPotentialReview    = "Оценка потенциала для пересмотра роли или ЗП"
	GoalCandidateSelection = "Отбор кандидата на должность"
)

// AssessmentGoals lists the goal labels in menu order.
var AssessmentGoals = []string{GoalIPRUpdate, GoalPotentialReview, GoalCandidateSelection}

// AssessmentFrequency labels offered to the user when requesting a matrix.
const (
	FrequencyOneTime  = "Единоразово"
	FrequencyQuarter  = "1 раз в квартал"
	FrequencyHalfYear = "1 раз в полгода"
	FrequencyYearly   = "1 раз в год"
)

// AssessmentFrequencies lists the frequency labels in menu order.
var AssessmentFrequencies = []string{FrequencyOneTime, FrequencyQuarter, FrequencyHalfYear, FrequencyYearly}

// LanguageOptions lists the report languages the matrix service supports.
var LanguageOptions = []string{"ru", "en"}

// MatrixCompetency is one competency seed for a matrix-preparation request.
type MatrixCompetency struct {
	Name        string  `json:"name" validate:"required"`
	Weight      float64 `json:"weight" validate:"gte=0,lte=100"`
	Description string  `json:"description,omitempty"`
}

// MatrixRequest asks the evaluation service to prepare a competency matrix
// for a company and audience. This is the interactive path; it is the only
// place where competency weights are required to sum to 100.
type MatrixRequest struct {
	Competencies         []MatrixCompetency `json:"competencies" validate:"required,min=1,dive"`
	Language             string             `json:"language" validate:"required,oneof=ru en"`
	TargetAudience       string             `json:"target_audience" validate:"required"`
	AssessmentGoal       string             `json:"assessment_goal" validate:"required"`
	Frequency            string             `json:"frequency" validate:"required"`
	CompanyName          string             `json:"company_name"`
	TypicalCases         []string           `json:"typical_cases,omitempty"`
	AudienceDescription  string             `json:"audience_description,omitempty"`
	CompanyValuesAndTone string             `json:"company_values_and_tone,omitempty"`
	CustomerPainPoints   string             `json:"customer_pain_points,omitempty"`
	WebhookURL           string             `json:"webhook_url" validate:"required,url"`
}

// Validate validates the MatrixRequest, including the weight-sum constraint.
func (r *MatrixRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}

	var total float64
	for _, comp := range r.Competencies {
		total += comp.Weight
	}
	if math.Abs(total-100.0) > 0.01 {
		return fmt.Errorf("сумма весов компетенций должна быть 100, сейчас %.1f", total)
	}
	return nil
}
