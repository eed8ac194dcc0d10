// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default endpoints of the hosted evaluation service.
const (
	DefaultAPIURL           = "https://evolveaiserver-production.up.railway.app/evaluate_assessment"
	DefaultMatrixRequestURL = "https://evolveaiserver-production.up.railway.app/competencies_matrix"
	DefaultStatementsURL    = "https://evolveaiserver-production.up.railway.app/evaluate_statements_batch"
	DefaultWebhookURL       = "https://ntfy.sh/assessment"
)

// DefaultResultsSheet is the sheet name the answers export uses.
const DefaultResultsSheet = "Результаты участников"

// Config represents the pipeline configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Endpoints
	APIURL     string `json:"api_url,omitempty"`     // Evaluation endpoint the payloads are posted to
	WebhookURL string `json:"webhook_url,omitempty"` // Webhook attached to every request

	// Assessment parameters
	AssessmentType string `json:"assessment_type,omitempty"` // external | internal | development
	AssessmentInfo string `json:"assessment_info,omitempty"` // Free-text assessment context

	// Spreadsheet contract
	ResultsSheet    string   `json:"results_sheet,omitempty"`    // Sheet name in the answers workbook
	MatrixRequired  []string `json:"matrix_required,omitempty"`  // Row-level required columns, competency matrix
	AnswersRequired []string `json:"answers_required,omitempty"` // Row-level required columns, answers table
	TasksRequired   []string `json:"tasks_required,omitempty"`   // Column contract of the task-definition table

	// Submission behavior
	TimeoutSeconds int `json:"timeout_seconds,omitempty"` // HTTP timeout per POST
	Concurrency    int `json:"concurrency,omitempty"`     // Parallel submissions across participants
}

// DefaultConfig returns the configuration matching the production spreadsheet
// contract and the hosted evaluation service.
func DefaultConfig() *Config {
	return &Config{
		APIURL:         DefaultAPIURL,
		WebhookURL:     DefaultWebhookURL,
		AssessmentType: "external",
		ResultsSheet:   DefaultResultsSheet,
		MatrixRequired: []string{"competency", "indicator_name"},
		AnswersRequired: []string{
			"Email", "Name", "Позиция", "Название главы", "Название задания", "Ответ участника",
		},
		TasksRequired: []string{
			"Название задания", "Вопрос", "Тип оценки", "Компетенции", "Индикаторы",
		},
		TimeoutSeconds: 30,
		Concurrency:    4,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv fills empty endpoint fields from the environment. godotenv loads
// .env before cobra runs, so these pick up both real env vars and .env.
func (c *Config) ApplyEnv() {
	if c.APIURL == "" {
		c.APIURL = os.Getenv("ASSESSMENT_API_URL")
	}
	if c.WebhookURL == "" {
		c.WebhookURL = os.Getenv("ASSESSMENT_WEBHOOK_URL")
	}
	if c.AssessmentType == "" {
		c.AssessmentType = os.Getenv("ASSESSMENT_TYPE")
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values on top of the built-in contract.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.WebhookURL == "" {
		result.WebhookURL = defaults.WebhookURL
	}
	if result.AssessmentType == "" {
		result.AssessmentType = defaults.AssessmentType
	}
	if result.AssessmentInfo == "" {
		result.AssessmentInfo = defaults.AssessmentInfo
	}
	if result.ResultsSheet == "" {
		result.ResultsSheet = defaults.ResultsSheet
	}
	if len(result.MatrixRequired) == 0 {
		result.MatrixRequired = defaults.MatrixRequired
	}
	if len(result.AnswersRequired) == 0 {
		result.AnswersRequired = defaults.AnswersRequired
	}
	if len(result.TasksRequired) == 0 {
		result.TasksRequired = defaults.TasksRequired
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	return result
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("config error: 'api_url' is required")
	}
	if c.WebhookURL == "" {
		return fmt.Errorf("config error: 'webhook_url' is required")
	}
	valid := false
	for _, key := range []string{"external", "internal", "development"} {
		if c.AssessmentType == key {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("config error: 'assessment_type' must be one of external, internal, development; got %q", c.AssessmentType)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	return nil
}
