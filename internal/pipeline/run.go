// Package pipeline provides the high-level orchestration for turning
// spreadsheet exports into assessment requests and submitting them.
package pipeline

import (
	"context"
	"io"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/antonv/assessment-client/internal/apiclient"
	"github.com/antonv/assessment-client/internal/assemble"
	"github.com/antonv/assessment-client/internal/config"
	"github.com/antonv/assessment-client/internal/matrix"
	"github.com/antonv/assessment-client/internal/merge"
	"github.com/antonv/assessment-client/internal/table"
	"github.com/antonv/assessment-client/internal/types"
	"github.com/antonv/assessment-client/internal/validation"
	"github.com/antonv/assessment-client/internal/xlsx"
)

// Dataset labels used in sanitation diagnostics.
const (
	datasetMatrix  = "Матрица компетенций"
	datasetAnswers = "Таблица ответов"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// BuildOptions holds the inputs of the transformation stages.
type BuildOptions struct {
	Config config.Config

	MatrixFile  io.Reader // competency matrix workbook
	AnswersFile io.Reader // participant answers workbook
	TasksFile   io.Reader // task-definition workbook

	OnProgress ProgressCallback
}

// BuildResult holds everything the transformation produced before any
// network submission.
type BuildResult struct {
	Requests         []types.AssessmentRequest
	CompetencyMatrix []types.Competency
	Drops            []table.DropReport
}

// SubmissionResult is the outcome of posting one participant's request.
// Exactly one of StatusCode/TransportErr is meaningful: a transport failure
// leaves StatusCode zero, a service reply leaves TransportErr empty.
type SubmissionResult struct {
	Email        string
	StatusCode   int
	Body         string
	TransportErr string
}

// OK reports whether the service accepted the participant's payload.
func (r SubmissionResult) OK() bool {
	return r.TransportErr == "" && r.StatusCode >= 200 && r.StatusCode < 300
}

// RunResult is the outcome of a full ingest-validate-submit batch.
type RunResult struct {
	RunID uuid.UUID
	BuildResult
	Submissions []SubmissionResult
}

func emitProgress(cb ProgressCallback, step, message string) {
	if cb != nil {
		cb(ProgressEvent{Step: step, Message: message})
	}
}

// Build runs the transformation stages: read, sanitize, validate, build the
// matrix, merge tasks and assemble per-participant requests. Validation,
// schema and join errors abort the whole batch; no partial payload is
// produced for any participant.
func Build(opts BuildOptions) (*BuildResult, error) {
	cfg := opts.Config

	emitProgress(opts.OnProgress, "read", "чтение матрицы компетенций")
	matrixTable, err := xlsx.ReadSheet(opts.MatrixFile, "")
	if err != nil {
		return nil, err
	}

	emitProgress(opts.OnProgress, "read", "чтение таблицы ответов")
	answersTable, err := xlsx.ReadSheet(opts.AnswersFile, cfg.ResultsSheet)
	if err != nil {
		return nil, err
	}

	emitProgress(opts.OnProgress, "read", "чтение таблицы заданий")
	tasksTable, err := xlsx.ReadSheet(opts.TasksFile, "")
	if err != nil {
		return nil, err
	}

	emitProgress(opts.OnProgress, "sanitize", "удаление неполных строк")
	matrixTable, matrixDrops, err := table.Sanitize(matrixTable, cfg.MatrixRequired, datasetMatrix)
	if err != nil {
		return nil, err
	}
	answersTable, answerDrops, err := table.Sanitize(answersTable, cfg.AnswersRequired, datasetAnswers)
	if err != nil {
		return nil, err
	}
	drops := append(matrixDrops, answerDrops...)

	emitProgress(opts.OnProgress, "validate", "проверка согласованности компетенций")
	if err := validation.ValidateCompetencyData(matrixTable, answersTable); err != nil {
		return nil, err
	}

	emitProgress(opts.OnProgress, "matrix", "построение матрицы компетенций")
	competencies := matrix.Build(matrixTable)

	emitProgress(opts.OnProgress, "merge", "объединение ответов с заданиями")
	merged, err := merge.Tasks(answersTable, tasksTable)
	if err != nil {
		return nil, err
	}

	emitProgress(opts.OnProgress, "assemble", "сборка запросов по участникам")
	requests := assemble.Requests(merged, assemble.Options{
		CompetencyMatrix: competencies,
		AssessmentInfo:   cfg.AssessmentInfo,
		AssessmentType:   cfg.AssessmentType,
		WebhookURL:       cfg.WebhookURL,
	})

	return &BuildResult{
		Requests:         requests,
		CompetencyMatrix: competencies,
		Drops:            drops,
	}, nil
}

// Submit posts every request to the evaluation endpoint, parallelized across
// participants. Each AssessmentRequest is built from an independent row
// subset, so submissions share nothing but the read-only competency matrix.
// Transport failures are captured per participant and never abort siblings;
// results come back in request order.
func Submit(ctx context.Context, requests []types.AssessmentRequest, cfg config.Config) []SubmissionResult {
	results := make([]SubmissionResult, len(requests))

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range requests {
		i := i
		g.Go(func() error {
			req := &requests[i]
			resp, err := apiclient.PostJSON(ctx, cfg.APIURL, req, &apiclient.Options{Timeout: cfg.Timeout()})
			if err != nil {
				results[i] = SubmissionResult{Email: req.UserEmail, TransportErr: err.Error()}
				return nil
			}
			results[i] = SubmissionResult{Email: req.UserEmail, StatusCode: resp.StatusCode, Body: resp.Body}
			return nil
		})
	}

	// Goroutines never return errors; Wait only synchronizes.
	_ = g.Wait()

	return results
}

// Run executes the full batch: transformation followed by submission.
func Run(ctx context.Context, opts BuildOptions) (*RunResult, error) {
	runID := uuid.New()

	build, err := Build(opts)
	if err != nil {
		return nil, err
	}

	emitProgress(opts.OnProgress, "submit", "отправка запросов в сервис оценки")
	submissions := Submit(ctx, build.Requests, opts.Config)

	return &RunResult{
		RunID:       runID,
		BuildResult: *build,
		Submissions: submissions,
	}, nil
}
