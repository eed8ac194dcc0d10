// Package assemble groups merged answer rows by participant and builds the
// per-participant assessment requests sent to the evaluation service.
package assemble

import (
	"github.com/antonv/assessment-client/internal/merge"
	"github.com/antonv/assessment-client/internal/textutil"
	"github.com/antonv/assessment-client/internal/types"
)

// Chapter labels of the answers export. Rows are partitioned into category
// buckets by exact match after whitespace normalization.
const (
	ChapterStatements    = "Быстрая самооценка"
	ChapterOpenQuestions = "Открытые вопросы"
	ChapterDilemmas      = "Дилеммы"
	ChapterMiniCases     = "Мини-кейсы"
	ChapterBigCases      = "Большие кейсы"
)

// Options carries the values attached identically to every participant's
// request.
type Options struct {
	CompetencyMatrix []types.Competency
	AssessmentInfo   string
	AssessmentType   string
	WebhookURL       string
}

// Requests builds one AssessmentRequest per distinct participant email, in
// first-seen order of emails in the merged rows. A category bucket with no
// rows stays nil on the request; an empty slice never stands in for it.
func Requests(rows []merge.Row, opts Options) []types.AssessmentRequest {
	var order []string
	byEmail := make(map[string][]merge.Row)
	for _, row := range rows {
		if _, ok := byEmail[row.Email]; !ok {
			order = append(order, row.Email)
		}
		byEmail[row.Email] = append(byEmail[row.Email], row)
	}

	requests := make([]types.AssessmentRequest, 0, len(order))
	for _, email := range order {
		requests = append(requests, buildRequest(email, byEmail[email], opts))
	}
	return requests
}

func buildRequest(email string, rows []merge.Row, opts Options) types.AssessmentRequest {
	req := types.AssessmentRequest{
		UserEmail:        email,
		UserName:         textutil.NormalizeSpaces(rows[0].Name),
		PositionTitle:    textutil.NormalizeSpaces(rows[0].Position),
		AssessmentInfo:   opts.AssessmentInfo,
		WebhookURL:       opts.WebhookURL,
		AssessmentType:   opts.AssessmentType,
		CompetencyMatrix: opts.CompetencyMatrix,
	}

	for _, row := range rows {
		switch textutil.NormalizeSpaces(row.Chapter) {
		case ChapterStatements:
			req.Statements = append(req.Statements, types.StatementEntry{
				Question:       textutil.CleanText(row.Question),
				EvaluationType: textutil.NormalizeSpaces(row.EvaluationType),
				Competency:     textutil.NormalizeSpaces(row.Competencies),
				Answer:         textutil.CleanText(row.Answer),
			})
		case ChapterOpenQuestions:
			req.OpenQuestions = append(req.OpenQuestions, caseEntry(row))
		case ChapterDilemmas:
			req.Dilemmas = append(req.Dilemmas, caseEntry(row))
		case ChapterMiniCases:
			req.MiniCases = append(req.MiniCases, caseEntry(row))
		case ChapterBigCases:
			req.BigCases = append(req.BigCases, caseEntry(row))
		}
	}

	return req
}

func caseEntry(row merge.Row) types.CaseEntry {
	return types.CaseEntry{
		Question:     textutil.CleanText(row.Question),
		Answer:       textutil.CleanText(row.Answer),
		Competencies: textutil.SplitList(textutil.NormalizeSpaces(row.Competencies)),
		Indicators:   textutil.SplitIndicators(row.Indicators),
	}
}
