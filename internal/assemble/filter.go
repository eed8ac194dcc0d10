package assemble

import (
	"github.com/antonv/assessment-client/internal/textutil"
	"github.com/antonv/assessment-client/internal/types"
)

// FilterChapter narrows requests to a single category bucket, dropping
// participants that have no rows in it. Used by the per-chapter check flows
// (e.g. reviewing only the dilemmas of a batch).
func FilterChapter(requests []types.AssessmentRequest, chapter string) []types.AssessmentRequest {
	label := textutil.NormalizeSpaces(chapter)

	var filtered []types.AssessmentRequest
	for _, req := range requests {
		keep := req
		keep.Statements = nil
		keep.OpenQuestions = nil
		keep.Dilemmas = nil
		keep.MiniCases = nil
		keep.BigCases = nil

		switch label {
		case ChapterStatements:
			keep.Statements = req.Statements
		case ChapterOpenQuestions:
			keep.OpenQuestions = req.OpenQuestions
		case ChapterDilemmas:
			keep.Dilemmas = req.Dilemmas
		case ChapterMiniCases:
			keep.MiniCases = req.MiniCases
		case ChapterBigCases:
			keep.BigCases = req.BigCases
		default:
			continue
		}

		if len(keep.Statements)+len(keep.OpenQuestions)+len(keep.Dilemmas)+len(keep.MiniCases)+len(keep.BigCases) == 0 {
			continue
		}
		filtered = append(filtered, keep)
	}
	return filtered
}
