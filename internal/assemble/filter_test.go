package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonv/assessment-client/internal/types"
)

func TestFilterChapter_KeepsOnlyRequestedBucket(t *testing.T) {
	requests := []types.AssessmentRequest{
		{
			UserEmail: "a@example.com",
			Dilemmas:  []types.CaseEntry{{Question: "Дилемма"}},
			MiniCases: []types.CaseEntry{{Question: "Кейс"}},
		},
		{
			UserEmail: "b@example.com",
			MiniCases: []types.CaseEntry{{Question: "Кейс"}},
		},
	}

	filtered := FilterChapter(requests, "Дилеммы")
	require.Len(t, filtered, 1)
	assert.Equal(t, "a@example.com", filtered[0].UserEmail)
	assert.Len(t, filtered[0].Dilemmas, 1)
	assert.Nil(t, filtered[0].MiniCases)
}

func TestFilterChapter_NormalizesLabel(t *testing.T) {
	requests := []types.AssessmentRequest{
		{UserEmail: "a@example.com", BigCases: []types.CaseEntry{{}}},
	}
	assert.Len(t, FilterChapter(requests, " Большие  кейсы "), 1)
}

func TestFilterChapter_UnknownLabelYieldsNothing(t *testing.T) {
	requests := []types.AssessmentRequest{
		{UserEmail: "a@example.com", Dilemmas: []types.CaseEntry{{}}},
	}
	assert.Empty(t, FilterChapter(requests, "Неизвестная глава"))
}
