// Package matrix groups competency-matrix rows into a competency→indicators
// tree shared by every participant request.
package matrix

import (
	"strconv"
	"strings"

	"github.com/antonv/assessment-client/internal/table"
	"github.com/antonv/assessment-client/internal/textutil"
	"github.com/antonv/assessment-client/internal/types"
)

// DefaultWeight is assumed when the weight cell cannot be parsed.
const DefaultWeight = 50.0

// Build consumes sanitized competency rows in file order. The first row for
// a competency name creates the entry; every later row with the same
// normalized name appends one more indicator to it. Rows with an empty
// normalized name are skipped. Output order is first-seen order.
func Build(t *table.Table) []types.Competency {
	var competencies []types.Competency
	index := make(map[string]int)

	for _, row := range t.Rows {
		name := textutil.NormalizeSpaces(row["competency"])
		if name == "" {
			continue
		}

		indicator := types.Indicator{
			Name:        strings.TrimSpace(row["indicator_name"]),
			Description: strings.TrimSpace(row["indicator_description"]),
			Levels: types.IndicatorLevels{
				Level0: row["level_0"],
				Level1: row["level_1"],
				Level2: row["level_2"],
				Level3: row["level_3"],
			},
		}

		if i, ok := index[name]; ok {
			competencies[i].Indicators = append(competencies[i].Indicators, indicator)
			continue
		}

		index[name] = len(competencies)
		competencies = append(competencies, types.Competency{
			Name:        name,
			Description: textutil.NormalizeSpaces(row["competency_description"]),
			Weight:      parseWeight(row["weight"]),
			Indicators:  []types.Indicator{indicator},
		})
	}

	return competencies
}

// parseWeight accepts both dot and comma decimal separators; anything
// unparsable falls back to DefaultWeight.
func parseWeight(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	weight, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return DefaultWeight
	}
	return weight
}
