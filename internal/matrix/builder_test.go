package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonv/assessment-client/internal/table"
)

func row(competency, weight, indicator string) table.Row {
	return table.Row{
		"competency":             competency,
		"competency_description": "описание " + competency,
		"weight":                 weight,
		"indicator_name":         indicator,
		"indicator_description":  "расшифровка",
		"level_0":                "L0",
		"level_1":                "L1",
		"level_2":                "L2",
		"level_3":                "L3",
	}
}

func TestBuild_GroupsSiblingRowsIntoOneCompetency(t *testing.T) {
	tbl := &table.Table{Rows: []table.Row{
		row("Коммуникация", "40", "Слушание"),
		row("Лидерство", "60", "Делегирование"),
		row("Коммуникация", "40", "Аргументация"),
	}}

	competencies := Build(tbl)
	require.Len(t, competencies, 2)

	// First-seen order is preserved.
	assert.Equal(t, "Коммуникация", competencies[0].Name)
	assert.Equal(t, "Лидерство", competencies[1].Name)

	require.Len(t, competencies[0].Indicators, 2)
	assert.Equal(t, "Слушание", competencies[0].Indicators[0].Name)
	assert.Equal(t, "Аргументация", competencies[0].Indicators[1].Name)
	assert.Equal(t, 40.0, competencies[0].Weight)
}

func TestBuild_NormalizesNamesBeforeGrouping(t *testing.T) {
	tbl := &table.Table{Rows: []table.Row{
		row("Коммуникация  и влияние", "50", "Слушание"),
		row(" Коммуникация и влияние ", "50", "Аргументация"),
	}}

	competencies := Build(tbl)
	require.Len(t, competencies, 1)
	assert.Equal(t, "Коммуникация и влияние", competencies[0].Name)
	assert.Len(t, competencies[0].Indicators, 2)
}

func TestBuild_SkipsRowsWithEmptyName(t *testing.T) {
	tbl := &table.Table{Rows: []table.Row{
		row("  ", "50", "Слушание"),
		row("Лидерство", "100", "Делегирование"),
	}}

	competencies := Build(tbl)
	require.Len(t, competencies, 1)
	assert.Equal(t, "Лидерство", competencies[0].Name)
}

func TestBuild_WeightFallsBackTo50(t *testing.T) {
	tbl := &table.Table{Rows: []table.Row{
		row("Коммуникация", "не число", "Слушание"),
	}}
	assert.Equal(t, 50.0, Build(tbl)[0].Weight)
}

func TestBuild_WeightAcceptsCommaSeparator(t *testing.T) {
	tbl := &table.Table{Rows: []table.Row{
		row("Коммуникация", "33,5", "Слушание"),
	}}
	assert.Equal(t, 33.5, Build(tbl)[0].Weight)
}

func TestBuild_LevelsAreConsumedVerbatim(t *testing.T) {
	r := row("Коммуникация", "50", "Слушание")
	r["level_2"] = "  уровень с пробелами  "
	tbl := &table.Table{Rows: []table.Row{r}}

	competencies := Build(tbl)
	assert.Equal(t, "  уровень с пробелами  ", competencies[0].Indicators[0].Levels.Level2)
}

func TestBuild_IndicatorCountMatchesSourceRows(t *testing.T) {
	tbl := &table.Table{Rows: []table.Row{
		row("Коммуникация", "50", "И1"),
		row("Коммуникация", "50", "И2"),
		row("Коммуникация", "50", "И3"),
	}}
	competencies := Build(tbl)
	require.Len(t, competencies, 1)
	assert.Len(t, competencies[0].Indicators, 3)
}
